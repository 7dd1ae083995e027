package systems

import (
	"log"

	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/messages"
	"github.com/automoto/cosmoball/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartRun builds the first room for the run's mode.
func StartRun(ecs *ecs.ECS) {
	prog := components.GetProgression(ecs.World)
	if prog == nil {
		return
	}
	if prog.Mode == cfg.ModeLevels {
		loadLevel(ecs, prog)
		return
	}
	startWave(ecs, prog)
}

// UpdateProgression checks the room for a clear and, once the transition
// countdown ends, advances to the next wave or level.
func UpdateProgression(ecs *ecs.ECS) {
	room := components.GetRoom(ecs.World)
	if room == nil {
		return
	}
	if !room.Cleared {
		CheckClear(ecs)
		return
	}
	if room.TransitionTicks > 0 {
		room.TransitionTicks--
		if room.TransitionTicks > 0 {
			return
		}
	}
	Advance(ecs)
}

// CheckClear marks the room cleared the first time no active enemy remains.
func CheckClear(ecs *ecs.ECS) bool {
	room := components.GetRoom(ecs.World)
	if room == nil || room.Cleared {
		return false
	}
	if ActiveEnemyCount(ecs) > 0 {
		return false
	}
	room.Cleared = true
	room.TransitionTicks = cfg.Wave.TransitionTicks
	components.Emit(ecs.World, messages.LevelComplete())
	return true
}

// Advance moves the run past a cleared room.
func Advance(ecs *ecs.ECS) {
	prog := components.GetProgression(ecs.World)
	if prog == nil {
		return
	}

	if prog.Mode == cfg.ModeLevels {
		prog.Level++
		if prog.Level >= len(cfg.Game.Levels) {
			EndGame(ecs, true)
			return
		}
		loadLevel(ecs, prog)
		return
	}

	prog.Wave++
	prog.Difficulty += cfg.Difficulty.BaseIncrease
	if prog.Wave >= cfg.Wave.WavesPerPhase {
		prog.Wave = 0
		prog.Phase = (prog.Phase + 1) % len(cfg.Phases)
		if prog.Phase == 0 {
			prog.Loop++
		}
		// healing starts once the first full cycle is behind the player
		if prog.Loop >= 1 {
			healPlayer(ecs)
		}
		components.Emit(ecs.World, messages.PhaseChanged(cfg.Phases[prog.Phase].Name))
	}
	startWave(ecs, prog)
}

func startWave(ecs *ecs.ECS, prog *components.ProgressionData) {
	if prog.Phase < 0 || prog.Phase >= len(cfg.Phases) {
		log.Printf("Warning: phase index %d out of range, restarting cycle", prog.Phase)
		prog.Phase = 0
	}
	phase := cfg.Phases[prog.Phase]
	factory.BuildRoom(ecs, phase.Template, false)
	factory.SpawnWave(ecs, phase, prog.Wave, prog.TotalWaves, prog.Difficulty)
	prog.TotalWaves++
}

func loadLevel(ecs *ecs.ECS, prog *components.ProgressionData) {
	name := cfg.Room.DefaultTemplate
	if prog.Level < len(cfg.Game.Levels) {
		name = cfg.Game.Levels[prog.Level]
	}
	factory.BuildRoom(ecs, name, true)
}

func healPlayer(ecs *ecs.ECS) {
	player, ok := components.GetPlayer(ecs.World)
	if !ok {
		return
	}
	health := components.Health.Get(player)
	health.Add(health.Max / 2)
}

// ActiveEnemyCount returns the number of enemies still in play.
func ActiveEnemyCount(ecs *ecs.ECS) int {
	n := 0
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Active(e) {
			n++
		}
	})
	return n
}
