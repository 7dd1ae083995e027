package factory

import (
	"log"

	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/gamemath"
	"github.com/automoto/cosmoball/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegularEnemyCount returns the size of a non-boss wave.
func RegularEnemyCount(totalWave int) int {
	n := cfg.Wave.BaseEnemies + totalWave/2
	if n > cfg.Wave.MaxEnemies {
		return cfg.Wave.MaxEnemies
	}
	return n
}

// SpawnWave fills the current room with one wave. waveIndex is the wave
// within the phase and picks the boss wave; totalWave counts waves across
// the run and sizes regular waves. It returns the spawned enemies.
func SpawnWave(ecs *ecs.ECS, phase cfg.PhaseConfig, waveIndex, totalWave int, difficulty float64) []*donburi.Entry {
	room := components.GetRoom(ecs.World)
	if room == nil {
		log.Printf("Warning: SpawnWave called without a room")
		return nil
	}

	boss := waveIndex == cfg.Wave.BossWaveIndex
	var spawned []*donburi.Entry
	if boss {
		points := SpawnPoints(ecs, room, cfg.Enemy.BossSize, 1)
		if len(points) == 0 {
			// fall back to the top middle of the play area
			cx, _ := room.Inner.Center()
			points = []components.Vector{{X: cx, Y: room.Inner.Y + cfg.Enemy.BossSize/2}}
		}
		spawned = append(spawned, CreateBoss(ecs, points[0].X, points[0].Y, phase.Kind, difficulty))
	} else {
		count := RegularEnemyCount(totalWave)
		points := SpawnPoints(ecs, room, cfg.Enemy.Size, count)
		if len(points) < count {
			log.Printf("Warning: wave %d wants %d enemies, room %q fits %d", totalWave, count, room.Template.Name, len(points))
		}
		for _, p := range points {
			spawned = append(spawned, CreateEnemy(ecs, p.X, p.Y, phase.Kind, difficulty))
		}
	}

	if rng(ecs).Float64() < cfg.Wave.ChestSpawnChance {
		placeWaveChest(ecs, room)
	}

	components.Emit(ecs.World, messages.WaveStarted(phase.Name, waveIndex, boss))
	return spawned
}

// placeWaveChest drops a chest uniformly inside the play area, re-rolling
// while it lands too close to the player. It gives up after a bounded number
// of attempts.
func placeWaveChest(ecs *ecs.ECS, room *components.RoomData) bool {
	r := rng(ecs)
	size := cfg.Chest.Size
	area := room.Inner.Inset(size / 2)

	px, py := area.Center()
	if player, ok := components.GetPlayer(ecs.World); ok {
		px, py = components.Object.Get(player).Center()
	}

	for i := 0; i < cfg.Wave.ChestPlacementAttempts; i++ {
		x := area.X + r.Float64()*area.W
		y := area.Y + r.Float64()*area.H
		if gamemath.Distance(x, y, px, py) < cfg.Wave.ChestMinPlayerDistance {
			continue
		}
		CreateChest(ecs, x, y)
		return true
	}
	if debugEnabled(ecs) {
		log.Printf("no chest position found after %d attempts", cfg.Wave.ChestPlacementAttempts)
	}
	return false
}
