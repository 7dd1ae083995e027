package scenes

import (
	"log"
	"time"

	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/messages"
	"github.com/automoto/cosmoball/systems"
	"github.com/automoto/cosmoball/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a WorldScene.
type Options struct {
	// Seed for the run's random source. Zero seeds from the clock.
	Seed int64
	// Mode defaults to cfg.Game.Mode when empty.
	Mode  cfg.GameMode
	Store systems.ScoreStore
}

// WorldScene owns the game world and steps it one frame per Tick.
type WorldScene struct {
	ecs  *ecs.ECS
	opts Options
	best int
	runs int64
}

// NewWorldScene loads the best score and starts the first run.
func NewWorldScene(opts Options) *WorldScene {
	if opts.Mode == "" {
		opts.Mode = cfg.Game.Mode
	}
	ws := &WorldScene{opts: opts}
	if opts.Store != nil {
		best, err := opts.Store.LoadBestScore()
		if err != nil {
			log.Printf("Warning: Could not load best score: %v", err)
		}
		ws.best = best
	}
	ws.Reset()
	return ws
}

// Reset discards the current world and starts a fresh run. The best score
// carries over.
func (ws *WorldScene) Reset() {
	if ws.ecs != nil {
		if game := components.GetGame(ws.ecs.World); game != nil && game.BestScore > ws.best {
			ws.best = game.BestScore
		}
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Input and the upgrade display run regardless of gameplay holds
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.WithPauseCheck(systems.UpdateUpgradeDisplay))

	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateChests))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateProgression))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))

	seed := ws.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		seed += ws.runs
	}
	ws.runs++

	ws.ecs = e
	game := factory.CreateGame(e, seed, ws.opts.Mode, ws.best)
	systems.StartRun(e)
	log.Printf("run %s started (mode %s, seed %d)", components.Game.Get(game).RunID, ws.opts.Mode, seed)
}

// Tick applies the frame's inputs, steps the world once and returns the
// resulting snapshot. Events emitted during the step are drained into it.
func (ws *WorldScene) Tick(inputs []messages.Input) FrameState {
	queued := make([]messages.Input, 0, len(inputs))
	for _, in := range inputs {
		if in.Kind == messages.InputRestart {
			ws.Reset()
			queued = queued[:0]
			continue
		}
		queued = append(queued, in)
	}

	if e, ok := components.Input.First(ws.ecs.World); ok {
		input := components.Input.Get(e)
		input.Events = append(input.Events, queued...)
	}

	ws.ecs.Update()

	game := components.GetGame(ws.ecs.World)
	game.Tick++
	systems.RecordScore(ws.ecs, ws.opts.Store)
	if game.BestScore > ws.best {
		ws.best = game.BestScore
	}

	return ws.snapshot()
}

// ECS exposes the world for tests and tools.
func (ws *WorldScene) ECS() *ecs.ECS {
	return ws.ecs
}

// BestScore is the best score across all runs of this scene.
func (ws *WorldScene) BestScore() int {
	return ws.best
}
