package factory

import (
	"math/rand"

	"github.com/automoto/cosmoball/archetypes"
	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame spawns the run-wide singletons: game, progression, pause,
// input, event queue and screen shake.
func CreateGame(ecs *ecs.ECS, seed int64, mode cfg.GameMode, bestScore int) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)

	components.Game.SetValue(game, components.GameData{
		RunID:     uuid.New(),
		Rand:      rand.New(rand.NewSource(seed)),
		BestScore: bestScore,
	})
	components.Progression.SetValue(game, components.ProgressionData{
		Mode:       mode,
		Difficulty: cfg.Difficulty.Start,
	})

	return game
}

// rng returns the run's random source.
func rng(ecs *ecs.ECS) *rand.Rand {
	if g := components.GetGame(ecs.World); g != nil && g.Rand != nil {
		return g.Rand
	}
	return rand.New(rand.NewSource(1))
}

func debugEnabled(ecs *ecs.ECS) bool {
	g := components.GetGame(ecs.World)
	return g != nil && g.Debug
}
