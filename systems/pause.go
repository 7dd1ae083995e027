package systems

import (
	"github.com/automoto/cosmoball/components"
	"github.com/yohamta/donburi/ecs"
)

// GameplayActive reports whether entity updates should run this frame. They
// are held while the user has paused, while an upgrade is on display, and
// after game over.
func GameplayActive(ecs *ecs.ECS) bool {
	pause := components.GetPause(ecs.World)
	game := components.GetGame(ecs.World)
	if pause == nil || game == nil {
		return false
	}
	return !pause.IsPaused && pause.UpgradeTicks == 0 && !game.GameOver
}

// WithPauseCheck wraps a system to skip execution when the user has paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := components.GetPause(e.World); pause == nil || pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution whenever gameplay is held.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !GameplayActive(e) {
			return
		}
		system(e)
	}
}
