package systems

import (
	"github.com/automoto/cosmoball/components"
	"github.com/automoto/cosmoball/messages"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput applies the frame's queued platform events. Toggles always
// apply; drag events only reach the player while gameplay is active.
// Restart is handled by the scene before the world updates.
func UpdateInput(ecs *ecs.ECS) {
	e, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(e)
	pause := components.GetPause(ecs.World)
	game := components.GetGame(ecs.World)

	for _, ev := range input.Events {
		switch ev.Kind {
		case messages.InputPauseToggle:
			if !game.GameOver {
				pause.IsPaused = !pause.IsPaused
			}
		case messages.InputDebugToggle:
			game.Debug = !game.Debug
		case messages.InputMuteToggle:
			game.Muted = !game.Muted
		case messages.InputDragBegin, messages.InputDragMove, messages.InputDragEnd:
			if !GameplayActive(ecs) {
				continue
			}
			player, ok := components.GetPlayer(ecs.World)
			if !ok {
				continue
			}
			switch ev.Kind {
			case messages.InputDragBegin:
				BeginDrag(player, ev.X, ev.Y)
			case messages.InputDragMove:
				UpdateDrag(player, ev.X, ev.Y)
			case messages.InputDragEnd:
				EndDrag(player, ev.X, ev.Y)
			}
		}
	}
	input.Events = input.Events[:0]
}
