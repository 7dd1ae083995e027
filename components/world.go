package components

import (
	"github.com/automoto/cosmoball/messages"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Singleton accessors. The orchestrator creates these once per world; they
// return nil when the world has not been set up.

func GetGame(w donburi.World) *GameData {
	if e, ok := Game.First(w); ok {
		return Game.Get(e)
	}
	return nil
}

func GetPause(w donburi.World) *PauseData {
	if e, ok := Pause.First(w); ok {
		return Pause.Get(e)
	}
	return nil
}

func GetProgression(w donburi.World) *ProgressionData {
	if e, ok := Progression.First(w); ok {
		return Progression.Get(e)
	}
	return nil
}

func GetRoom(w donburi.World) *RoomData {
	if e, ok := Room.First(w); ok {
		return Room.Get(e)
	}
	return nil
}

func GetSpace(w donburi.World) *resolv.Space {
	if e, ok := Space.First(w); ok {
		return Space.Get(e)
	}
	return nil
}

// GetPlayer returns the active player entry.
func GetPlayer(w donburi.World) (*donburi.Entry, bool) {
	e, ok := Player.First(w)
	if !ok || !Active(e) {
		return nil, false
	}
	return e, true
}

// Emit queues a feedback event for the frame snapshot.
func Emit(w donburi.World, ev messages.Event) {
	if e, ok := EventQueue.First(w); ok {
		q := EventQueue.Get(e)
		q.Events = append(q.Events, ev)
	}
}

// Active reports whether an entry still exists and has not gone inactive.
func Active(e *donburi.Entry) bool {
	return e != nil && e.Valid() && !e.HasComponent(Death)
}

// Deactivate marks an entry inactive. It returns false when the entry was
// already inactive, so callers can run one-shot effects exactly once.
func Deactivate(e *donburi.Entry, cause DeathCause) bool {
	if !Active(e) {
		return false
	}
	donburi.Add(e, Death, &DeathData{Cause: cause})
	return true
}
