package systems

import (
	"testing"

	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/messages"
	"github.com/automoto/cosmoball/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds a seeded world with the game singletons and an empty
// 800x600 test room. The player sits at the room center (400, 300).
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	w := ecs.NewECS(donburi.NewWorld())
	factory.CreateGame(w, 42, cfg.ModeWaves, 0)
	factory.BuildRoom(w, "test", false)
	return w
}

func testPlayer(t *testing.T, w *ecs.ECS) *donburi.Entry {
	t.Helper()
	player, ok := components.GetPlayer(w.World)
	require.True(t, ok, "player should exist")
	return player
}

func inputQueue(t *testing.T, w *ecs.ECS) *components.InputData {
	t.Helper()
	e, ok := components.Input.First(w.World)
	require.True(t, ok)
	return components.Input.Get(e)
}

// drainEvents returns and clears the queued events.
func drainEvents(w *ecs.ECS) []messages.Event {
	e, ok := components.EventQueue.First(w.World)
	if !ok {
		return nil
	}
	q := components.EventQueue.Get(e)
	events := q.Events
	q.Events = nil
	return events
}

func countEvents(events []messages.Event, kind messages.EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func activeProjectiles(w *ecs.ECS) []*components.ProjectileData {
	var out []*components.ProjectileData
	components.Projectile.Each(w.World, func(e *donburi.Entry) {
		if components.Active(e) {
			out = append(out, components.Projectile.Get(e))
		}
	})
	return out
}

// withConfig restores a package-level config value after the test.
func withConfig[T any](t *testing.T, target *T, value T) {
	t.Helper()
	old := *target
	*target = value
	t.Cleanup(func() { *target = old })
}
