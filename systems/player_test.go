package systems

import (
	"math"
	"testing"

	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func TestEndDragLaunchesTowardPointer(t *testing.T) {
	w := newTestWorld(t)
	player := testPlayer(t, w)

	BeginDrag(player, 400, 300)
	assert.True(t, components.Player.Get(player).Dragging)

	EndDrag(player, 430, 340)
	phys := components.Physics.Get(player)
	assert.False(t, components.Player.Get(player).Dragging)
	assert.InDelta(t, 3, phys.VX, 1e-9)
	assert.InDelta(t, 4, phys.VY, 1e-9)
}

func TestEndDragIsCapped(t *testing.T) {
	w := newTestWorld(t)
	player := testPlayer(t, w)

	BeginDrag(player, 400, 300)
	EndDrag(player, 400, 1300)
	phys := components.Physics.Get(player)
	assert.InDelta(t, cfg.Physics.LaunchCap, math.Hypot(phys.VX, phys.VY), 1e-9)
}

func TestEndDragOnCenterKeepsVelocity(t *testing.T) {
	w := newTestWorld(t)
	player := testPlayer(t, w)
	phys := components.Physics.Get(player)
	phys.VX, phys.VY = 1, 2

	BeginDrag(player, 400, 300)
	EndDrag(player, 400, 300)
	assert.Equal(t, 1.0, phys.VX)
	assert.Equal(t, 2.0, phys.VY)
}

func TestEndDragScalesWithSpeedStat(t *testing.T) {
	w := newTestWorld(t)
	player := testPlayer(t, w)
	components.Player.Get(player).Stats.Speed = 1.5

	BeginDrag(player, 400, 300)
	EndDrag(player, 450, 300)
	assert.InDelta(t, 7.5, components.Physics.Get(player).VX, 1e-9)
}

func TestDraggingHoldsPlayerInPlace(t *testing.T) {
	w := newTestWorld(t)
	player := testPlayer(t, w)
	obj := components.Object.Get(player)
	phys := components.Physics.Get(player)
	phys.VX = 5

	BeginDrag(player, 400, 300)
	UpdateDrag(player, 350, 320)
	TickPlayer(player, components.GetRoom(w.World).Inner)

	assert.Equal(t, 375.0, obj.X)
	assert.Equal(t, components.Vector{X: 350, Y: 320}, components.Player.Get(player).Pointer)
}

func TestTickPlayerCountsDownTimers(t *testing.T) {
	w := newTestWorld(t)
	player := testPlayer(t, w)
	p := components.Player.Get(player)
	p.InvulnTicks, p.GodModeTicks, p.ReflectTicks = 2, 1, 0

	TickPlayer(player, components.GetRoom(w.World).Inner)
	assert.Equal(t, 1, p.InvulnTicks)
	assert.Equal(t, 0, p.GodModeTicks)
	assert.Equal(t, 0, p.ReflectTicks)
}

func TestUpdateInputIgnoresDragsWhilePaused(t *testing.T) {
	w := newTestWorld(t)
	player := testPlayer(t, w)
	input := inputQueue(t, w)

	input.Events = append(input.Events,
		messages.Input{Kind: messages.InputPauseToggle},
		messages.DragBegin(400, 300),
		messages.DragEnd(500, 300),
	)
	UpdateInput(w)

	assert.True(t, components.GetPause(w.World).IsPaused)
	assert.Zero(t, components.Physics.Get(player).VX)
	assert.Empty(t, input.Events)

	input.Events = append(input.Events,
		messages.Input{Kind: messages.InputPauseToggle},
		messages.DragBegin(400, 300),
		messages.DragEnd(500, 300),
	)
	UpdateInput(w)
	assert.False(t, components.GetPause(w.World).IsPaused)
	assert.InDelta(t, 10, components.Physics.Get(player).VX, 1e-9)
}

func TestUpdateInputToggles(t *testing.T) {
	w := newTestWorld(t)
	input := inputQueue(t, w)
	input.Events = append(input.Events,
		messages.Input{Kind: messages.InputDebugToggle},
		messages.Input{Kind: messages.InputMuteToggle},
	)
	UpdateInput(w)

	game := components.GetGame(w.World)
	assert.True(t, game.Debug)
	assert.True(t, game.Muted)
}

func TestGameplayChecksSkipWhileHeld(t *testing.T) {
	w := newTestWorld(t)
	calls := 0
	sys := WithGameplayChecks(func(_ *ecs.ECS) { calls++ })

	sys(w)
	require.Equal(t, 1, calls)

	components.GetPause(w.World).UpgradeTicks = 5
	sys(w)
	assert.Equal(t, 1, calls, "upgrade display holds gameplay")

	components.GetPause(w.World).UpgradeTicks = 0
	components.GetGame(w.World).GameOver = true
	sys(w)
	assert.Equal(t, 1, calls, "game over holds gameplay")
}
