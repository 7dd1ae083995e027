package systems

import (
	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BeginDrag anchors a launch at the player's current center.
func BeginDrag(player *donburi.Entry, x, y float64) {
	p := components.Player.Get(player)
	cx, cy := components.Object.Get(player).Center()
	p.Dragging = true
	p.Anchor = components.Vector{X: cx, Y: cy}
	p.Pointer = components.Vector{X: x, Y: y}
}

// UpdateDrag records the pointer without touching velocity.
func UpdateDrag(player *donburi.Entry, x, y float64) {
	p := components.Player.Get(player)
	p.Pointer = components.Vector{X: x, Y: y}
}

// EndDrag launches the player toward the pointer. A pointer on the center
// leaves velocity unchanged.
func EndDrag(player *donburi.Entry, x, y float64) {
	p := components.Player.Get(player)
	p.Pointer = components.Vector{X: x, Y: y}
	p.Dragging = false

	cx, cy := components.Object.Get(player).Center()
	vx, vy, ok := gamemath.CalculateLaunchVelocity(cx, cy, x, y, cfg.Physics.LaunchScale, cfg.Physics.LaunchCap)
	if !ok {
		return
	}
	phys := components.Physics.Get(player)
	phys.VX = vx * p.Stats.Speed
	phys.VY = vy * p.Stats.Speed
}

func UpdatePlayer(ecs *ecs.ECS) {
	player, ok := components.GetPlayer(ecs.World)
	if !ok {
		return
	}
	TickPlayer(player, playBounds(ecs))
}

// TickPlayer runs one movable tick for the player and counts down its timers.
func TickPlayer(player *donburi.Entry, bounds gamemath.Rect) {
	p := components.Player.Get(player)
	if !p.Dragging {
		Integrate(components.Object.Get(player), components.Physics.Get(player), bounds)
	}

	if p.InvulnTicks > 0 {
		p.InvulnTicks--
	}
	if p.GodModeTicks > 0 {
		p.GodModeTicks--
	}
	if p.ReflectTicks > 0 {
		p.ReflectTicks--
	}
}

// playBounds returns the room's play area, or the whole window without a room.
func playBounds(ecs *ecs.ECS) gamemath.Rect {
	if room := components.GetRoom(ecs.World); room != nil {
		return room.Inner
	}
	return gamemath.Rect{W: float64(cfg.C.Width), H: float64(cfg.C.Height)}
}
