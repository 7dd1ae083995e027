package systems

import (
	"github.com/automoto/cosmoball/components"
	"github.com/automoto/cosmoball/gamemath"
)

// Integrate advances a movable body one tick inside bounds. Position moves by
// velocity, then velocity decays by friction. An axis that crosses an edge is
// clamped to it and its pre-friction velocity is reflected and scaled by
// restitution. Returns true when any edge was hit.
func Integrate(obj *components.ObjectData, phys *components.PhysicsData, bounds gamemath.Rect) bool {
	vx0, vy0 := phys.VX, phys.VY

	obj.X += phys.VX
	obj.Y += phys.VY
	phys.VX *= phys.Friction
	phys.VY *= phys.Friction

	bounced := false
	if obj.X < bounds.X {
		obj.X = bounds.X
		phys.VX = -vx0 * phys.Restitution
		bounced = true
	} else if obj.X+obj.W > bounds.Right() {
		obj.X = bounds.Right() - obj.W
		phys.VX = -vx0 * phys.Restitution
		bounced = true
	}
	if obj.Y < bounds.Y {
		obj.Y = bounds.Y
		phys.VY = -vy0 * phys.Restitution
		bounced = true
	} else if obj.Y+obj.H > bounds.Bottom() {
		obj.Y = bounds.Bottom() - obj.H
		phys.VY = -vy0 * phys.Restitution
		bounced = true
	}
	return bounced
}
