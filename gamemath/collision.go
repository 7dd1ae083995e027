package gamemath

import "math"

// Penetration returns the minimum translation axis between two overlapping
// rectangles. The normal points from a toward b. ok is false when they do not overlap.
func Penetration(a, b Rect) (nx, ny, depth float64, ok bool) {
	if !a.Overlaps(b) {
		return 0, 0, 0, false
	}
	overlapX := math.Min(a.Right(), b.Right()) - math.Max(a.X, b.X)
	overlapY := math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Y, b.Y)

	ax, ay := a.Center()
	bx, by := b.Center()
	if overlapX < overlapY {
		if bx < ax {
			return -1, 0, overlapX, true
		}
		return 1, 0, overlapX, true
	}
	if by < ay {
		return 0, -1, overlapY, true
	}
	return 0, 1, overlapY, true
}

// CalculateImpulse returns the scalar impulse for two bodies colliding along
// normal (nx, ny), pointing from body 1 to body 2. Inverse masses of 0 mark
// immovable bodies. Returns 0 when the bodies are already separating.
func CalculateImpulse(v1x, v1y, v2x, v2y, nx, ny, invMass1, invMass2, restitution float64) float64 {
	relVel := (v2x-v1x)*nx + (v2y-v1y)*ny
	if relVel >= 0 {
		return 0
	}
	invSum := invMass1 + invMass2
	if invSum == 0 {
		return 0
	}
	return -(1 + restitution) * relVel / invSum
}

// SeparationShares splits a penetration depth between two bodies in
// proportion to the other body's share of the combined mass.
func SeparationShares(invMass1, invMass2 float64) (share1, share2 float64) {
	invSum := invMass1 + invMass2
	if invSum == 0 {
		return 0, 0
	}
	return invMass1 / invSum, invMass2 / invSum
}

// InverseMass returns 1/mass, treating non-positive or infinite mass as immovable.
func InverseMass(mass float64) float64 {
	if mass <= 0 || math.IsInf(mass, 1) {
		return 0
	}
	return 1 / mass
}
