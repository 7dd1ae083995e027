// Package gamemath holds pure geometry helpers for the simulation.
// It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

import "math"

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: math.Max(0, r.W-2*d), H: math.Max(0, r.H-2*d)}
}

// Contains reports whether the point lies inside the rectangle (edges included).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Overlaps reports strict AABB overlap; touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Normalize returns the unit vector of (dx, dy). ok is false for a zero vector.
func Normalize(dx, dy float64) (nx, ny, length float64, ok bool) {
	length = math.Hypot(dx, dy)
	if length == 0 || math.IsNaN(length) {
		return 0, 0, 0, false
	}
	return dx / length, dy / length, length, true
}

// CalculateHomingVelocity returns velocity components to home toward a target.
func CalculateHomingVelocity(fromX, fromY, targetX, targetY, speed float64) (velX, velY float64, ok bool) {
	nx, ny, _, ok := Normalize(targetX-fromX, targetY-fromY)
	if !ok {
		return 0, 0, false
	}
	return nx * speed, ny * speed, true
}

// CalculateLaunchVelocity returns the drag-launch velocity toward a pointer.
// Magnitude is min(distance*scale, maxSpeed).
func CalculateLaunchVelocity(fromX, fromY, pointerX, pointerY, scale, maxSpeed float64) (velX, velY float64, ok bool) {
	nx, ny, dist, ok := Normalize(pointerX-fromX, pointerY-fromY)
	if !ok {
		return 0, 0, false
	}
	speed := math.Min(dist*scale, maxSpeed)
	return nx * speed, ny * speed, true
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CircleIntersectsRect tests a circle against a rectangle using the clamped nearest point.
func CircleIntersectsRect(cx, cy, radius float64, r Rect) bool {
	nearestX := Clamp(cx, r.X, r.Right())
	nearestY := Clamp(cy, r.Y, r.Bottom())
	dx := cx - nearestX
	dy := cy - nearestY
	return dx*dx+dy*dy <= radius*radius
}
