package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeZeroVector(t *testing.T) {
	nx, ny, length, ok := Normalize(0, 0)
	assert.False(t, ok)
	assert.Zero(t, nx)
	assert.Zero(t, ny)
	assert.Zero(t, length)
}

func TestCalculateLaunchVelocity(t *testing.T) {
	tests := []struct {
		name      string
		px, py    float64
		wantSpeed float64
	}{
		{"short drag scales linearly", 30, 40, 5},
		{"long drag is capped", 300, 400, 20},
		{"exactly at cap", 200, 0, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vx, vy, ok := CalculateLaunchVelocity(0, 0, tt.px, tt.py, 0.1, 20)
			require.True(t, ok)
			assert.InDelta(t, tt.wantSpeed, math.Hypot(vx, vy), 1e-9)
			// direction follows the pointer
			assert.InDelta(t, tt.px/math.Hypot(tt.px, tt.py), vx/tt.wantSpeed, 1e-9)
		})
	}

	vx, vy, ok := CalculateLaunchVelocity(10, 10, 10, 10, 0.1, 20)
	assert.False(t, ok)
	assert.False(t, math.IsNaN(vx) || math.IsNaN(vy))
}

func TestCircleIntersectsRect(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, CircleIntersectsRect(5, 5, 1, r), "center inside")
	assert.True(t, CircleIntersectsRect(14, 5, 4, r), "touching edge")
	assert.False(t, CircleIntersectsRect(15, 5, 4, r))
	// corner uses the diagonal distance
	assert.False(t, CircleIntersectsRect(13, 13, 4, r))
	assert.True(t, CircleIntersectsRect(12, 12, 3, r))
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 10, H: 10}), "shared edge")
	assert.Equal(t, Rect{X: 2, Y: 2, W: 6, H: 6}, a.Inset(2))
}

func TestPenetration(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 8, Y: 1, W: 10, H: 10}

	nx, ny, depth, ok := Penetration(a, b)
	require.True(t, ok)
	assert.Equal(t, 1.0, nx)
	assert.Equal(t, 0.0, ny)
	assert.InDelta(t, 2, depth, 1e-9)

	nx, _, _, ok = Penetration(b, a)
	require.True(t, ok)
	assert.Equal(t, -1.0, nx)

	_, _, _, ok = Penetration(a, Rect{X: 20, Y: 20, W: 1, H: 1})
	assert.False(t, ok)
}

func TestCalculateImpulse(t *testing.T) {
	// equal masses, head-on, perfectly elastic: velocities swap
	j := CalculateImpulse(1, 0, -1, 0, 1, 0, 1, 1, 1)
	assert.InDelta(t, 2, j, 1e-9)

	// separating bodies get no impulse
	assert.Zero(t, CalculateImpulse(-1, 0, 1, 0, 1, 0, 1, 1, 0.8))

	// immovable wall reflects with restitution
	j = CalculateImpulse(-10, 0, 0, 0, -1, 0, 1, 0, 0.8)
	assert.InDelta(t, 18, j, 1e-9) // v' = -10 + 18 = 8
}

func TestSeparationShares(t *testing.T) {
	// player mass 2 vs enemy mass 1: the lighter body moves more
	s1, s2 := SeparationShares(InverseMass(2), InverseMass(1))
	assert.InDelta(t, 1.0/3.0, s1, 1e-9)
	assert.InDelta(t, 2.0/3.0, s2, 1e-9)

	s1, s2 = SeparationShares(InverseMass(1), 0)
	assert.Equal(t, 1.0, s1)
	assert.Equal(t, 0.0, s2)
}
