package components

import (
	"image/color"

	"github.com/automoto/cosmoball/config"
	"github.com/yohamta/donburi"
)

// ProjectileKind is the projectile family variant.
type ProjectileKind int

const (
	KindBullet ProjectileKind = iota
	KindAOE
	KindWave
	KindGravity
)

// Area reports whether the variant is a stationary area effect.
func (k ProjectileKind) Area() bool {
	return k == KindAOE || k == KindGravity
}

type ProjectileData struct {
	Kind   ProjectileKind
	Attack config.AttackID

	X, Y   float64 // center
	VX, VY float64
	Radius float64
	Damage int

	Duration int // ticks left, -1 for unbounded

	PullForce float64 // gravity fields
	Growth    float64 // waves grow by this much per tick
	MaxRadius float64

	Reflected bool
	Owner     donburi.Entity

	Color color.RGBA
}

var Projectile = donburi.NewComponentType[ProjectileData]()
