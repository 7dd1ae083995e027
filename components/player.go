package components

import (
	"github.com/yohamta/donburi"
)

// PlayerStats are multipliers changed only by upgrades.
type PlayerStats struct {
	Speed     float64
	Damage    float64
	MaxHealth float64
}

type PlayerData struct {
	Dragging bool
	Anchor   Vector // center when the drag began
	Pointer  Vector // last pointer position

	InvulnTicks  int // invulnerability after a hit
	GodModeTicks int // temporary invulnerability ability
	ReflectTicks int // projectile reflection ability

	Stats PlayerStats
}

// Invulnerable reports whether incoming damage is ignored.
func (p *PlayerData) Invulnerable() bool {
	return p.InvulnTicks > 0 || p.GodModeTicks > 0
}

var Player = donburi.NewComponentType[PlayerData]()
