package components

import (
	"github.com/automoto/cosmoball/config"
	"github.com/yohamta/donburi"
)

// AttackPattern is one row of an enemy's attack table with its live cooldown.
type AttackPattern struct {
	Attack      config.AttackID
	Tier        config.AttackTier
	Probability float64
	Cooldown    int
	Remaining   int
}

type EnemyData struct {
	Kind       config.EnemyKind
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration
	Boss       bool
	Speed      float64 // difficulty-scaled
	ScoreValue int

	Patterns []AttackPattern // ordered by tier

	// AI state management
	State      config.StateID
	StateTimer int

	ChargeTicks   int
	PendingAttack config.AttackID

	StunTicks            int
	ContactImmunityTicks int
}

// Charging reports whether a delayed area attack is pending.
func (e *EnemyData) Charging() bool {
	return e.State == config.StateCharging
}

var Enemy = donburi.NewComponentType[EnemyData]()
