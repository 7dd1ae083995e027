package config

import (
	"strings"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only ECS layer; drawing lives outside the world.
const Default ecs.LayerID = 0

// StateID identifies an enemy AI state.
type StateID int

const (
	StateIdle StateID = iota
	StateChasing
	StateCharging
	StateAttacking
)

func (s StateID) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateChasing:
		return "chasing"
	case StateCharging:
		return "charging"
	case StateAttacking:
		return "attacking"
	}
	return "unknown"
}

// EnemyKind is the tagged enemy variant, resolved to an EnemyTypeConfig at creation.
type EnemyKind int

const (
	KindBasic EnemyKind = iota
	KindEarth
	KindSolar
	KindBlackhole
)

var enemyKindNames = map[EnemyKind]string{
	KindBasic:     "basic",
	KindEarth:     "earth",
	KindSolar:     "solar",
	KindBlackhole: "blackhole",
}

func (k EnemyKind) String() string {
	if name, ok := enemyKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseEnemyKind resolves a kind name. Matching is case-insensitive.
func ParseEnemyKind(name string) (EnemyKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range enemyKindNames {
		if n == name {
			return k, true
		}
	}
	return KindBasic, false
}

// Behavior is the movement tier of an enemy kind.
type Behavior int

const (
	BehaviorChase Behavior = iota // steer toward the target
	BehaviorKite                  // hold KeepDistance from the target
)

// AttackTier orders attack patterns; lower tiers are evaluated first.
type AttackTier int

const (
	TierArea AttackTier = iota
	TierHeavy
	TierBasic
)

// AttackID names an attack pattern.
type AttackID string

const (
	AttackBasicShot    AttackID = "basicShot"
	AttackHeavyShot    AttackID = "heavyShot"
	AttackChargedBlast AttackID = "chargedBlast"
	AttackGroundSlam   AttackID = "groundSlam"
	AttackRockThrow    AttackID = "rockThrow"
	AttackSolarFlare   AttackID = "solarFlare"
	AttackHeatWave     AttackID = "heatWave"
	AttackGravityPull  AttackID = "gravityPull"
	AttackVoidBlast    AttackID = "voidBlast"
)

// AttackShape selects how an attack spawns projectile family instances.
type AttackShape int

const (
	ShapeShot    AttackShape = iota // single aimed bullet
	ShapeRing                       // evenly spaced burst
	ShapeWave                       // aimed, growing
	ShapeAOE                        // stationary area effect
	ShapeGravity                    // stationary pulling field
)

// UpgradeKind separates stat multipliers from timed abilities.
type UpgradeKind int

const (
	UpgradeStat UpgradeKind = iota
	UpgradeAbility
)

// StatID names a player stat multiplier.
type StatID int

const (
	StatHealth StatID = iota
	StatSpeed
	StatDamage
)

// AbilityID names a timed player ability.
type AbilityID int

const (
	AbilityInvulnerability AbilityID = iota
	AbilityReflection
	AbilityStun
)

// GameMode selects how cleared rooms advance.
type GameMode string

const (
	ModeWaves  GameMode = "waves"
	ModeLevels GameMode = "levels"
)
