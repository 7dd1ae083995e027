package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/gamemath"
	"github.com/automoto/cosmoball/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ExecuteAttack fires an attack from an enemy toward (tx, ty). Charged
// attacks only start the charge; they are released by the enemy tick.
// Returns false when nothing was fired, such as an aim with zero distance.
func ExecuteAttack(ecs *ecs.ECS, e *donburi.Entry, id cfg.AttackID, tx, ty float64) bool {
	if !components.Active(e) {
		return false
	}
	spec, ok := cfg.Attacks[id]
	if !ok {
		log.Printf("Warning: unknown attack %q", id)
		return false
	}
	enemy := components.Enemy.Get(e)

	if spec.Charged {
		enemy.State = cfg.StateCharging
		enemy.ChargeTicks = cfg.Enemy.ChargeTicks
		enemy.PendingAttack = id
		phys := components.Physics.Get(e)
		phys.VX, phys.VY = 0, 0
		return true
	}

	cx, cy := components.Object.Get(e).Center()
	switch spec.Shape {
	case cfg.ShapeShot, cfg.ShapeWave:
		vx, vy, ok := gamemath.CalculateHomingVelocity(cx, cy, tx, ty, spec.Speed)
		if !ok {
			return false
		}
		kind := components.KindBullet
		if spec.Shape == cfg.ShapeWave {
			kind = components.KindWave
		}
		spawnProjectile(ecs, e, id, spec, kind, cx, cy, vx, vy)
	case cfg.ShapeRing:
		count := spec.Count
		if count <= 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			angle := 2 * math.Pi * float64(i) / float64(count)
			spawnProjectile(ecs, e, id, spec, components.KindBullet, cx, cy,
				math.Cos(angle)*spec.Speed, math.Sin(angle)*spec.Speed)
		}
	case cfg.ShapeAOE, cfg.ShapeGravity:
		spawnArea(ecs, e, id, spec)
	}

	enemy.State = cfg.StateAttacking
	enemy.StateTimer = cfg.Enemy.AttackRecoveryTicks
	return true
}

// releaseChargedAttack spawns the pending area effect once the charge ends.
func releaseChargedAttack(ecs *ecs.ECS, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	id := enemy.PendingAttack
	enemy.PendingAttack = ""
	enemy.State = cfg.StateAttacking
	enemy.StateTimer = cfg.Enemy.AttackRecoveryTicks

	// the owner may have died while charging
	if !components.Active(e) {
		return
	}
	spec, ok := cfg.Attacks[id]
	if !ok {
		return
	}
	spawnArea(ecs, e, id, spec)
}

func spawnProjectile(ecs *ecs.ECS, owner *donburi.Entry, id cfg.AttackID, spec cfg.AttackSpec, kind components.ProjectileKind, x, y, vx, vy float64) {
	factory.CreateProjectile(ecs, components.ProjectileData{
		Kind:      kind,
		Attack:    id,
		X:         x,
		Y:         y,
		VX:        vx,
		VY:        vy,
		Radius:    spec.Radius,
		Damage:    spec.Damage,
		Duration:  spec.Duration,
		Growth:    spec.Growth,
		MaxRadius: spec.MaxRadius,
		Owner:     owner.Entity(),
		Color:     spec.Color,
	})
}

func spawnArea(ecs *ecs.ECS, owner *donburi.Entry, id cfg.AttackID, spec cfg.AttackSpec) {
	cx, cy := components.Object.Get(owner).Center()
	kind := components.KindAOE
	if spec.Shape == cfg.ShapeGravity {
		kind = components.KindGravity
	}
	factory.CreateProjectile(ecs, components.ProjectileData{
		Kind:      kind,
		Attack:    id,
		X:         cx,
		Y:         cy,
		Radius:    spec.Radius,
		Damage:    spec.Damage,
		Duration:  spec.Duration,
		PullForce: spec.PullForce,
		Owner:     owner.Entity(),
		Color:     spec.Color,
	})
}

// gameRand returns the run's random source.
func gameRand(ecs *ecs.ECS) *rand.Rand {
	if g := components.GetGame(ecs.World); g != nil && g.Rand != nil {
		return g.Rand
	}
	return rand.New(rand.NewSource(1))
}
