package systems

import (
	"math"

	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateEnemies(ecs *ecs.ECS) {
	target, _ := components.GetPlayer(ecs.World)
	bounds := playBounds(ecs)

	// Attacks spawn projectiles, so collect first
	var enemies []*donburi.Entry
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Active(e) {
			enemies = append(enemies, e)
		}
	})

	for _, e := range enemies {
		TickEnemy(ecs, e, target, bounds)
	}
}

// TickEnemy runs one AI tick for an enemy against target, which may be nil.
func TickEnemy(ecs *ecs.ECS, e *donburi.Entry, target *donburi.Entry, bounds gamemath.Rect) {
	if !components.Active(e) {
		return
	}
	enemy := components.Enemy.Get(e)
	obj := components.Object.Get(e)
	phys := components.Physics.Get(e)

	if enemy.StunTicks > 0 {
		enemy.StunTicks--
		return
	}
	if enemy.ContactImmunityTicks > 0 {
		enemy.ContactImmunityTicks--
	}
	for i := range enemy.Patterns {
		if enemy.Patterns[i].Remaining > 0 {
			enemy.Patterns[i].Remaining--
		}
	}

	switch enemy.State {
	case cfg.StateCharging:
		phys.VX, phys.VY = 0, 0
		enemy.ChargeTicks--
		if enemy.ChargeTicks <= 0 {
			releaseChargedAttack(ecs, e)
		}
		return
	case cfg.StateAttacking:
		enemy.StateTimer--
		if enemy.StateTimer <= 0 {
			enemy.State = cfg.StateChasing
		}
	}

	if target == nil {
		if enemy.State != cfg.StateAttacking {
			enemy.State = cfg.StateIdle
		}
		Integrate(obj, phys, bounds)
		return
	}
	if enemy.State == cfg.StateIdle {
		enemy.State = cfg.StateChasing
	}

	tx, ty := components.Object.Get(target).Center()
	steer(enemy, obj, phys, tx, ty)
	Integrate(obj, phys, bounds)

	if enemy.State == cfg.StateChasing {
		selectAttack(ecs, e, tx, ty)
	}
}

// steer sets velocity toward the target, or away from it for kiting kinds.
// A body moving faster than its own speed was knocked back and only coasts.
func steer(enemy *components.EnemyData, obj *components.ObjectData, phys *components.PhysicsData, tx, ty float64) {
	if math.Hypot(phys.VX, phys.VY) > enemy.Speed*1.01 {
		return
	}
	cx, cy := obj.Center()
	nx, ny, dist, ok := gamemath.Normalize(tx-cx, ty-cy)
	if !ok {
		return
	}

	direction := 1.0
	if enemy.TypeConfig != nil && enemy.TypeConfig.Behavior == cfg.BehaviorKite {
		keep := enemy.TypeConfig.KeepDistance
		switch {
		case dist < keep:
			direction = -1
		case dist < keep*1.5:
			phys.VX, phys.VY = 0, 0
			return
		}
	}
	phys.VX = nx * enemy.Speed * direction
	phys.VY = ny * enemy.Speed * direction
}

// selectAttack walks the pattern table in tier order. The first pattern whose
// cooldown has elapsed and whose roll succeeds fires; at most one per tick.
func selectAttack(ecs *ecs.ECS, e *donburi.Entry, tx, ty float64) {
	enemy := components.Enemy.Get(e)
	r := gameRand(ecs)
	for i := range enemy.Patterns {
		p := &enemy.Patterns[i]
		if p.Remaining > 0 {
			continue
		}
		if r.Float64() >= p.Probability {
			continue
		}
		if !ExecuteAttack(ecs, e, p.Attack, tx, ty) {
			continue
		}
		p.Remaining = p.Cooldown
		if cfg.Enemy.CooldownJitter > 0 {
			p.Remaining += r.Intn(cfg.Enemy.CooldownJitter + 1)
		}
		return
	}
}
