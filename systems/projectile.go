package systems

import (
	"github.com/automoto/cosmoball/components"
	"github.com/automoto/cosmoball/gamemath"
	"github.com/automoto/cosmoball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves every active projectile family instance and
// resolves its hits against the player, walls and, once reflected, enemies.
func UpdateProjectiles(ecs *ecs.ECS) {
	var projectiles []*donburi.Entry
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		if components.Active(e) {
			projectiles = append(projectiles, e)
		}
	})
	if len(projectiles) == 0 {
		return
	}

	var walls []gamemath.Rect
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		walls = append(walls, components.Object.Get(e).Bounds())
	})

	var boundary *gamemath.Rect
	if room := components.GetRoom(ecs.World); room != nil {
		boundary = &room.Boundary
	}

	for _, e := range projectiles {
		tickProjectile(ecs, e, boundary, walls)
	}
}

func tickProjectile(ecs *ecs.ECS, e *donburi.Entry, boundary *gamemath.Rect, walls []gamemath.Rect) {
	p := components.Projectile.Get(e)

	if !p.Kind.Area() {
		p.X += p.VX
		p.Y += p.VY
	}
	if p.Kind == components.KindWave && p.Radius < p.MaxRadius {
		p.Radius += p.Growth
		if p.Radius > p.MaxRadius {
			p.Radius = p.MaxRadius
		}
	}

	if boundary != nil && !boundary.Contains(p.X, p.Y) {
		components.Deactivate(e, components.CauseOutOfBounds)
		return
	}

	if p.Kind.Area() {
		applyAreaEffect(ecs, p)
	} else if consumed := resolveProjectileHits(ecs, e, p, walls); consumed {
		return
	}

	if p.Duration > 0 {
		p.Duration--
		if p.Duration == 0 {
			components.Deactivate(e, components.CauseExpired)
		}
	}
}

// resolveProjectileHits handles a traveling projectile's contacts. Returns
// true when the projectile was consumed.
func resolveProjectileHits(ecs *ecs.ECS, e *donburi.Entry, p *components.ProjectileData, walls []gamemath.Rect) bool {
	if p.Reflected {
		if enemy := firstEnemyHit(ecs, p); enemy != nil {
			DamageEnemy(ecs, enemy, p.Damage)
			components.Deactivate(e, components.CauseConsumed)
			return true
		}
	} else if player, ok := components.GetPlayer(ecs.World); ok && collidesWith(p, player) {
		pd := components.Player.Get(player)
		if pd.ReflectTicks > 0 {
			p.VX, p.VY = -p.VX, -p.VY
			p.Reflected = true
			p.Owner = player.Entity()
		} else {
			DamagePlayer(ecs, p.Damage)
			components.Deactivate(e, components.CauseConsumed)
			return true
		}
	}

	for _, w := range walls {
		if gamemath.CircleIntersectsRect(p.X, p.Y, p.Radius, w) {
			components.Deactivate(e, components.CauseConsumed)
			return true
		}
	}
	return false
}

// applyAreaEffect damages the player every tick it overlaps the area; the
// player's invulnerability window spaces the hits out. Gravity fields also
// pull the player toward their center.
func applyAreaEffect(ecs *ecs.ECS, p *components.ProjectileData) {
	player, ok := components.GetPlayer(ecs.World)
	if !ok {
		return
	}
	if p.Kind == components.KindGravity {
		ApplyGravityPull(p, player)
	}
	if collidesWith(p, player) {
		DamagePlayer(ecs, p.Damage)
	}
}

// ApplyGravityPull adds (field - target) * (radius - dist) * pull / dist to
// the target's velocity while it is inside the radius.
func ApplyGravityPull(p *components.ProjectileData, target *donburi.Entry) {
	tx, ty := components.Object.Get(target).Center()
	dx := p.X - tx
	dy := p.Y - ty
	dist := gamemath.Distance(tx, ty, p.X, p.Y)
	if dist <= 0 || dist >= p.Radius {
		return
	}
	force := (p.Radius - dist) * p.PullForce / dist
	phys := components.Physics.Get(target)
	phys.VX += dx * force
	phys.VY += dy * force
}

func collidesWith(p *components.ProjectileData, target *donburi.Entry) bool {
	return gamemath.CircleIntersectsRect(p.X, p.Y, p.Radius, components.Object.Get(target).Bounds())
}

func firstEnemyHit(ecs *ecs.ECS, p *components.ProjectileData) *donburi.Entry {
	var hit *donburi.Entry
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if hit != nil || !components.Active(e) {
			return
		}
		if collidesWith(p, e) {
			hit = e
		}
	})
	return hit
}
