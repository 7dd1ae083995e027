package systems

import (
	"math"

	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/gamemath"
	"github.com/automoto/cosmoball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type bodyPair [2]donburi.Entity

// UpdateCollisions resolves overlapping bodies pairwise. The resolv space is
// the broadphase; the exact overlap and impulse are computed on the AABBs.
func UpdateCollisions(ecs *ecs.ECS) {
	var bodies []*donburi.Entry
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if components.Active(e) && e.HasComponent(components.Object) {
			bodies = append(bodies, e)
		}
	})

	seen := make(map[bodyPair]struct{})
	for _, a := range bodies {
		if !components.Active(a) {
			continue
		}
		objA := components.Object.Get(a)
		if objA.Space == nil {
			continue
		}
		check := objA.Check(0, 0, tags.ResolvBody, tags.ResolvSolid)
		if check == nil {
			continue
		}
		for _, o := range check.Objects {
			if o == objA.Object {
				continue
			}
			b, ok := o.Data.(*donburi.Entry)
			if !ok || !b.Valid() {
				continue
			}
			if o.HasTags(tags.ResolvSolid) {
				ResolveWallCollision(a, components.Object.Get(b).Bounds())
				continue
			}
			if !components.Active(b) {
				continue
			}
			key := bodyPair{a.Entity(), b.Entity()}
			if _, done := seen[key]; done {
				continue
			}
			seen[key] = struct{}{}
			seen[bodyPair{b.Entity(), a.Entity()}] = struct{}{}
			ResolveBodyCollision(ecs, a, b)
		}
	}
}

// ResolveBodyCollision separates two overlapping bodies and exchanges a
// mass-weighted impulse. Returns false when they do not overlap.
func ResolveBodyCollision(ecs *ecs.ECS, a, b *donburi.Entry) bool {
	objA, objB := components.Object.Get(a), components.Object.Get(b)
	physA, physB := components.Physics.Get(a), components.Physics.Get(b)

	nx, ny, depth, ok := gamemath.Penetration(objA.Bounds(), objB.Bounds())
	if !ok {
		return false
	}

	invA := gamemath.InverseMass(physA.Mass)
	invB := gamemath.InverseMass(physB.Mass)
	shareA, shareB := gamemath.SeparationShares(invA, invB)
	objA.X -= nx * depth * shareA
	objA.Y -= ny * depth * shareA
	objB.X += nx * depth * shareB
	objB.Y += ny * depth * shareB

	impactSpeed := math.Hypot(physB.VX-physA.VX, physB.VY-physA.VY)
	restitution := math.Min(physA.Restitution, physB.Restitution)
	j := gamemath.CalculateImpulse(physA.VX, physA.VY, physB.VX, physB.VY, nx, ny, invA, invB, restitution)
	physA.VX -= j * invA * nx
	physA.VY -= j * invA * ny
	physB.VX += j * invB * nx
	physB.VY += j * invB * ny

	if objA.Space != nil {
		objA.Update()
	}
	if objB.Space != nil {
		objB.Update()
	}

	applyContactDamage(ecs, a, b, impactSpeed)
	return true
}

// ResolveWallCollision pushes a body fully out of a wall and reflects its
// normal velocity with the body's restitution.
func ResolveWallCollision(body *donburi.Entry, wall gamemath.Rect) bool {
	obj := components.Object.Get(body)
	phys := components.Physics.Get(body)

	nx, ny, depth, ok := gamemath.Penetration(obj.Bounds(), wall)
	if !ok {
		return false
	}
	obj.X -= nx * depth
	obj.Y -= ny * depth

	j := gamemath.CalculateImpulse(phys.VX, phys.VY, 0, 0, nx, ny, gamemath.InverseMass(phys.Mass), 0, phys.Restitution)
	inv := gamemath.InverseMass(phys.Mass)
	phys.VX -= j * inv * nx
	phys.VY -= j * inv * ny

	if obj.Space != nil {
		obj.Update()
	}
	return true
}

// applyContactDamage lets a fast player impact hurt the enemy it hit.
func applyContactDamage(ecs *ecs.ECS, a, b *donburi.Entry, impactSpeed float64) {
	if impactSpeed <= cfg.Combat.ContactSpeed {
		return
	}
	player, enemy := a, b
	if !player.HasComponent(components.Player) {
		player, enemy = b, a
	}
	if !player.HasComponent(components.Player) || !enemy.HasComponent(components.Enemy) {
		return
	}
	DamageEnemy(ecs, enemy, PlayerContactDamage(player))
}
