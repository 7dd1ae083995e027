package factory

import (
	"github.com/automoto/cosmoball/archetypes"
	"github.com/automoto/cosmoball/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns one projectile family instance. Projectiles are
// circles and are tested directly rather than through the resolv space.
func CreateProjectile(ecs *ecs.ECS, data components.ProjectileData) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)
	if data.Kind.Area() {
		data.VX, data.VY = 0, 0
	}
	components.Projectile.SetValue(p, data)
	return p
}
