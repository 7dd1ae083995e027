package factory

import (
	"github.com/automoto/cosmoball/archetypes"
	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centered on (cx, cy).
func CreatePlayer(ecs *ecs.ECS, cx, cy float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.Size
	obj := resolv.NewObject(cx-size/2, cy-size/2, size, size, tags.ResolvPlayer, tags.ResolvBody)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Stats: components.PlayerStats{Speed: 1, Damage: 1, MaxHealth: 1},
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Mass:        cfg.Physics.PlayerMass,
		Friction:    cfg.Physics.Friction,
		Restitution: cfg.Physics.Restitution,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.InitialHealth,
		Max:     cfg.Player.InitialHealth,
	})

	return player
}

// PlacePlayer moves the player to be centered on (cx, cy), stops it and
// registers it with the current space.
func PlacePlayer(ecs *ecs.ECS, player *donburi.Entry, cx, cy float64) {
	obj := components.Object.Get(player)
	obj.X = cx - obj.W/2
	obj.Y = cy - obj.H/2
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	addToSpace(ecs, obj.Object)
	obj.Update()

	phys := components.Physics.Get(player)
	phys.VX, phys.VY = 0, 0
	components.Player.Get(player).Dragging = false
}
