package archetypes

import (
	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Physics,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Physics,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Chest = newArchetype(
		tags.Chest,
		components.Chest,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
	)
	Space = newArchetype(
		components.Space,
	)
	Room = newArchetype(
		components.Room,
	)
	Game = newArchetype(
		components.Game,
		components.Progression,
		components.Pause,
		components.Input,
		components.EventQueue,
		components.ScreenShake,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
