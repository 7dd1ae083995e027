package factory

import (
	"github.com/automoto/cosmoball/archetypes"
	"github.com/automoto/cosmoball/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace replaces the broadphase space. Any existing space entry is removed.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	if old, ok := components.Space.First(ecs.World); ok {
		old.Remove()
	}
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the current space, if there is one.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if space := components.GetSpace(ecs.World); space != nil {
		space.Add(obj)
	}
}

// RemoveEntity drops an entry from the space and the world.
func RemoveEntity(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	e.Remove()
}
