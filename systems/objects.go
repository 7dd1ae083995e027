package systems

import (
	"github.com/automoto/cosmoball/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every moved body with the broadphase cells.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	}
}
