package systems

import (
	"github.com/automoto/cosmoball/components"
	"github.com/automoto/cosmoball/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths culls every inactive entity from the space and the world.
func UpdateDeaths(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})
	for _, e := range toRemove {
		factory.RemoveEntity(e)
	}
}
