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

// CreateChest spawns a closed chest centered on (cx, cy).
func CreateChest(ecs *ecs.ECS, cx, cy float64) *donburi.Entry {
	chest := archetypes.Chest.Spawn(ecs)

	size := cfg.Chest.Size
	obj := resolv.NewObject(cx-size/2, cy-size/2, size, size, tags.ResolvChest)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = chest
	components.Object.SetValue(chest, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Chest.SetValue(chest, components.ChestData{})
	return chest
}
