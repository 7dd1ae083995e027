package factory

import (
	"github.com/automoto/cosmoball/archetypes"
	"github.com/automoto/cosmoball/components"
	"github.com/automoto/cosmoball/gamemath"
	"github.com/automoto/cosmoball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	// Create collision object
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}

// WallRects returns the top, bottom, left and right walls for a boundary.
func WallRects(boundary gamemath.Rect, thickness float64) []gamemath.Rect {
	return []gamemath.Rect{
		{X: boundary.X, Y: boundary.Y, W: boundary.W, H: thickness},
		{X: boundary.X, Y: boundary.Bottom() - thickness, W: boundary.W, H: thickness},
		{X: boundary.X, Y: boundary.Y, W: thickness, H: boundary.H},
		{X: boundary.Right() - thickness, Y: boundary.Y, W: thickness, H: boundary.H},
	}
}
