package components

import (
	"github.com/automoto/cosmoball/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData holds the body's position and size. The resolv object doubles
// as the broadphase entry when it is added to the Space.
type ObjectData struct {
	*resolv.Object
}

// Bounds returns the object's rectangle.
func (o ObjectData) Bounds() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Center returns the object's midpoint.
func (o ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()

