package components

import (
	"github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/gamemath"
	"github.com/yohamta/donburi"
)

type RoomData struct {
	Template config.RoomTemplate
	Boundary gamemath.Rect
	Inner    gamemath.Rect // boundary minus wall thickness

	Cleared         bool
	TransitionTicks int // countdown before the next room loads
}

var Room = donburi.NewComponentType[RoomData]()
