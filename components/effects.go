package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks the active screen shake decay
type ScreenShakeData struct {
	Intensity float64 // current offset in pixels
	Tween     *gween.Tween
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
