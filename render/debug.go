package render

import (
	"image/color"

	"github.com/automoto/cosmoball/scenes"
	"github.com/automoto/cosmoball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugColors = map[string]color.RGBA{
	tags.ResolvSolid:  {100, 100, 100, 255}, // Grey
	tags.ResolvPlayer: {0, 0, 255, 255},     // Blue
	tags.ResolvEnemy:  {255, 0, 0, 255},     // Red
	tags.ResolvChest:  {0, 255, 0, 255},     // Green
}

// drawDebug outlines every broadphase object.
func drawDebug(screen *ebiten.Image, bodies []scenes.DebugBody, ox, oy float64) {
	for _, b := range bodies {
		c, ok := debugColors[b.Tag]
		if !ok {
			c = color.RGBA{0, 255, 255, 255} // Cyan default
		}
		x, y := float32(b.Bounds.X+ox), float32(b.Bounds.Y+oy)
		w, h := float32(b.Bounds.W), float32(b.Bounds.H)

		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}
