// Package render draws a frame snapshot with solid-color shapes.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	wallColor     = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	aimColor      = color.NRGBA{R: 255, G: 255, B: 255, A: 160}
	overlayColor  = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	healthBgColor = color.RGBA{R: 60, G: 0, B: 0, A: 255}
)

// Offset returns the world-to-screen translation that centers the room in a
// screen of the given size, before shake.
func Offset(fs scenes.FrameState, screenW, screenH int) (float64, float64) {
	return (float64(screenW) - fs.Boundary.W) / 2, (float64(screenH) - fs.Boundary.H) / 2
}

// Draw renders fs onto screen.
func Draw(screen *ebiten.Image, fs scenes.FrameState) {
	screen.Fill(color.Black)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ox, oy := Offset(fs, w, h)
	// Shake jitters the playfield; the HUD stays put
	if fs.Shake > 0 {
		ox += math.Sin(float64(fs.Tick)*1.7) * fs.Shake
		oy += math.Cos(float64(fs.Tick)*2.3) * fs.Shake
	}

	b := fs.Boundary
	vector.FillRect(screen, float32(b.X+ox), float32(b.Y+oy), float32(b.W), float32(b.H), fs.Background, false)
	for _, r := range fs.Walls {
		vector.FillRect(screen, float32(r.X+ox), float32(r.Y+oy), float32(r.W), float32(r.H), wallColor, false)
	}

	for _, c := range fs.Chests {
		var clr color.Color = c.Color
		if c.Opened {
			// Fade out as the reveal completes
			clr = withAlpha(c.Color, uint8(255*(1-c.Progress)))
		}
		vector.FillRect(screen, float32(c.Bounds.X+ox), float32(c.Bounds.Y+oy), float32(c.Bounds.W), float32(c.Bounds.H), clr, false)
	}

	for _, e := range fs.Enemies {
		drawEnemy(screen, e, ox, oy)
	}

	for _, p := range fs.Projectiles {
		drawProjectile(screen, p, ox, oy)
	}

	if p := fs.Player; p != nil {
		drawPlayer(screen, p, ox, oy)
	}
	if len(fs.Bodies) > 0 {
		drawDebug(screen, fs.Bodies, ox, oy)
	}

	drawHUD(screen, fs, w, h)
}

func drawEnemy(screen *ebiten.Image, e scenes.EnemyView, ox, oy float64) {
	x, y := float32(e.Bounds.X+ox), float32(e.Bounds.Y+oy)
	vector.FillRect(screen, x, y, float32(e.Bounds.W), float32(e.Bounds.H), e.Color, false)
	if e.Boss {
		vector.StrokeRect(screen, x-2, y-2, float32(e.Bounds.W)+4, float32(e.Bounds.H)+4, 2, cfg.Gold, false)
	}
	if e.State == cfg.StateCharging {
		cx, cy := e.Bounds.Center()
		vector.StrokeCircle(screen, float32(cx+ox), float32(cy+oy), float32(e.Bounds.W), 2, cfg.White, true)
	}
	if e.Stunned {
		vector.StrokeRect(screen, x, y, float32(e.Bounds.W), float32(e.Bounds.H), 2, cfg.Yellow, false)
	}

	if e.MaxHealth > 0 {
		frac := float32(e.Health) / float32(e.MaxHealth)
		vector.FillRect(screen, x, y-8, float32(e.Bounds.W), 4, healthBgColor, false)
		vector.FillRect(screen, x, y-8, float32(e.Bounds.W)*frac, 4, cfg.Red, false)
	}
}

func drawProjectile(screen *ebiten.Image, p scenes.ProjectileView, ox, oy float64) {
	x, y, r := float32(p.X+ox), float32(p.Y+oy), float32(p.Radius)
	switch p.Kind {
	case components.KindAOE, components.KindGravity:
		vector.DrawFilledCircle(screen, x, y, r, withAlpha(p.Color, 80), true)
		vector.StrokeCircle(screen, x, y, r, 1, p.Color, true)
	case components.KindWave:
		vector.StrokeCircle(screen, x, y, r, 3, p.Color, true)
	default:
		var clr color.Color = p.Color
		if p.Reflected {
			clr = cfg.White
		}
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
	}
}

func drawPlayer(screen *ebiten.Image, p *scenes.PlayerView, ox, oy float64) {
	var clr color.Color = p.Color
	if p.Invulnerable {
		clr = withAlpha(p.Color, 140)
	}
	vector.FillRect(screen, float32(p.Bounds.X+ox), float32(p.Bounds.Y+oy), float32(p.Bounds.W), float32(p.Bounds.H), clr, false)
	if p.Reflecting {
		cx, cy := p.Bounds.Center()
		vector.StrokeCircle(screen, float32(cx+ox), float32(cy+oy), float32(p.Bounds.W)*0.8, 2, cfg.Gold, true)
	}
	if p.Dragging {
		vector.StrokeLine(screen,
			float32(p.AnchorX+ox), float32(p.AnchorY+oy),
			float32(p.PointerX+ox), float32(p.PointerY+oy),
			2, aimColor, true)
	}
}

func drawHUD(screen *ebiten.Image, fs scenes.FrameState, w, h int) {
	face := basicfont.Face7x13
	hud := fs.HUD

	text.Draw(screen, fmt.Sprintf("Score %d  Best %d", hud.Score, hud.Best), face, 10, 20, cfg.White)
	text.Draw(screen, fmt.Sprintf("HP %d/%d", hud.HP, hud.MaxHP), face, 10, 38, cfg.White)

	var stage string
	if hud.Mode == cfg.ModeLevels {
		stage = fmt.Sprintf("Level %d", hud.Level+1)
	} else {
		stage = fmt.Sprintf("%s  Wave %d  Cycle %d", hud.Phase, hud.Wave+1, hud.Loop+1)
		if hud.Boss {
			stage += "  BOSS"
		}
	}
	text.Draw(screen, stage, face, 10, 56, cfg.White)

	if hud.Debug {
		text.Draw(screen, fmt.Sprintf("run %s  tick %d  difficulty %.1f", hud.RunID, fs.Tick, hud.Difficulty), face, 10, h-10, cfg.Yellow)
	}
	if hud.Muted {
		text.Draw(screen, "muted", face, w-60, 20, cfg.White)
	}

	if hud.UpgradeText != "" {
		drawCentered(screen, hud.UpgradeText, w, h/2-40, cfg.Gold)
	}

	switch {
	case hud.GameOver:
		vector.FillRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)
		title := "GAME OVER"
		if hud.Victory {
			title = "VICTORY"
		}
		drawCentered(screen, title, w, h/2, cfg.White)
		drawCentered(screen, fmt.Sprintf("Final score %d", hud.Score), w, h/2+20, cfg.White)
		drawCentered(screen, "Press R to restart", w, h/2+40, cfg.White)
	case hud.Paused:
		vector.FillRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)
		drawCentered(screen, "PAUSED", w, h/2, cfg.White)
	}
}

func drawCentered(screen *ebiten.Image, s string, w, y int, clr color.Color) {
	width := text.BoundString(basicfont.Face7x13, s).Dx()
	text.Draw(screen, s, basicfont.Face7x13, (w-width)/2, y, clr)
}

func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}
