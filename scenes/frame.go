package scenes

import (
	"image/color"

	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/gamemath"
	"github.com/automoto/cosmoball/messages"
	"github.com/automoto/cosmoball/tags"
	"github.com/yohamta/donburi"
)

// FrameState is a read-only snapshot of one frame for a renderer.
type FrameState struct {
	Tick       uint64
	Boundary   gamemath.Rect
	Background color.RGBA
	Walls      []gamemath.Rect

	Player      *PlayerView // nil once the player is gone
	Enemies     []EnemyView
	Projectiles []ProjectileView
	Chests      []ChestView

	HUD    HUD
	Shake  float64
	Events []messages.Event

	// Bodies lists the broadphase objects while debug is on.
	Bodies []DebugBody
}

// DebugBody is a broadphase object outline.
type DebugBody struct {
	Bounds gamemath.Rect
	Tag    string
}

type PlayerView struct {
	Bounds   gamemath.Rect
	Color    color.RGBA
	Dragging bool
	AnchorX  float64
	AnchorY  float64
	PointerX float64
	PointerY float64

	Invulnerable bool
	Reflecting   bool
}

type EnemyView struct {
	Bounds    gamemath.Rect
	Color     color.RGBA
	Kind      cfg.EnemyKind
	Boss      bool
	State     cfg.StateID
	Stunned   bool
	Health    int
	MaxHealth int
}

type ProjectileView struct {
	Kind      components.ProjectileKind
	X, Y      float64
	Radius    float64
	Color     color.RGBA
	Reflected bool
}

type ChestView struct {
	Bounds   gamemath.Rect
	Color    color.RGBA
	Opened   bool
	Progress float64 // reveal progress in [0,1]
}

// HUD holds the scalar state shown over the playfield.
type HUD struct {
	RunID      string
	Score      int
	Best       int
	Mode       cfg.GameMode
	Phase      string
	Wave       int
	Level      int
	Loop       int
	Boss       bool
	Difficulty float64
	HP         int
	MaxHP      int

	Paused      bool
	UpgradeText string
	GameOver    bool
	Victory     bool
	Debug       bool
	Muted       bool
}

func (ws *WorldScene) snapshot() FrameState {
	w := ws.ecs.World
	var fs FrameState

	if room := components.GetRoom(w); room != nil {
		fs.Boundary = room.Boundary
		fs.Background = room.Template.Background
	}

	tags.Wall.Each(w, func(e *donburi.Entry) {
		fs.Walls = append(fs.Walls, components.Object.Get(e).Bounds())
	})

	if player, ok := components.GetPlayer(w); ok {
		fs.Player = playerView(player)
		health := components.Health.Get(player)
		fs.HUD.HP = health.Current
		fs.HUD.MaxHP = health.Max
	}

	components.Enemy.Each(w, func(e *donburi.Entry) {
		if !components.Active(e) {
			return
		}
		enemy := components.Enemy.Get(e)
		health := components.Health.Get(e)
		v := EnemyView{
			Bounds:    components.Object.Get(e).Bounds(),
			Kind:      enemy.Kind,
			Boss:      enemy.Boss,
			State:     enemy.State,
			Stunned:   enemy.StunTicks > 0,
			Health:    health.Current,
			MaxHealth: health.Max,
		}
		if enemy.TypeConfig != nil {
			v.Color = enemy.TypeConfig.Color
		}
		fs.Enemies = append(fs.Enemies, v)
	})

	components.Projectile.Each(w, func(e *donburi.Entry) {
		if !components.Active(e) {
			return
		}
		p := components.Projectile.Get(e)
		fs.Projectiles = append(fs.Projectiles, ProjectileView{
			Kind:      p.Kind,
			X:         p.X,
			Y:         p.Y,
			Radius:    p.Radius,
			Color:     p.Color,
			Reflected: p.Reflected,
		})
	})

	components.Chest.Each(w, func(e *donburi.Entry) {
		if !components.Active(e) {
			return
		}
		chest := components.Chest.Get(e)
		fs.Chests = append(fs.Chests, ChestView{
			Bounds:   components.Object.Get(e).Bounds(),
			Color:    cfg.Chest.Color,
			Opened:   chest.Opened,
			Progress: chest.Progress,
		})
	})

	if game := components.GetGame(w); game != nil {
		fs.Tick = game.Tick
		fs.HUD.RunID = game.RunID.String()
		fs.HUD.Score = game.Score
		fs.HUD.Best = game.BestScore
		fs.HUD.GameOver = game.GameOver
		fs.HUD.Victory = game.Victory
		fs.HUD.Debug = game.Debug
		fs.HUD.Muted = game.Muted
	}
	if prog := components.GetProgression(w); prog != nil {
		fs.HUD.Mode = prog.Mode
		if prog.Phase >= 0 && prog.Phase < len(cfg.Phases) {
			fs.HUD.Phase = cfg.Phases[prog.Phase].Name
		}
		fs.HUD.Wave = prog.Wave
		fs.HUD.Level = prog.Level
		fs.HUD.Loop = prog.Loop
		fs.HUD.Boss = prog.BossWave()
		fs.HUD.Difficulty = prog.Difficulty
	}
	if fs.HUD.Debug {
		fs.Bodies = debugBodies(w)
	}
	if pause := components.GetPause(w); pause != nil {
		fs.HUD.Paused = pause.IsPaused
		fs.HUD.UpgradeText = pause.UpgradeText
	}
	if e, ok := components.ScreenShake.First(w); ok {
		fs.Shake = components.ScreenShake.Get(e).Intensity
	}
	if e, ok := components.EventQueue.First(w); ok {
		q := components.EventQueue.Get(e)
		fs.Events = append([]messages.Event(nil), q.Events...)
		q.Events = q.Events[:0]
	}

	return fs
}

func debugBodies(w donburi.World) []DebugBody {
	space := components.GetSpace(w)
	if space == nil {
		return nil
	}
	var bodies []DebugBody
	for _, obj := range space.Objects() {
		tag := ""
		for _, t := range []string{tags.ResolvSolid, tags.ResolvPlayer, tags.ResolvEnemy, tags.ResolvChest} {
			if obj.HasTags(t) {
				tag = t
				break
			}
		}
		bodies = append(bodies, DebugBody{
			Bounds: gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H},
			Tag:    tag,
		})
	}
	return bodies
}

func playerView(e *donburi.Entry) *PlayerView {
	player := components.Player.Get(e)
	return &PlayerView{
		Bounds:       components.Object.Get(e).Bounds(),
		Color:        cfg.Player.Color,
		Dragging:     player.Dragging,
		AnchorX:      player.Anchor.X,
		AnchorY:      player.Anchor.Y,
		PointerX:     player.Pointer.X,
		PointerY:     player.Pointer.Y,
		Invulnerable: player.Invulnerable(),
		Reflecting:   player.ReflectTicks > 0,
	}
}
