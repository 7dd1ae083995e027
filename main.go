package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/levels"
	"github.com/automoto/cosmoball/messages"
	"github.com/automoto/cosmoball/render"
	"github.com/automoto/cosmoball/scenes"
	"github.com/automoto/cosmoball/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Game struct {
	scene *scenes.WorldScene
	sound *render.Sound
	frame scenes.FrameState
}

func NewGame(opts scenes.Options) *Game {
	g := &Game{
		scene: scenes.NewWorldScene(opts),
		sound: render.NewSound(),
	}
	g.frame = g.scene.Tick(nil)
	return g
}

func (g *Game) Update() error {
	g.frame = g.scene.Tick(g.readInputs())
	g.sound.Play(g.frame.Events, g.frame.HUD.Muted)
	return nil
}

// readInputs converts this frame's mouse and key state into world events.
func (g *Game) readInputs() []messages.Input {
	var inputs []messages.Input

	cx, cy := ebiten.CursorPosition()
	ox, oy := render.Offset(g.frame, config.C.Width, config.C.Height)
	wx, wy := float64(cx)-ox, float64(cy)-oy

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		inputs = append(inputs, messages.DragBegin(wx, wy))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		inputs = append(inputs, messages.DragEnd(wx, wy))
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		inputs = append(inputs, messages.DragMove(wx, wy))
	}

	return append(inputs, toggleInputs()...)
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.Draw(screen, g.frame)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "Config file overriding the defaults (yaml, json or toml)")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	mode := flag.String("mode", "", "Game mode: waves or levels (empty = config default)")
	tmxDir := flag.String("tmx", "", "Directory of .tmx room templates to register")
	levelList := flag.String("levels", "", "Comma separated room templates for levels mode")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	if *tmxDir != "" {
		dir := filepath.Clean(*tmxDir)
		templates, err := levels.LoadAll(os.DirFS(filepath.Dir(dir)), filepath.Base(dir))
		if err != nil {
			log.Fatalf("Failed to load room templates: %v", err)
		}
		levels.Register(templates...)
		log.Printf("Registered %d room templates from %s", len(templates), dir)
	}
	if *levelList != "" {
		config.Game.Levels = strings.Split(*levelList, ",")
	}

	gameMode := config.Game.Mode
	if *mode != "" {
		gameMode = config.GameMode(*mode)
		if gameMode != config.ModeWaves && gameMode != config.ModeLevels {
			log.Fatalf("Unknown game mode %q", *mode)
		}
	}
	if *seed == 0 && config.Game.Seed != 0 {
		*seed = config.Game.Seed
	}

	var store systems.ScoreStore
	gdataStore, err := systems.OpenGDataStore(config.Game.AppName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		store = &systems.MemoryStore{}
	} else {
		store = gdataStore
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Cosmoball")

	if err := ebiten.RunGame(NewGame(scenes.Options{
		Seed:  *seed,
		Mode:  gameMode,
		Store: store,
	})); err != nil {
		log.Fatal(err)
	}
}
