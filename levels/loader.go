// Package levels loads room templates from Tiled TMX files.
package levels

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strings"

	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/gamemath"
	"github.com/lafriks/go-tiled"
)

// ObstacleGroup is the object group whose rectangles become interior walls.
const ObstacleGroup = "Obstacles"

// LoadTemplate parses a TMX file into a room template. The room size comes
// from the map size; the remaining fields come from map properties and fall
// back to the default template's values when absent.
func LoadTemplate(fsys fs.FS, tmxPath string) (cfg.RoomTemplate, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return cfg.RoomTemplate{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	t := cfg.Room.Templates[cfg.Room.DefaultTemplate]
	t.Name = strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
	t.Width = float64(levelMap.Width * levelMap.TileWidth)
	t.Height = float64(levelMap.Height * levelMap.TileHeight)
	t.Obstacles = nil
	if t.Width <= 0 || t.Height <= 0 {
		return cfg.RoomTemplate{}, fmt.Errorf("TMX %s has an empty map", tmxPath)
	}

	if props := levelMap.Properties; props != nil {
		if name := props.GetString("name"); name != "" {
			t.Name = name
		}
		if v := props.GetInt("wallThickness"); v > 0 {
			t.WallThickness = float64(v)
		}
		if v := props.GetInt("padding"); v > 0 {
			t.Padding = float64(v)
		}
		if v := props.GetInt("enemyCount"); v > 0 {
			t.EnemyCount = v
		}
		if v := props.GetInt("chestCount"); v > 0 {
			t.ChestCount = v
		}
		if name := props.GetString("enemyKind"); name != "" {
			kind, ok := cfg.ParseEnemyKind(name)
			if !ok {
				log.Printf("Warning: TMX %s has unknown enemyKind %q, using %s", tmxPath, name, kind)
			}
			t.EnemyKind = kind
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != ObstacleGroup {
			continue
		}
		for _, o := range og.Objects {
			if o.Width <= 0 || o.Height <= 0 {
				continue
			}
			t.Obstacles = append(t.Obstacles, gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
		}
	}

	// Sort obstacles for consistent spawn filtering
	sort.Slice(t.Obstacles, func(i, j int) bool {
		if t.Obstacles[i].X != t.Obstacles[j].X {
			return t.Obstacles[i].X < t.Obstacles[j].X
		}
		return t.Obstacles[i].Y < t.Obstacles[j].Y
	})

	return t, nil
}

// LoadAll discovers all .tmx files in dir within fsys and loads a template
// for each, sorted by name.
func LoadAll(fsys fs.FS, dir string) ([]cfg.RoomTemplate, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	templates := make([]cfg.RoomTemplate, 0, len(matches))
	for _, path := range matches {
		t, err := LoadTemplate(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		templates = append(templates, t)
	}
	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name < templates[j].Name
	})
	return templates, nil
}

// Register makes templates available to BuildRoom by name, replacing any
// built-in template with the same name.
func Register(templates ...cfg.RoomTemplate) {
	for _, t := range templates {
		cfg.Room.Templates[t.Name] = t
	}
}
