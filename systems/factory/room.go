package factory

import (
	"log"

	"github.com/automoto/cosmoball/archetypes"
	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/gamemath"
	"github.com/automoto/cosmoball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// LookupTemplate resolves a template name, falling back to the default
// template with a warning.
func LookupTemplate(name string) cfg.RoomTemplate {
	if t, ok := cfg.Room.Templates[name]; ok {
		return t
	}
	log.Printf("Warning: unknown room template %q, using %q", name, cfg.Room.DefaultTemplate)
	return cfg.Room.Templates[cfg.Room.DefaultTemplate]
}

// BuildRoom replaces the current room with the named template. The player is
// moved to the room center. Template enemies and chests are spawned only when
// populate is set; wave mode fills rooms through SpawnWave instead.
func BuildRoom(ecs *ecs.ECS, name string, populate bool) *donburi.Entry {
	return BuildRoomFromTemplate(ecs, LookupTemplate(name), populate)
}

// BuildRoomFromTemplate is BuildRoom for an already resolved template.
func BuildRoomFromTemplate(ecs *ecs.ECS, t cfg.RoomTemplate, populate bool) *donburi.Entry {
	ClearRoom(ecs)

	cell := cfg.Physics.SpaceCellSize
	CreateSpace(ecs, int(t.Width), int(t.Height), cell, cell)

	boundary := gamemath.Rect{X: 0, Y: 0, W: t.Width, H: t.Height}
	room := archetypes.Room.Spawn(ecs)
	components.Room.SetValue(room, components.RoomData{
		Template: t,
		Boundary: boundary,
		Inner:    boundary.Inset(t.WallThickness),
	})

	for _, r := range WallRects(boundary, t.WallThickness) {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range t.Obstacles {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}

	cx, cy := boundary.Center()
	if player, ok := components.Player.First(ecs.World); ok {
		PlacePlayer(ecs, player, cx, cy)
	} else {
		CreatePlayer(ecs, cx, cy)
	}

	if !populate {
		return room
	}

	roomData := components.Room.Get(room)
	points := SpawnPoints(ecs, roomData, cfg.Enemy.Size, t.EnemyCount+t.ChestCount)
	if len(points) < t.EnemyCount+t.ChestCount {
		log.Printf("Warning: room %q has %d spawn points for %d entities", t.Name, len(points), t.EnemyCount+t.ChestCount)
	}
	for i, p := range points {
		if i < t.EnemyCount {
			CreateEnemy(ecs, p.X, p.Y, t.EnemyKind, 1)
		} else {
			CreateChest(ecs, p.X, p.Y)
		}
	}
	return room
}

// SpawnPoints samples grid positions inside the room padding, keeps those at
// least the safe distance from the room center whose size-wide box fits the
// play area, shuffles them and truncates to count.
func SpawnPoints(ecs *ecs.ECS, room *components.RoomData, size float64, count int) []components.Vector {
	t := room.Template
	cx, cy := room.Boundary.Center()
	step := cfg.Room.GridStep
	if step <= 0 {
		step = 50
	}

	var points []components.Vector
	for x := room.Boundary.X + t.Padding; x < room.Boundary.Right()-t.Padding; x += step {
		for y := room.Boundary.Y + t.Padding; y < room.Boundary.Bottom()-t.Padding; y += step {
			if gamemath.Distance(x, y, cx, cy) < cfg.Room.SafeDistance {
				continue
			}
			box := gamemath.Rect{X: x - size/2, Y: y - size/2, W: size, H: size}
			if !fits(box, room.Inner) || blocked(box, t.Obstacles) {
				continue
			}
			points = append(points, components.Vector{X: x, Y: y})
		}
	}

	r := rng(ecs)
	r.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})
	if len(points) > count {
		points = points[:count]
	}

	if debugEnabled(ecs) {
		for _, p := range points {
			log.Printf("spawn point (%.0f, %.0f)", p.X, p.Y)
		}
	}
	return points
}

func fits(box, area gamemath.Rect) bool {
	return box.X >= area.X && box.Y >= area.Y && box.Right() <= area.Right() && box.Bottom() <= area.Bottom()
}

func blocked(box gamemath.Rect, obstacles []gamemath.Rect) bool {
	for _, o := range obstacles {
		if box.Overlaps(o) {
			return true
		}
	}
	return false
}

// ClearRoom removes walls, enemies, chests, projectiles and the room itself.
// The player survives.
func ClearRoom(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	query := donburi.NewQuery(filter.Or(
		filter.Contains(tags.Wall),
		filter.Contains(tags.Enemy),
		filter.Contains(tags.Chest),
		filter.Contains(tags.Projectile),
		filter.Contains(components.Room),
	))
	query.Each(ecs.World, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})
	for _, e := range toRemove {
		RemoveEntity(e)
	}
}
