package factory

import (
	"log"
	"math"
	"sort"

	"github.com/automoto/cosmoball/archetypes"
	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a regular enemy centered on (cx, cy), scaled by difficulty.
func CreateEnemy(ecs *ecs.ECS, cx, cy float64, kind cfg.EnemyKind, difficulty float64) *donburi.Entry {
	return createEnemy(ecs, cx, cy, kind, difficulty, false)
}

// CreateBoss spawns a boss-flagged enemy with boss-tier health.
func CreateBoss(ecs *ecs.ECS, cx, cy float64, kind cfg.EnemyKind, difficulty float64) *donburi.Entry {
	return createEnemy(ecs, cx, cy, kind, difficulty, true)
}

func createEnemy(ecs *ecs.ECS, cx, cy float64, kind cfg.EnemyKind, difficulty float64, boss bool) *donburi.Entry {
	// Use the requested enemy kind, default to basic if not found
	enemyType, exists := cfg.Enemy.Types[kind]
	if !exists {
		log.Printf("Warning: unknown enemy kind %d, using %s", int(kind), cfg.KindBasic)
		kind = cfg.KindBasic
		enemyType = cfg.Enemy.Types[kind]
	}
	if difficulty <= 0 {
		difficulty = 1
	}

	var enemy *donburi.Entry
	if boss {
		enemy = archetypes.Enemy.Spawn(ecs, tags.Boss)
	} else {
		enemy = archetypes.Enemy.Spawn(ecs)
	}

	size := cfg.Enemy.Size
	mass := cfg.Physics.EnemyMass
	baseHealth := enemyType.Health
	scoreValue := cfg.Score.EnemyKill
	cooldownScale := 1.0
	if boss {
		size = cfg.Enemy.BossSize
		mass = cfg.Physics.BossMass
		baseHealth = enemyType.BossHealth
		scoreValue = cfg.Score.BossKill
		cooldownScale = cfg.Wave.BossCooldownScale
	}

	// Create collision object
	obj := resolv.NewObject(cx-size/2, cy-size/2, size, size, tags.ResolvEnemy, tags.ResolvBody)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	health := int(math.Ceil(float64(baseHealth) * difficulty))
	speed := enemyType.Speed * (1 + (difficulty-1)*cfg.Difficulty.SpeedMultiplier)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:       kind,
		TypeConfig: &enemyType,
		Boss:       boss,
		Speed:      speed,
		ScoreValue: scoreValue,
		Patterns:   newPatternTable(enemyType.Patterns, cooldownScale),
		State:      cfg.StateChasing,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Mass:        mass,
		Friction:    cfg.Physics.Friction,
		Restitution: cfg.Physics.Restitution,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: health,
		Max:     health,
	})

	return enemy
}

// newPatternTable copies the configured patterns into tier order. Cooldowns
// start full so a fresh enemy does not fire on its first tick.
func newPatternTable(patterns []cfg.AttackPatternConfig, cooldownScale float64) []components.AttackPattern {
	table := make([]components.AttackPattern, 0, len(patterns))
	for _, p := range patterns {
		cooldown := int(math.Round(float64(p.Cooldown) * cooldownScale))
		table = append(table, components.AttackPattern{
			Attack:      p.Attack,
			Tier:        p.Tier,
			Probability: p.Probability,
			Cooldown:    cooldown,
			Remaining:   cooldown,
		})
	}
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Tier < table[j].Tier
	})
	return table
}
