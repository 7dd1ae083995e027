package config

import (
	"image/color"

	"github.com/automoto/cosmoball/gamemath"
)

// PhysicsConfig contains the movable-body integration constants
type PhysicsConfig struct {
	Friction    float64 `mapstructure:"friction"`    // multiplicative velocity retention per tick
	Restitution float64 `mapstructure:"restitution"` // velocity retention on bounce
	LaunchScale float64 `mapstructure:"launch_scale"`
	LaunchCap   float64 `mapstructure:"launch_cap"`

	PlayerMass float64 `mapstructure:"player_mass"`
	EnemyMass  float64 `mapstructure:"enemy_mass"`
	BossMass   float64 `mapstructure:"boss_mass"`

	SpaceCellSize int `mapstructure:"space_cell_size"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Size          float64    `mapstructure:"size"`
	InitialHealth int        `mapstructure:"initial_health"`
	HealthCap     int        `mapstructure:"health_cap"` // upper bound for max health upgrades
	InvulnTicks   int        `mapstructure:"invuln_ticks"`
	BaseDamage    int        `mapstructure:"base_damage"`
	Color         color.RGBA `mapstructure:"-"`
}

// AttackPatternConfig is one row of an enemy's attack table
type AttackPatternConfig struct {
	Attack      AttackID
	Tier        AttackTier
	Probability float64
	Cooldown    int
}

// EnemyTypeConfig contains configuration for one enemy kind
type EnemyTypeConfig struct {
	Kind         EnemyKind
	Health       int
	BossHealth   int
	Speed        float64
	Color        color.RGBA
	Behavior     Behavior
	KeepDistance float64 // kite tier only
	Patterns     []AttackPatternConfig
}

// EnemyConfig contains enemy configuration shared across kinds
type EnemyConfig struct {
	Types map[EnemyKind]EnemyTypeConfig

	Size                 float64
	BossSize             float64
	ContactImmunityTicks int
	CooldownJitter       int
	AttackRecoveryTicks  int
	ChargeTicks          int
}

// AttackSpec describes the projectile family instance an attack spawns
type AttackSpec struct {
	Shape     AttackShape
	Speed     float64
	Damage    int
	Radius    float64
	Count     int // ring bursts
	Duration  int // area effects and waves, -1 for unbounded
	PullForce float64
	Growth    float64
	MaxRadius float64
	Charged   bool
	Color     color.RGBA
}

// CombatConfig contains contact damage and feedback values
type CombatConfig struct {
	ContactSpeed   float64 `mapstructure:"contact_speed"` // relative speed needed for contact damage
	HitShake       float64 `mapstructure:"hit_shake"`
	DeathShake     float64 `mapstructure:"death_shake"`
	BossDeathShake float64 `mapstructure:"boss_death_shake"`
	PlayerHitShake float64 `mapstructure:"player_hit_shake"`
}

// WaveConfig contains wave spawning values
type WaveConfig struct {
	BaseEnemies            int     `mapstructure:"base_enemies"`
	MaxEnemies             int     `mapstructure:"max_enemies"`
	WavesPerPhase          int     `mapstructure:"waves_per_phase"`
	BossWaveIndex          int     `mapstructure:"boss_wave_index"`
	BossCooldownScale      float64 `mapstructure:"boss_cooldown_scale"`
	ChestSpawnChance       float64 `mapstructure:"chest_spawn_chance"`
	ChestMinPlayerDistance float64 `mapstructure:"chest_min_player_distance"`
	ChestPlacementAttempts int     `mapstructure:"chest_placement_attempts"`
	TransitionTicks        int     `mapstructure:"transition_ticks"`
}

// DifficultyConfig contains difficulty scaling values
type DifficultyConfig struct {
	Start           float64 `mapstructure:"start"`
	BaseIncrease    float64 `mapstructure:"base_increase"`
	SpeedMultiplier float64 `mapstructure:"speed_multiplier"`
}

// PhaseConfig is one entry of the phase cycle
type PhaseConfig struct {
	Name     string
	Kind     EnemyKind
	Template string
}

// UpgradeConfig is one entry of the chest loot table
type UpgradeConfig struct {
	Name          string
	Kind          UpgradeKind
	Stat          StatID
	Ability       AbilityID
	DurationTicks int
	Description   string
}

// ChestConfig contains chest and upgrade values
type ChestConfig struct {
	Size            float64 `mapstructure:"size"`
	DisplayTicks    int     `mapstructure:"display_ticks"`
	StatModifierMin float64 `mapstructure:"stat_modifier_min"`
	StatModifierMax float64 `mapstructure:"stat_modifier_max"`
	Upgrades        []UpgradeConfig
	Color           color.RGBA `mapstructure:"-"`
}

// RoomTemplate describes a room layout
type RoomTemplate struct {
	Name          string
	Width         float64
	Height        float64
	WallThickness float64
	Padding       float64
	EnemyCount    int
	EnemyKind     EnemyKind
	ChestCount    int
	Background    color.RGBA
	Obstacles     []gamemath.Rect // extra interior walls
}

// RoomConfig contains room building values
type RoomConfig struct {
	Templates       map[string]RoomTemplate
	DefaultTemplate string
	GridStep        float64
	SafeDistance    float64 // minimum spawn distance from the room center
}

// ScoreConfig contains score awards
type ScoreConfig struct {
	EnemyKill int `mapstructure:"enemy_kill"`
	BossKill  int `mapstructure:"boss_kill"`
	Chest     int `mapstructure:"chest"`
}

// EffectsConfig contains feedback effect values
type EffectsConfig struct {
	ShakeTicks int `mapstructure:"shake_ticks"`
}

// GameConfig contains run-level options
type GameConfig struct {
	Mode    GameMode `mapstructure:"mode"`
	Levels  []string `mapstructure:"levels"` // levels mode sequence
	Seed    int64    `mapstructure:"seed"`   // 0 picks a time-based seed
	AppName string   `mapstructure:"app_name"`
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Attacks map[AttackID]AttackSpec
var Combat CombatConfig
var Wave WaveConfig
var Difficulty DifficultyConfig
var Phases []PhaseConfig
var Chest ChestConfig
var Room RoomConfig
var Score ScoreConfig
var Effects EffectsConfig
var Game GameConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 200, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 220, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Brown        = color.RGBA{R: 139, G: 90, B: 43, A: 255}
	Gray         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 1024,
	}

	Physics = PhysicsConfig{
		Friction:      0.98,
		Restitution:   0.8,
		LaunchScale:   0.1, // 10px of drag per unit of speed
		LaunchCap:     20,
		PlayerMass:    2,
		EnemyMass:     1,
		BossMass:      3,
		SpaceCellSize: 32,
	}

	Player = PlayerConfig{
		Size:          50,
		InitialHealth: 20,
		HealthCap:     50,
		InvulnTicks:   30,
		BaseDamage:    1,
		Color:         Blue,
	}

	basicType := EnemyTypeConfig{
		Kind:       KindBasic,
		Health:     2,
		BossHealth: 5,
		Speed:      1.0,
		Color:      Red,
		Behavior:   BehaviorChase,
		Patterns: []AttackPatternConfig{
			{Attack: AttackChargedBlast, Tier: TierArea, Probability: 0.1, Cooldown: 360},
			{Attack: AttackHeavyShot, Tier: TierHeavy, Probability: 0.2, Cooldown: 240},
			{Attack: AttackBasicShot, Tier: TierBasic, Probability: 0.7, Cooldown: 120},
		},
	}

	earthType := EnemyTypeConfig{
		Kind:       KindEarth,
		Health:     1,
		BossHealth: 5,
		Speed:      1.0,
		Color:      Green,
		Behavior:   BehaviorChase,
		Patterns: []AttackPatternConfig{
			{Attack: AttackGroundSlam, Tier: TierArea, Probability: 0.1, Cooldown: 360},
			{Attack: AttackRockThrow, Tier: TierHeavy, Probability: 0.2, Cooldown: 240},
			{Attack: AttackBasicShot, Tier: TierBasic, Probability: 0.7, Cooldown: 120},
		},
	}

	solarType := EnemyTypeConfig{
		Kind:         KindSolar,
		Health:       2,
		BossHealth:   10,
		Speed:        1.2,
		Color:        Orange,
		Behavior:     BehaviorKite,
		KeepDistance: 200,
		Patterns: []AttackPatternConfig{
			{Attack: AttackSolarFlare, Tier: TierArea, Probability: 0.15, Cooldown: 300},
			{Attack: AttackHeatWave, Tier: TierHeavy, Probability: 0.2, Cooldown: 240},
			{Attack: AttackBasicShot, Tier: TierBasic, Probability: 0.7, Cooldown: 120},
		},
	}

	blackholeType := EnemyTypeConfig{
		Kind:       KindBlackhole,
		Health:     5,
		BossHealth: 15,
		Speed:      1.5,
		Color:      Purple,
		Behavior:   BehaviorChase,
		Patterns: []AttackPatternConfig{
			{Attack: AttackGravityPull, Tier: TierArea, Probability: 0.1, Cooldown: 420},
			{Attack: AttackVoidBlast, Tier: TierHeavy, Probability: 0.2, Cooldown: 300},
			{Attack: AttackBasicShot, Tier: TierBasic, Probability: 0.7, Cooldown: 120},
		},
	}

	Enemy = EnemyConfig{
		Types: map[EnemyKind]EnemyTypeConfig{
			KindBasic:     basicType,
			KindEarth:     earthType,
			KindSolar:     solarType,
			KindBlackhole: blackholeType,
		},
		Size:                 40,
		BossSize:             80,
		ContactImmunityTicks: 6, // 100ms at 60fps
		CooldownJitter:       30,
		AttackRecoveryTicks:  10,
		ChargeTicks:          30, // 500ms at 60fps
	}

	Attacks = map[AttackID]AttackSpec{
		AttackBasicShot:    {Shape: ShapeShot, Speed: 8, Damage: 1, Radius: 4, Duration: -1, Color: Red},
		AttackHeavyShot:    {Shape: ShapeShot, Speed: 2, Damage: 2, Radius: 8, Duration: -1, Color: Orange},
		AttackChargedBlast: {Shape: ShapeAOE, Damage: 2, Radius: 50, Duration: 30, Charged: true, Color: Red},
		AttackGroundSlam:   {Shape: ShapeAOE, Damage: 2, Radius: 60, Duration: 30, Charged: true, Color: Brown},
		AttackRockThrow:    {Shape: ShapeShot, Speed: 3, Damage: 2, Radius: 10, Duration: -1, Color: Brown},
		AttackSolarFlare:   {Shape: ShapeRing, Speed: 4, Damage: 1, Radius: 5, Count: 8, Duration: -1, Color: Yellow},
		AttackHeatWave:     {Shape: ShapeWave, Speed: 3, Damage: 2, Radius: 10, Duration: 90, Growth: 0.5, MaxRadius: 40, Color: Orange},
		AttackGravityPull:  {Shape: ShapeGravity, Damage: 1, Radius: 150, Duration: 120, PullForce: 0.005, Charged: true, Color: Purple},
		AttackVoidBlast:    {Shape: ShapeRing, Speed: 2, Damage: 2, Radius: 8, Count: 12, Duration: -1, Color: Purple},
	}

	Combat = CombatConfig{
		ContactSpeed:   5,
		HitShake:       2,
		DeathShake:     5,
		BossDeathShake: 10,
		PlayerHitShake: 3,
	}

	Wave = WaveConfig{
		BaseEnemies:            3,
		MaxEnemies:             8,
		WavesPerPhase:          4,
		BossWaveIndex:          3,
		BossCooldownScale:      0.75,
		ChestSpawnChance:       0.5,
		ChestMinPlayerDistance: 150,
		ChestPlacementAttempts: 32,
		TransitionTicks:        90,
	}

	Difficulty = DifficultyConfig{
		Start:           1.0,
		BaseIncrease:    0.1,
		SpeedMultiplier: 0.1,
	}

	Phases = []PhaseConfig{
		{Name: "earth", Kind: KindEarth, Template: "earth"},
		{Name: "solar", Kind: KindSolar, Template: "solar"},
		{Name: "blackhole", Kind: KindBlackhole, Template: "blackhole"},
	}

	Chest = ChestConfig{
		Size:            40,
		DisplayTicks:    60,
		StatModifierMin: 1.1,
		StatModifierMax: 1.5,
		Color:           Gold,
		Upgrades: []UpgradeConfig{
			{Name: "Health Increase", Kind: UpgradeStat, Stat: StatHealth, Description: "Max health up"},
			{Name: "Speed Boost", Kind: UpgradeStat, Stat: StatSpeed, Description: "Launch speed up"},
			{Name: "Damage Up", Kind: UpgradeStat, Stat: StatDamage, Description: "Contact damage up"},
			{Name: "Shield", Kind: UpgradeAbility, Ability: AbilityInvulnerability, DurationTicks: 300, Description: "Temporary invulnerability"},
			{Name: "Reflect", Kind: UpgradeAbility, Ability: AbilityReflection, DurationTicks: 480, Description: "Reflect enemy projectiles"},
			{Name: "Stun", Kind: UpgradeAbility, Ability: AbilityStun, DurationTicks: 180, Description: "Stun all enemies"},
		},
	}

	Room = RoomConfig{
		Templates: map[string]RoomTemplate{
			"test": {
				Name: "test", Width: 800, Height: 600, WallThickness: 20, Padding: 40,
				EnemyCount: 3, EnemyKind: KindBasic, ChestCount: 1,
				Background: color.RGBA{R: 34, G: 34, B: 34, A: 255},
			},
			"earth": {
				Name: "earth", Width: 800, Height: 600, WallThickness: 20, Padding: 40,
				EnemyCount: 3, EnemyKind: KindEarth, ChestCount: 1,
				Background: color.RGBA{R: 32, G: 48, B: 24, A: 255},
			},
			"solar": {
				Name: "solar", Width: 1000, Height: 800, WallThickness: 20, Padding: 50,
				EnemyCount: 5, EnemyKind: KindSolar, ChestCount: 1,
				Background: color.RGBA{R: 60, G: 36, B: 12, A: 255},
			},
			"blackhole": {
				Name: "blackhole", Width: 1200, Height: 1000, WallThickness: 20, Padding: 60,
				EnemyCount: 7, EnemyKind: KindBlackhole, ChestCount: 2,
				Background: color.RGBA{R: 16, G: 8, B: 32, A: 255},
			},
		},
		DefaultTemplate: "test",
		GridStep:        50,
		SafeDistance:    150,
	}

	Score = ScoreConfig{
		EnemyKill: 10,
		BossKill:  50,
		Chest:     100,
	}

	Effects = EffectsConfig{
		ShakeTicks: 20,
	}

	Game = GameConfig{
		Mode:    ModeWaves,
		Levels:  []string{"earth", "solar", "blackhole"},
		AppName: "cosmoball",
	}
}
