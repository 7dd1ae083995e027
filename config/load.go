package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// overlay mirrors the tunable sections a config file may override.
type overlay struct {
	Physics    PhysicsConfig    `mapstructure:"physics"`
	Player     PlayerConfig     `mapstructure:"player"`
	Combat     CombatConfig     `mapstructure:"combat"`
	Wave       WaveConfig       `mapstructure:"wave"`
	Difficulty DifficultyConfig `mapstructure:"difficulty"`
	Chest      ChestConfig      `mapstructure:"chest"`
	Score      ScoreConfig      `mapstructure:"score"`
	Effects    EffectsConfig    `mapstructure:"effects"`
	Game       GameConfig       `mapstructure:"game"`
}

// LoadFile overlays values from a YAML, JSON or TOML file onto the defaults.
// Keys missing from the file keep their current values.
func LoadFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	o := overlay{
		Physics:    Physics,
		Player:     Player,
		Combat:     Combat,
		Wave:       Wave,
		Difficulty: Difficulty,
		Chest:      Chest,
		Score:      Score,
		Effects:    Effects,
		Game:       Game,
	}
	if err := v.Unmarshal(&o); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	if o.Game.Mode != ModeWaves && o.Game.Mode != ModeLevels {
		return fmt.Errorf("config %s: unknown game mode %q", path, o.Game.Mode)
	}
	if o.Physics.Restitution < 0 || o.Physics.Restitution >= 1 {
		return fmt.Errorf("config %s: restitution must be in [0,1), got %v", path, o.Physics.Restitution)
	}

	Physics = o.Physics
	Player = o.Player
	Combat = o.Combat
	Wave = o.Wave
	Difficulty = o.Difficulty
	Chest = o.Chest
	Score = o.Score
	Effects = o.Effects
	Game = o.Game
	return nil
}
