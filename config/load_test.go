package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshot restores every section LoadFile can touch.
func snapshot(t *testing.T) {
	t.Helper()
	physics, player, combat, wave := Physics, Player, Combat, Wave
	difficulty, chest, score, effects, game := Difficulty, Chest, Score, Effects, Game
	t.Cleanup(func() {
		Physics, Player, Combat, Wave = physics, player, combat, wave
		Difficulty, Chest, Score, Effects, Game = difficulty, chest, score, effects, game
	})
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	snapshot(t)
	path := writeFile(t, "cosmoball.yaml", `
physics:
  friction: 0.95
wave:
  boss_wave_index: 2
game:
  mode: levels
  levels: [solar, earth]
`)

	require.NoError(t, LoadFile(path))
	assert.Equal(t, 0.95, Physics.Friction)
	assert.Equal(t, 0.8, Physics.Restitution, "absent keys keep their defaults")
	assert.Equal(t, 2, Wave.BossWaveIndex)
	assert.Equal(t, 4, Wave.WavesPerPhase)
	assert.Equal(t, ModeLevels, Game.Mode)
	assert.Equal(t, []string{"solar", "earth"}, Game.Levels)
	assert.Equal(t, Blue, Player.Color)
}

func TestLoadFileJSON(t *testing.T) {
	snapshot(t)
	path := writeFile(t, "cosmoball.json", `{"score": {"chest": 250}, "player": {"initial_health": 30}}`)

	require.NoError(t, LoadFile(path))
	assert.Equal(t, 250, Score.Chest)
	assert.Equal(t, 10, Score.EnemyKill)
	assert.Equal(t, 30, Player.InitialHealth)
}

func TestLoadFileRejectsBadValues(t *testing.T) {
	snapshot(t)
	tests := []struct {
		name string
		body string
	}{
		{"unknown mode", "game:\n  mode: arcade\n"},
		{"restitution of one", "physics:\n  restitution: 1\n"},
		{"negative restitution", "physics:\n  restitution: -0.5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := LoadFile(writeFile(t, "bad.yaml", tt.body))
			assert.Error(t, err)
			assert.Equal(t, ModeWaves, Game.Mode, "a rejected file changes nothing")
			assert.Equal(t, 0.8, Physics.Restitution)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	assert.Error(t, LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestParseEnemyKind(t *testing.T) {
	kind, ok := ParseEnemyKind(" Solar ")
	assert.True(t, ok)
	assert.Equal(t, KindSolar, kind)

	kind, ok = ParseEnemyKind("plasma")
	assert.False(t, ok)
	assert.Equal(t, KindBasic, kind)
}
