package systems

import (
	"testing"

	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/messages"
	"github.com/automoto/cosmoball/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDamageEnemyKillsOnce(t *testing.T) {
	w := newTestWorld(t)
	enemy := factory.CreateEnemy(w, 600, 300, cfg.KindBasic, 1)
	require.Equal(t, 2, components.Health.Get(enemy).Current)

	assert.True(t, DamageEnemy(w, enemy, 2))
	assert.False(t, components.Active(enemy))

	components.Enemy.Get(enemy).ContactImmunityTicks = 0
	assert.False(t, DamageEnemy(w, enemy, 2), "inactive enemies take no damage")

	events := drainEvents(w)
	assert.Equal(t, 1, countEvents(events, messages.EventDeathEffect))
	assert.Equal(t, cfg.Score.EnemyKill, components.GetGame(w.World).Score)
}

func TestDamageEnemyRespectsContactImmunity(t *testing.T) {
	w := newTestWorld(t)
	enemy := factory.CreateEnemy(w, 600, 300, cfg.KindBasic, 1)

	assert.True(t, DamageEnemy(w, enemy, 1))
	assert.False(t, DamageEnemy(w, enemy, 1))
	assert.Equal(t, 1, components.Health.Get(enemy).Current)
	assert.Equal(t, cfg.Enemy.ContactImmunityTicks, components.Enemy.Get(enemy).ContactImmunityTicks)

	events := drainEvents(w)
	assert.Equal(t, 1, countEvents(events, messages.EventHitEffect))
	assert.Zero(t, countEvents(events, messages.EventDeathEffect))
}

func TestBossKillScoresMore(t *testing.T) {
	w := newTestWorld(t)
	boss := factory.CreateBoss(w, 600, 300, cfg.KindEarth, 1)

	DamageEnemy(w, boss, 100)
	assert.Equal(t, cfg.Score.BossKill, components.GetGame(w.World).Score)
}

func TestHealthAddClamps(t *testing.T) {
	h := components.HealthData{Current: 5, Max: 10}
	h.Add(20)
	assert.Equal(t, 10, h.Current)
	h.Add(-30)
	assert.Equal(t, 0, h.Current)
}

func TestDamagePlayerInvulnerability(t *testing.T) {
	w := newTestWorld(t)
	player := testPlayer(t, w)

	assert.True(t, DamagePlayer(w, 3))
	assert.False(t, DamagePlayer(w, 3))
	assert.Equal(t, cfg.Player.InitialHealth-3, components.Health.Get(player).Current)

	p := components.Player.Get(player)
	p.InvulnTicks = 0
	p.GodModeTicks = 10
	assert.False(t, DamagePlayer(w, 3), "god mode blocks damage")
}

func TestDamagePlayerEndsGameOnce(t *testing.T) {
	w := newTestWorld(t)
	player := testPlayer(t, w)
	components.GetGame(w.World).Score = 70

	DamagePlayer(w, cfg.Player.InitialHealth+5)
	assert.Equal(t, 0, components.Health.Get(player).Current)

	game := components.GetGame(w.World)
	assert.True(t, game.GameOver)
	assert.False(t, game.Victory)

	EndGame(w, true)
	events := drainEvents(w)
	require.Equal(t, 1, countEvents(events, messages.EventGameOver))
	for _, ev := range events {
		if ev.Kind == messages.EventGameOver {
			assert.Equal(t, 70, ev.Amount)
		}
	}
	assert.False(t, game.Victory)
}

func TestPlayerContactDamage(t *testing.T) {
	w := newTestWorld(t)
	player := testPlayer(t, w)
	stats := &components.Player.Get(player).Stats

	tests := []struct {
		multiplier float64
		want       int
	}{
		{1, 1},
		{1.4, 1},
		{2.6, 3},
		{0.2, 1},
	}
	for _, tt := range tests {
		stats.Damage = tt.multiplier
		assert.Equal(t, tt.want, PlayerContactDamage(player), "multiplier %v", tt.multiplier)
	}
}

func TestScreenShakeDecays(t *testing.T) {
	w := newTestWorld(t)
	TriggerScreenShake(w, 5)
	TriggerScreenShake(w, 2)

	e, ok := components.ScreenShake.First(w.World)
	require.True(t, ok)
	shake := components.ScreenShake.Get(e)
	assert.Equal(t, 5.0, shake.Intensity, "a weaker shake does not replace a stronger one")

	UpdateEffects(w)
	assert.Less(t, shake.Intensity, 5.0)

	for i := 0; i < cfg.Effects.ShakeTicks; i++ {
		UpdateEffects(w)
	}
	assert.Zero(t, shake.Intensity)
	assert.Nil(t, shake.Tween)
	assert.Equal(t, 2, countEvents(drainEvents(w), messages.EventScreenShake))
}
