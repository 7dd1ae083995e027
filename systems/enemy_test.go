package systems

import (
	"testing"

	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// armAll makes every pattern ready and certain to fire.
func armAll(e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	for i := range enemy.Patterns {
		enemy.Patterns[i].Remaining = 0
		enemy.Patterns[i].Probability = 1
	}
}

func TestPatternTableOrderedByTier(t *testing.T) {
	w := newTestWorld(t)
	enemy := components.Enemy.Get(factory.CreateEnemy(w, 600, 300, cfg.KindBasic, 1))

	require.Len(t, enemy.Patterns, 3)
	assert.Equal(t, cfg.TierArea, enemy.Patterns[0].Tier)
	assert.Equal(t, cfg.TierHeavy, enemy.Patterns[1].Tier)
	assert.Equal(t, cfg.TierBasic, enemy.Patterns[2].Tier)
	for _, p := range enemy.Patterns {
		assert.Equal(t, p.Cooldown, p.Remaining, "cooldowns start full")
	}
}

func TestAreaAttackTakesPriority(t *testing.T) {
	w := newTestWorld(t)
	player := testPlayer(t, w)
	e := factory.CreateEnemy(w, 600, 300, cfg.KindBasic, 1)
	armAll(e)

	TickEnemy(w, e, player, components.GetRoom(w.World).Inner)

	enemy := components.Enemy.Get(e)
	assert.Equal(t, cfg.StateCharging, enemy.State)
	assert.Equal(t, cfg.AttackChargedBlast, enemy.PendingAttack)
	assert.GreaterOrEqual(t, enemy.Patterns[0].Remaining, 360)
	assert.LessOrEqual(t, enemy.Patterns[0].Remaining, 360+cfg.Enemy.CooldownJitter)
	assert.Zero(t, enemy.Patterns[1].Remaining, "only one pattern fires per tick")
	assert.Zero(t, enemy.Patterns[2].Remaining)
}

func TestChargedAttackReleasesAfterCharge(t *testing.T) {
	w := newTestWorld(t)
	player := testPlayer(t, w)
	e := factory.CreateEnemy(w, 600, 300, cfg.KindBasic, 1)
	bounds := components.GetRoom(w.World).Inner

	require.True(t, ExecuteAttack(w, e, cfg.AttackChargedBlast, 400, 300))
	for i := 0; i < cfg.Enemy.ChargeTicks-1; i++ {
		TickEnemy(w, e, player, bounds)
	}
	assert.Empty(t, activeProjectiles(w))
	assert.True(t, components.Enemy.Get(e).Charging())

	TickEnemy(w, e, player, bounds)
	projectiles := activeProjectiles(w)
	require.Len(t, projectiles, 1)
	assert.Equal(t, components.KindAOE, projectiles[0].Kind)
	cx, cy := components.Object.Get(e).Center()
	assert.Equal(t, cx, projectiles[0].X)
	assert.Equal(t, cy, projectiles[0].Y)
	assert.Equal(t, cfg.StateAttacking, components.Enemy.Get(e).State)
}

func TestChargeIsCancelledByDeath(t *testing.T) {
	w := newTestWorld(t)
	player := testPlayer(t, w)
	e := factory.CreateEnemy(w, 600, 300, cfg.KindBasic, 1)
	bounds := components.GetRoom(w.World).Inner

	require.True(t, ExecuteAttack(w, e, cfg.AttackChargedBlast, 400, 300))
	DamageEnemy(w, e, 10)
	for i := 0; i < cfg.Enemy.ChargeTicks; i++ {
		TickEnemy(w, e, player, bounds)
	}
	assert.Empty(t, activeProjectiles(w))
}

func TestBasicShotHomesOnTarget(t *testing.T) {
	w := newTestWorld(t)
	e := factory.CreateEnemy(w, 600, 300, cfg.KindBasic, 1)

	require.True(t, ExecuteAttack(w, e, cfg.AttackBasicShot, 400, 300))
	projectiles := activeProjectiles(w)
	require.Len(t, projectiles, 1)
	assert.InDelta(t, -cfg.Attacks[cfg.AttackBasicShot].Speed, projectiles[0].VX, 1e-9)
	assert.InDelta(t, 0, projectiles[0].VY, 1e-9)
	assert.Equal(t, cfg.StateAttacking, components.Enemy.Get(e).State)
}

func TestShotAtZeroDistanceFails(t *testing.T) {
	w := newTestWorld(t)
	e := factory.CreateEnemy(w, 600, 300, cfg.KindBasic, 1)

	assert.False(t, ExecuteAttack(w, e, cfg.AttackBasicShot, 600, 300))
	assert.Empty(t, activeProjectiles(w))
}

func TestRingAttackSpawnsBurst(t *testing.T) {
	w := newTestWorld(t)
	e := factory.CreateEnemy(w, 600, 300, cfg.KindSolar, 1)

	require.True(t, ExecuteAttack(w, e, cfg.AttackSolarFlare, 400, 300))
	assert.Len(t, activeProjectiles(w), cfg.Attacks[cfg.AttackSolarFlare].Count)
}

func TestStunnedEnemyDoesNothing(t *testing.T) {
	w := newTestWorld(t)
	player := testPlayer(t, w)
	e := factory.CreateEnemy(w, 600, 300, cfg.KindBasic, 1)
	armAll(e)
	enemy := components.Enemy.Get(e)
	enemy.StunTicks = 2
	x := components.Object.Get(e).X

	TickEnemy(w, e, player, components.GetRoom(w.World).Inner)
	assert.Equal(t, 1, enemy.StunTicks)
	assert.Equal(t, x, components.Object.Get(e).X)
	assert.Equal(t, cfg.StateChasing, enemy.State)
	assert.Empty(t, activeProjectiles(w))
}

func TestChaserSteersTowardTarget(t *testing.T) {
	w := newTestWorld(t)
	e := factory.CreateEnemy(w, 600, 300, cfg.KindBasic, 1)
	enemy := components.Enemy.Get(e)
	phys := components.Physics.Get(e)

	steer(enemy, components.Object.Get(e), phys, 400, 300)
	assert.InDelta(t, -enemy.Speed, phys.VX, 1e-9)
}

func TestKiterBacksAway(t *testing.T) {
	w := newTestWorld(t)
	e := factory.CreateEnemy(w, 550, 300, cfg.KindSolar, 1)
	enemy := components.Enemy.Get(e)
	phys := components.Physics.Get(e)

	steer(enemy, components.Object.Get(e), phys, 400, 300)
	assert.InDelta(t, enemy.Speed, phys.VX, 1e-9, "closer than keep distance")

	// between keep distance and 1.5x it holds still
	phys.VX = 0
	steer(enemy, components.Object.Get(e), phys, 300, 300)
	assert.Zero(t, phys.VX)
}

func TestKnockedBackEnemyCoasts(t *testing.T) {
	w := newTestWorld(t)
	e := factory.CreateEnemy(w, 600, 300, cfg.KindBasic, 1)
	phys := components.Physics.Get(e)
	phys.VX = 9

	steer(components.Enemy.Get(e), components.Object.Get(e), phys, 400, 300)
	assert.Equal(t, 9.0, phys.VX)
}

func TestDifficultyScalesEnemies(t *testing.T) {
	w := newTestWorld(t)
	e := factory.CreateEnemy(w, 600, 300, cfg.KindBasic, 1.5)

	assert.Equal(t, 3, components.Health.Get(e).Max)
	assert.InDelta(t, 1.05, components.Enemy.Get(e).Speed, 1e-9)
}
