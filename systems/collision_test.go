package systems

import (
	"testing"

	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/gamemath"
	"github.com/automoto/cosmoball/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBodyCollisionExchangesImpulse(t *testing.T) {
	w := newTestWorld(t)
	player := testPlayer(t, w)
	// player spans x 375..425, the enemy 420..460
	enemy := factory.CreateEnemy(w, 440, 300, cfg.KindBasic, 1)
	components.Physics.Get(player).VX = 6

	require.True(t, ResolveBodyCollision(w, player, enemy))

	pPhys, ePhys := components.Physics.Get(player), components.Physics.Get(enemy)
	assert.InDelta(t, 2.4, pPhys.VX, 1e-9)
	assert.InDelta(t, 7.2, ePhys.VX, 1e-9)
	// momentum is conserved
	assert.InDelta(t, 2*6.0, 2*pPhys.VX+1*ePhys.VX, 1e-9)

	// the lighter enemy takes two thirds of the separation
	assert.InDelta(t, 375-5.0/3, components.Object.Get(player).X, 1e-9)
	assert.InDelta(t, 420+10.0/3, components.Object.Get(enemy).X, 1e-9)
	assert.False(t, components.Object.Get(player).Bounds().Overlaps(components.Object.Get(enemy).Bounds()))

	assert.Equal(t, 1, components.Health.Get(enemy).Current, "fast impact damages the enemy")
}

func TestSlowContactDealsNoDamage(t *testing.T) {
	w := newTestWorld(t)
	player := testPlayer(t, w)
	enemy := factory.CreateEnemy(w, 440, 300, cfg.KindBasic, 1)
	components.Physics.Get(player).VX = 3

	require.True(t, ResolveBodyCollision(w, player, enemy))
	assert.Equal(t, 2, components.Health.Get(enemy).Current)
}

func TestResolveBodyCollisionIgnoresSeparateBodies(t *testing.T) {
	w := newTestWorld(t)
	player := testPlayer(t, w)
	enemy := factory.CreateEnemy(w, 600, 300, cfg.KindBasic, 1)
	assert.False(t, ResolveBodyCollision(w, player, enemy))
}

func TestResolveWallCollision(t *testing.T) {
	w := newTestWorld(t)
	player := testPlayer(t, w)
	obj := components.Object.Get(player)
	obj.X = 10
	components.Physics.Get(player).VX = -5

	require.True(t, ResolveWallCollision(player, gamemath.Rect{X: 0, Y: 0, W: 20, H: 600}))
	assert.Equal(t, 20.0, obj.X)
	assert.InDelta(t, 4, components.Physics.Get(player).VX, 1e-9)
}

func TestUpdateCollisionsSeparatesOverlappingEnemies(t *testing.T) {
	w := newTestWorld(t)
	a := factory.CreateEnemy(w, 600, 300, cfg.KindBasic, 1)
	b := factory.CreateEnemy(w, 620, 300, cfg.KindBasic, 1)

	UpdateCollisions(w)

	boundsA := components.Object.Get(a).Bounds()
	boundsB := components.Object.Get(b).Bounds()
	assert.False(t, boundsA.Overlaps(boundsB))
	// equal masses split the separation evenly
	assert.InDelta(t, 570, boundsA.X, 1e-9)
	assert.InDelta(t, 610, boundsB.X, 1e-9)
}
