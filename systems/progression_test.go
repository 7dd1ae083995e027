package systems

import (
	"testing"

	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/messages"
	"github.com/automoto/cosmoball/systems/factory"
	"github.com/automoto/cosmoball/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newRunWorld(t *testing.T, mode cfg.GameMode) *ecs.ECS {
	t.Helper()
	w := ecs.NewECS(donburi.NewWorld())
	factory.CreateGame(w, 7, mode, 0)
	StartRun(w)
	return w
}

func killAll(w *ecs.ECS) {
	var enemies []*donburi.Entry
	components.Enemy.Each(w.World, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})
	for _, e := range enemies {
		components.Deactivate(e, components.CauseKilled)
	}
}

func countBosses(w *ecs.ECS) int {
	n := 0
	tags.Boss.Each(w.World, func(e *donburi.Entry) {
		if components.Active(e) {
			n++
		}
	})
	return n
}

func TestBossOnEveryFourthWave(t *testing.T) {
	w := newRunWorld(t, cfg.ModeWaves)
	prog := components.GetProgression(w.World)

	var phases []int
	for i := 0; i < 12; i++ {
		require.Equal(t, i%cfg.Wave.WavesPerPhase, prog.Wave)
		if prog.Wave == cfg.Wave.BossWaveIndex {
			assert.True(t, prog.BossWave())
			assert.Equal(t, 1, countBosses(w), "wave %d", i)
			assert.Equal(t, 1, ActiveEnemyCount(w))
		} else {
			assert.Zero(t, countBosses(w), "wave %d", i)
			assert.Equal(t, factory.RegularEnemyCount(prog.TotalWaves-1), ActiveEnemyCount(w))
		}
		phases = append(phases, prog.Phase)
		Advance(w)
	}

	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2}, phases)
	assert.Equal(t, 0, prog.Phase)
	assert.Equal(t, 1, prog.Loop)
	assert.InDelta(t, cfg.Difficulty.Start+12*cfg.Difficulty.BaseIncrease, prog.Difficulty, 1e-9)
}

func TestHealOnlyFromSecondCycle(t *testing.T) {
	w := newRunWorld(t, cfg.ModeWaves)
	health := components.Health.Get(testPlayer(t, w))

	for i := 1; i <= 12; i++ {
		health.Current = 5
		Advance(w)
		if i < 12 {
			assert.Equal(t, 5, health.Current, "advance %d", i)
		}
	}
	assert.Equal(t, 5+health.Max/2, health.Current)

	events := drainEvents(w)
	assert.Equal(t, 3, countEvents(events, messages.EventPhaseChanged))
}

func TestCheckClearRequiresAllEnemiesInactive(t *testing.T) {
	w := newRunWorld(t, cfg.ModeWaves)
	drainEvents(w)

	var first *donburi.Entry
	components.Enemy.Each(w.World, func(e *donburi.Entry) {
		if first == nil {
			first = e
		}
	})
	require.NotNil(t, first)

	components.Deactivate(first, components.CauseKilled)
	assert.False(t, CheckClear(w))

	killAll(w)
	assert.True(t, CheckClear(w))
	assert.False(t, CheckClear(w), "a room clears once")
	assert.Equal(t, 1, countEvents(drainEvents(w), messages.EventLevelComplete))
}

func TestTransitionDelayBeforeNextWave(t *testing.T) {
	w := newRunWorld(t, cfg.ModeWaves)
	prog := components.GetProgression(w.World)
	killAll(w)

	UpdateProgression(w)
	room := components.GetRoom(w.World)
	require.True(t, room.Cleared)

	for i := 0; i < cfg.Wave.TransitionTicks-1; i++ {
		UpdateProgression(w)
	}
	assert.Equal(t, 0, prog.Wave)

	UpdateProgression(w)
	assert.Equal(t, 1, prog.Wave)
	assert.False(t, components.GetRoom(w.World).Cleared)
	assert.Positive(t, ActiveEnemyCount(w))
}

func TestRegularWaveSize(t *testing.T) {
	assert.Equal(t, 3, factory.RegularEnemyCount(0))
	assert.Equal(t, 3, factory.RegularEnemyCount(1))
	assert.Equal(t, 5, factory.RegularEnemyCount(4))
	assert.Equal(t, cfg.Wave.MaxEnemies, factory.RegularEnemyCount(40))
}

func TestLevelsModeEndsInVictory(t *testing.T) {
	w := newRunWorld(t, cfg.ModeLevels)

	var names []string
	for !components.GetGame(w.World).GameOver {
		room := components.GetRoom(w.World)
		names = append(names, room.Template.Name)
		assert.Equal(t, room.Template.EnemyCount, ActiveEnemyCount(w))
		Advance(w)
	}

	assert.Equal(t, cfg.Game.Levels, names)
	assert.True(t, components.GetGame(w.World).Victory)
}

func TestRecordScoreOnlyOnNewBest(t *testing.T) {
	w := newTestWorld(t)
	store := &MemoryStore{}
	game := components.GetGame(w.World)
	game.Score = 120

	assert.False(t, RecordScore(w, store), "nothing is recorded before game over")

	EndGame(w, false)
	assert.True(t, RecordScore(w, store))
	assert.False(t, RecordScore(w, store))
	assert.Equal(t, 120, store.Best)
	assert.Equal(t, 1, store.Saves)
	assert.Equal(t, 120, game.BestScore)
}

func TestRecordScoreKeepsHigherBest(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	factory.CreateGame(w, 1, cfg.ModeWaves, 500)
	store := &MemoryStore{Best: 500}
	components.GetGame(w.World).Score = 300

	EndGame(w, false)
	assert.False(t, RecordScore(w, store))
	assert.Zero(t, store.Saves)
	assert.Equal(t, 500, store.Best)
}
