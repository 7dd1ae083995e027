package systems

import (
	"math"

	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DamageEnemy applies damage to an enemy. It is a no-op while the enemy is
// inactive or its contact immunity is running. Reaching zero health
// deactivates the enemy, awards score and emits the death feedback; this
// happens once. Returns true when the hit landed.
func DamageEnemy(ecs *ecs.ECS, enemy *donburi.Entry, amount int) bool {
	if !components.Active(enemy) || amount <= 0 {
		return false
	}
	data := components.Enemy.Get(enemy)
	if data.ContactImmunityTicks > 0 {
		return false
	}

	health := components.Health.Get(enemy)
	health.Add(-amount)
	data.ContactImmunityTicks = cfg.Enemy.ContactImmunityTicks

	cx, cy := components.Object.Get(enemy).Center()
	components.Emit(ecs.World, messages.HitEffect(cx, cy, data.TypeConfig.Color))

	if health.Current > 0 {
		TriggerScreenShake(ecs, cfg.Combat.HitShake)
		return true
	}

	if !components.Deactivate(enemy, components.CauseKilled) {
		return true
	}
	shake := cfg.Combat.DeathShake
	if data.Boss {
		shake = cfg.Combat.BossDeathShake
	}
	components.Emit(ecs.World, messages.DeathEffect(cx, cy))
	TriggerScreenShake(ecs, shake)
	AddScore(ecs, data.ScoreValue)
	return true
}

// DamagePlayer applies damage to the player unless it is invulnerable.
// Health reaching zero ends the run.
func DamagePlayer(ecs *ecs.ECS, amount int) bool {
	player, ok := components.GetPlayer(ecs.World)
	if !ok || amount <= 0 {
		return false
	}
	p := components.Player.Get(player)
	if p.Invulnerable() {
		return false
	}

	health := components.Health.Get(player)
	health.Add(-amount)
	p.InvulnTicks = cfg.Player.InvulnTicks

	cx, cy := components.Object.Get(player).Center()
	components.Emit(ecs.World, messages.HitEffect(cx, cy, cfg.Player.Color))
	TriggerScreenShake(ecs, cfg.Combat.PlayerHitShake)

	if health.Current <= 0 {
		EndGame(ecs, false)
	}
	return true
}

// PlayerContactDamage is the damage the player deals on impact.
func PlayerContactDamage(player *donburi.Entry) int {
	p := components.Player.Get(player)
	return int(math.Max(1, math.Round(float64(cfg.Player.BaseDamage)*p.Stats.Damage)))
}

// AddScore adds to the run score and emits the delta.
func AddScore(ecs *ecs.ECS, amount int) {
	game := components.GetGame(ecs.World)
	if game == nil || amount == 0 {
		return
	}
	game.Score += amount
	components.Emit(ecs.World, messages.ScoreDelta(amount))
}

// EndGame finishes the run once.
func EndGame(ecs *ecs.ECS, victory bool) {
	game := components.GetGame(ecs.World)
	if game == nil || game.GameOver {
		return
	}
	game.GameOver = true
	game.Victory = victory
	components.Emit(ecs.World, messages.GameOver(game.Score, victory))
}
