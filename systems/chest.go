package systems

import (
	"fmt"
	"math"

	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/messages"
	"github.com/automoto/cosmoball/systems/factory"
	"github.com/automoto/cosmoball/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateChests opens every closed chest the player overlaps.
func UpdateChests(ecs *ecs.ECS) {
	player, ok := components.GetPlayer(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(player)
	if obj.Space == nil {
		return
	}
	check := obj.Check(0, 0, tags.ResolvChest)
	if check == nil {
		return
	}
	bounds := obj.Bounds()
	for _, o := range check.ObjectsByTags(tags.ResolvChest) {
		chest, ok := o.Data.(*donburi.Entry)
		if !ok || !components.Active(chest) {
			continue
		}
		if !bounds.Overlaps(components.Object.Get(chest).Bounds()) {
			continue
		}
		OpenChest(ecs, chest)
	}
}

// OpenChest rolls an upgrade, applies it to the player, awards score and
// holds gameplay while the upgrade is shown. A second open is a no-op.
func OpenChest(ecs *ecs.ECS, chest *donburi.Entry) bool {
	c := components.Chest.Get(chest)
	if c.Opened {
		return false
	}
	c.Opened = true

	if len(cfg.Chest.Upgrades) > 0 {
		r := gameRand(ecs)
		up := cfg.Chest.Upgrades[r.Intn(len(cfg.Chest.Upgrades))]
		c.Upgrade = &up
		if up.Kind == cfg.UpgradeStat {
			c.Value = cfg.Chest.StatModifierMin + r.Float64()*(cfg.Chest.StatModifierMax-cfg.Chest.StatModifierMin)
		}
	}

	AddScore(ecs, cfg.Score.Chest)
	TriggerScreenShake(ecs, cfg.Combat.PlayerHitShake)

	description := "Empty chest"
	if c.Upgrade != nil {
		description = ApplyUpgrade(ecs, *c.Upgrade, c.Value)
	}
	components.Emit(ecs.World, messages.UpgradeChosen(description))

	c.Reveal = gween.New(0, 1, float32(cfg.Chest.DisplayTicks), ease.Linear)
	if pause := components.GetPause(ecs.World); pause != nil {
		pause.UpgradeTicks = cfg.Chest.DisplayTicks
		pause.UpgradeText = description
	}
	return true
}

// ApplyUpgrade changes the player's stats or starts an ability and returns
// the text shown to the player.
func ApplyUpgrade(ecs *ecs.ECS, up cfg.UpgradeConfig, value float64) string {
	player, ok := components.GetPlayer(ecs.World)
	if !ok {
		return up.Name
	}
	p := components.Player.Get(player)

	switch up.Kind {
	case cfg.UpgradeStat:
		switch up.Stat {
		case cfg.StatHealth:
			p.Stats.MaxHealth *= value
			health := components.Health.Get(player)
			newMax := int(math.Round(float64(cfg.Player.InitialHealth) * p.Stats.MaxHealth))
			if newMax > cfg.Player.HealthCap {
				newMax = cfg.Player.HealthCap
			}
			if gained := newMax - health.Max; gained > 0 {
				health.Max = newMax
				health.Add(gained)
			}
		case cfg.StatSpeed:
			p.Stats.Speed *= value
		case cfg.StatDamage:
			p.Stats.Damage *= value
		}
		return fmt.Sprintf("%s x%.2f", up.Name, value)
	case cfg.UpgradeAbility:
		switch up.Ability {
		case cfg.AbilityInvulnerability:
			p.GodModeTicks = up.DurationTicks
		case cfg.AbilityReflection:
			p.ReflectTicks = up.DurationTicks
		case cfg.AbilityStun:
			components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
				if components.Active(e) {
					components.Enemy.Get(e).StunTicks = up.DurationTicks
				}
			})
		}
		return fmt.Sprintf("%s (%ds)", up.Name, up.DurationTicks/60)
	}
	return up.Name
}

// UpdateUpgradeDisplay counts down the upgrade hold and removes opened chests
// once their reveal finishes. It runs while gameplay is held, but not while
// the user has paused.
func UpdateUpgradeDisplay(ecs *ecs.ECS) {
	var done []*donburi.Entry
	components.Chest.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Chest.Get(e)
		if !c.Opened || c.Reveal == nil {
			return
		}
		progress, finished := c.Reveal.Update(1)
		c.Progress = float64(progress)
		if finished {
			done = append(done, e)
		}
	})
	for _, e := range done {
		factory.RemoveEntity(e)
	}

	pause := components.GetPause(ecs.World)
	if pause != nil && pause.UpgradeTicks > 0 {
		pause.UpgradeTicks--
		if pause.UpgradeTicks == 0 {
			pause.UpgradeText = ""
		}
	}
}
