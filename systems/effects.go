package systems

import (
	"github.com/automoto/cosmoball/components"
	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/messages"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects decays the screen shake one tick.
func UpdateEffects(ecs *ecs.ECS) {
	e, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(e)
	if shake.Tween == nil {
		return
	}
	current, finished := shake.Tween.Update(1)
	shake.Intensity = float64(current)
	if finished {
		shake.Tween = nil
		shake.Intensity = 0
	}
}

// TriggerScreenShake emits a shake event and restarts the decay unless a
// stronger shake is still running.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64) {
	if intensity <= 0 {
		return
	}
	components.Emit(ecs.World, messages.ScreenShake(intensity))

	e, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(e)
	if shake.Tween != nil && shake.Intensity > intensity {
		return
	}
	shake.Intensity = intensity
	shake.Tween = gween.New(float32(intensity), 0, float32(cfg.Effects.ShakeTicks), ease.OutQuad)
}
