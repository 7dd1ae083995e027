package messages

import (
	"fmt"
	"image/color"
)

// EventKind identifies a feedback event emitted by the simulation.
type EventKind int

const (
	EventHitEffect EventKind = iota
	EventDeathEffect
	EventScreenShake
	EventScoreDelta
	EventLevelComplete
	EventGameOver
	EventUpgradeChosen
	EventWaveStarted
	EventPhaseChanged
)

func (k EventKind) String() string {
	switch k {
	case EventHitEffect:
		return "hit-effect"
	case EventDeathEffect:
		return "death-effect"
	case EventScreenShake:
		return "screen-shake"
	case EventScoreDelta:
		return "score-delta"
	case EventLevelComplete:
		return "level-complete"
	case EventGameOver:
		return "game-over"
	case EventUpgradeChosen:
		return "upgrade-chosen"
	case EventWaveStarted:
		return "wave-started"
	case EventPhaseChanged:
		return "phase-changed"
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is broadcast to the drawing/audio collaborator. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind      EventKind
	X, Y      float64    // hit, death
	Color     color.RGBA // hit
	Intensity float64    // screen shake
	Amount    int        // score delta, final score
	Text      string     // upgrade description, phase name
	Wave      int        // wave started
	Boss      bool       // wave started
	Victory   bool       // game over
}

func HitEffect(x, y float64, c color.RGBA) Event {
	return Event{Kind: EventHitEffect, X: x, Y: y, Color: c}
}

func DeathEffect(x, y float64) Event {
	return Event{Kind: EventDeathEffect, X: x, Y: y}
}

func ScreenShake(intensity float64) Event {
	return Event{Kind: EventScreenShake, Intensity: intensity}
}

func ScoreDelta(amount int) Event {
	return Event{Kind: EventScoreDelta, Amount: amount}
}

func LevelComplete() Event {
	return Event{Kind: EventLevelComplete}
}

func GameOver(finalScore int, victory bool) Event {
	return Event{Kind: EventGameOver, Amount: finalScore, Victory: victory}
}

func UpgradeChosen(description string) Event {
	return Event{Kind: EventUpgradeChosen, Text: description}
}

func WaveStarted(phase string, wave int, boss bool) Event {
	return Event{Kind: EventWaveStarted, Text: phase, Wave: wave, Boss: boss}
}

func PhaseChanged(phase string) Event {
	return Event{Kind: EventPhaseChanged, Text: phase}
}
