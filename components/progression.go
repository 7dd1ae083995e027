package components

import (
	"github.com/automoto/cosmoball/config"
	"github.com/yohamta/donburi"
)

// ProgressionData is the wave/phase state machine.
type ProgressionData struct {
	Mode       config.GameMode
	Phase      int // index into config.Phases
	Wave       int // wave within the phase
	TotalWaves int // waves started this run
	Difficulty float64
	Loop       int // completed phase cycles
	Level      int // levels mode index
}

// BossWave reports whether the current wave is a boss wave.
func (p *ProgressionData) BossWave() bool {
	return p.Mode == config.ModeWaves && p.Wave == config.Wave.BossWaveIndex
}

var Progression = donburi.NewComponentType[ProgressionData]()
