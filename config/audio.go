package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundHit
	SoundDeath
	SoundBossDeath
	SoundUpgrade
	SoundLevelComplete
	SoundWave
	SoundGameOver
	SoundVictory
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Tone is a synthesized blip: a decaying sine sweep from Frequency to
// EndFrequency.
type Tone struct {
	Frequency    float64
	EndFrequency float64
	DurationMs   int
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundHit:           {Frequency: 660, EndFrequency: 440, DurationMs: 60},
			SoundDeath:         {Frequency: 440, EndFrequency: 110, DurationMs: 180},
			SoundBossDeath:     {Frequency: 330, EndFrequency: 55, DurationMs: 400},
			SoundUpgrade:       {Frequency: 520, EndFrequency: 1040, DurationMs: 250},
			SoundLevelComplete: {Frequency: 440, EndFrequency: 880, DurationMs: 300},
			SoundWave:          {Frequency: 220, EndFrequency: 330, DurationMs: 150},
			SoundGameOver:      {Frequency: 300, EndFrequency: 80, DurationMs: 700},
			SoundVictory:       {Frequency: 523, EndFrequency: 1046, DurationMs: 600},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit:   0.6,
			SoundWave:  0.7,
			SoundDeath: 0.9,
		},
	}
}
