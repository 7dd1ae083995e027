package render

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/cosmoball/config"
	"github.com/automoto/cosmoball/messages"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Sound plays a synthesized blip for feedback events.
type Sound struct {
	context *audio.Context
	cache   map[cfg.SoundID][]byte // PCM per sound, built on first use
}

// NewSound creates the audio context. Only one may exist per process.
func NewSound() *Sound {
	return &Sound{
		context: audio.NewContext(cfg.Audio.SampleRate),
		cache:   make(map[cfg.SoundID][]byte),
	}
}

// Play starts the sounds for a frame's events unless muted.
func (s *Sound) Play(events []messages.Event, muted bool) {
	if muted || cfg.Audio.DefaultSFXVol <= 0 {
		return
	}
	played := make(map[cfg.SoundID]bool)
	for _, ev := range events {
		id := SoundFor(ev)
		// one instance per sound per frame
		if id == cfg.SoundNone || played[id] {
			continue
		}
		played[id] = true
		s.play(id)
	}
}

func (s *Sound) play(id cfg.SoundID) {
	pcm, ok := s.cache[id]
	if !ok {
		tone, ok := cfg.Sound.Tones[id]
		if !ok {
			return
		}
		pcm = Synthesize(tone, cfg.Audio.SampleRate)
		s.cache[id] = pcm
	}

	volume := cfg.Audio.DefaultSFXVol
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player := s.context.NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
}

// SoundFor maps a feedback event to its sound.
func SoundFor(ev messages.Event) cfg.SoundID {
	switch ev.Kind {
	case messages.EventHitEffect:
		return cfg.SoundHit
	case messages.EventDeathEffect:
		return cfg.SoundDeath
	case messages.EventScreenShake:
		if ev.Intensity >= 10 {
			return cfg.SoundBossDeath
		}
	case messages.EventUpgradeChosen:
		return cfg.SoundUpgrade
	case messages.EventLevelComplete:
		return cfg.SoundLevelComplete
	case messages.EventWaveStarted:
		return cfg.SoundWave
	case messages.EventGameOver:
		if ev.Victory {
			return cfg.SoundVictory
		}
		return cfg.SoundGameOver
	}
	return cfg.SoundNone
}

// Synthesize renders a tone as 16-bit little-endian stereo PCM with a linear
// frequency sweep and a linear fade out.
func Synthesize(t cfg.Tone, sampleRate int) []byte {
	n := sampleRate * t.DurationMs / 1000
	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.Frequency + (t.EndFrequency-t.Frequency)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)
		sample := int16(math.Sin(phase) * (1 - progress) * math.MaxInt16 * 0.8)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(sample))
	}
	return out
}
