package audio

import (
	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/parameter"
)

// Config holds sound output settings
type Config struct {
	Enabled       bool
	Music         bool
	SampleRate    int
	MasterVolume  float64
	MusicVolume   float64
	EffectVolumes [core.SoundTypeCount]float64
}

// DefaultConfig returns audio enabled at full effect volume
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		Music:        true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: 0.5,
		MusicVolume:  parameter.MusicVolume,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1.0
	}
	// Bounces are frequent, keep them under the explosions
	cfg.EffectVolumes[core.SoundBounce] = 0.5
	return cfg
}
