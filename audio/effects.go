package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, sweeping linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from startFreq to endFreq over duration
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// lowpass is a one-pole filter, alpha in (0, 1], smaller is darker
type lowpass struct {
	streamer beep.Streamer
	alpha    float64
	last     [2]float64
}

func (l *lowpass) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = l.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for c := range 2 {
			l.last[c] += l.alpha * (samples[i][c] - l.last[c])
			samples[i][c] = l.last[c]
		}
	}
	return n, ok
}

func (l *lowpass) Err() error { return l.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateLaserSound generates a falling zap for a cannon shot
func CreateLaserSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.LaserSoundDuration

	osc := NewSweep(parameter.LaserStartFreq, parameter.LaserEndFreq, d, WaveSquare, rate)
	shaped := NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
	return newVolume(shaped, 0.4)
}

// CreateBounceSound generates a short thud for a halo hitting a wall
func CreateBounceSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.BounceSoundDuration

	osc := NewOscillator(parameter.BounceFreq, d, WaveSine, rate)
	return NewEnvelope(osc, d, 2*time.Millisecond, d*2/3, rate)
}

// CreateExplosionSound generates a noise burst
func CreateExplosionSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.ExplosionSoundDuration

	noise := NewOscillator(0, d, WaveNoise, rate)
	shaped := NewEnvelope(noise, d, 2*time.Millisecond, d*4/5, rate)
	return newVolume(shaped, 0.5)
}

// CreateDeepExplosionSound generates a long filtered rumble for the life bar
func CreateDeepExplosionSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.DeepExplosionSoundDuration

	noise := &lowpass{streamer: NewOscillator(0, d, WaveNoise, rate), alpha: parameter.DeepExplosionLowpass}
	rumble := NewOscillator(55, d, WaveSine, rate)
	mixed := beep.Mix(newVolume(noise, 4), newVolume(rumble, 0.4))
	return NewEnvelope(mixed, d, 10*time.Millisecond, d*3/4, rate)
}

// pickup plays two rising notes
func pickup(cfg *Config, f1, f2 float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.PickupNoteDuration

	n1 := NewEnvelope(NewOscillator(f1, d, WaveSquare, rate), d, 3*time.Millisecond, d/3, rate)
	n2 := NewEnvelope(NewOscillator(f2, d, WaveSquare, rate), d, 3*time.Millisecond, d/2, rate)
	return newVolume(beep.Seq(n1, n2), 0.3)
}

// CreateShieldUpSound generates the shield pickup chime
func CreateShieldUpSound(cfg *Config) beep.Streamer {
	return pickup(cfg, parameter.ShieldUpNote1, parameter.ShieldUpNote2)
}

// CreatePowerUpSound generates the multishot pickup chime
func CreatePowerUpSound(cfg *Config) beep.Streamer {
	return pickup(cfg, parameter.PowerUpNote1, parameter.PowerUpNote2)
}

// GetSoundEffect returns the effect streamer for the given type at its configured volume
func GetSoundEffect(st core.SoundType, cfg *Config) beep.Streamer {
	var s beep.Streamer
	switch st {
	case core.SoundLaser:
		s = CreateLaserSound(cfg)
	case core.SoundBounce:
		s = CreateBounceSound(cfg)
	case core.SoundExplosion:
		s = CreateExplosionSound(cfg)
	case core.SoundDeepExplosion:
		s = CreateDeepExplosionSound(cfg)
	case core.SoundShieldUp:
		s = CreateShieldUpSound(cfg)
	case core.SoundPowerUp:
		s = CreatePowerUpSound(cfg)
	default:
		return nil
	}
	return newVolume(s, cfg.EffectVolumes[st]*cfg.MasterVolume)
}
