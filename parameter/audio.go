package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive plays of the same sound
	MinSoundGap = 40 * time.Millisecond
)

// Laser Sound
const (
	LaserSoundDuration = 120 * time.Millisecond
	LaserStartFreq     = 1400.0 // Hz
	LaserEndFreq       = 300.0  // Hz
)

// Bounce Sound
const (
	BounceSoundDuration = 60 * time.Millisecond
	BounceFreq          = 220.0
)

// Explosion Sounds
const (
	ExplosionSoundDuration     = 250 * time.Millisecond
	DeepExplosionSoundDuration = 900 * time.Millisecond
	DeepExplosionLowpass       = 0.04 // One-pole filter coefficient applied to noise
)

// Pickup Sounds
const (
	ShieldUpNote1       = 523.25 // C5
	ShieldUpNote2       = 783.99 // G5
	PowerUpNote1        = 659.25 // E5
	PowerUpNote2        = 1046.5 // C6
	PickupNoteDuration  = 90 * time.Millisecond
	PickupSoundDuration = 2 * PickupNoteDuration
)

// Music loop, an arpeggio repeated while enabled
const (
	MusicNoteDuration = 180 * time.Millisecond
	MusicVolume       = 0.12
)

// MusicNotes is the arpeggio played by the music loop, Hz
var MusicNotes = [...]float64{220.0, 261.63, 329.63, 392.0, 329.63, 261.63, 196.0, 246.94}
