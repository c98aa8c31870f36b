package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/space-cannon/parameter"
)

// musicStreamer cycles the arpeggio forever with a soft pluck per note
type musicStreamer struct {
	rate      beep.SampleRate
	noteLen   int
	note      int
	position  int
	phase     float64
	amplitude float64
}

// NewMusic creates the endless background loop
func NewMusic(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return &musicStreamer{
		rate:      rate,
		noteLen:   rate.N(parameter.MusicNoteDuration),
		amplitude: cfg.MusicVolume * cfg.MasterVolume,
	}
}

func (m *musicStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		freq := parameter.MusicNotes[m.note]
		decay := math.Exp(-4 * float64(m.position) / float64(m.noteLen))

		val := m.amplitude * decay * (0.7*math.Sin(2*math.Pi*m.phase) + 0.3*math.Sin(4*math.Pi*m.phase))
		samples[i][0] = val
		samples[i][1] = val

		m.phase += freq / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.position++
		if m.position >= m.noteLen {
			m.position = 0
			m.note = (m.note + 1) % len(parameter.MusicNotes)
		}
	}
	return len(samples), true
}

func (m *musicStreamer) Err() error { return nil }
