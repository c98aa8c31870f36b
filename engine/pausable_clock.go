package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/space-cannon/parameter"
)

// PausableClock provides game time that stands still while paused
// Tick hands the frame loop the game time elapsed since the previous tick
type PausableClock struct {
	mu sync.Mutex

	source TimeSource

	start       time.Time     // Real time at creation
	paused      bool
	pauseStart  time.Time     // When current pause started (real time)
	totalPaused time.Duration // Cumulative pause duration

	lastTick time.Duration // Game elapsed at previous Tick
}

// NewPausableClock creates a running clock reading from source
func NewPausableClock(source TimeSource) *PausableClock {
	return &PausableClock{
		source: source,
		start:  source.Now(),
	}
}

// Elapsed returns game time since creation, frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.elapsedLocked()
}

func (pc *PausableClock) elapsedLocked() time.Duration {
	ref := pc.source.Now()
	if pc.paused {
		ref = pc.pauseStart
	}
	return ref.Sub(pc.start) - pc.totalPaused
}

// Tick returns the game time since the previous Tick, clamped to MaxStepDelta
func (pc *PausableClock) Tick() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.elapsedLocked()
	dt := now - pc.lastTick
	pc.lastTick = now
	if dt < 0 {
		return 0
	}
	return min(dt, parameter.MaxStepDelta)
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.source.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.totalPaused += pc.source.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time, including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	total := pc.totalPaused
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
