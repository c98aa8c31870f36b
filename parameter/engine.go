package parameter

import "time"

// Simulation Timing
const (
	// DefaultTickRate is the frame loop frequency
	DefaultTickRate = 60

	// MaxStepDelta clamps a single simulation step after a stall
	MaxStepDelta = 100 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the number of undelivered events kept before the oldest are dropped
	EventQueueSize = 2048
)
