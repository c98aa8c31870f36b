package event

import (
	"sync"

	"github.com/lixenwraith/space-cannon/parameter"
)

// EventQueue buffers simulation events between a step and the frame loop that delivers them
// Events come out in push order; a full queue drops the oldest undelivered event
type EventQueue struct {
	mu    sync.Mutex
	ring  [parameter.EventQueueSize]GameEvent
	start int
	count int

	dropped   uint64
	delivered uint64 // Frame stamp of the newest event handed out
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == len(eq.ring) {
		eq.ring[eq.start] = GameEvent{}
		eq.start = (eq.start + 1) % len(eq.ring)
		eq.count--
		eq.dropped++
	}
	eq.ring[(eq.start+eq.count)%len(eq.ring)] = ev
	eq.count++
}

// Consume hands out every pending event, nil when there are none
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == 0 {
		return nil
	}
	out := make([]GameEvent, eq.count)
	for i := range out {
		idx := (eq.start + i) % len(eq.ring)
		out[i] = eq.ring[idx]
		eq.ring[idx] = GameEvent{} // release payloads
	}
	eq.start, eq.count = 0, 0
	eq.delivered = max(eq.delivered, out[len(out)-1].Frame)
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.count
}

// DeliveredFrame is the newest frame stamp Consume has returned, 0 before the first delivery
func (eq *EventQueue) DeliveredFrame() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.delivered
}

// Dropped returns how many undelivered events were discarded on overflow
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}
