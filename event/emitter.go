package event

import "sync/atomic"

// Emitter stamps events with the current step number before queueing them
type Emitter struct {
	queue *EventQueue
	frame atomic.Uint64
}

func NewEmitter(queue *EventQueue) *Emitter {
	return &Emitter{queue: queue}
}

// Emit pushes an event tagged with the current frame
func (e *Emitter) Emit(t EventType, payload any) {
	e.queue.Push(GameEvent{Type: t, Payload: payload, Frame: e.frame.Load()})
}

// NextFrame advances the frame counter and returns the new value
func (e *Emitter) NextFrame() uint64 {
	return e.frame.Add(1)
}

func (e *Emitter) Frame() uint64 {
	return e.frame.Load()
}

func (e *Emitter) Queue() *EventQueue {
	return e.queue
}
