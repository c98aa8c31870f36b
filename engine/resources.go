package engine

import (
	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/event"
	"github.com/lixenwraith/space-cannon/parameter"
	"github.com/lixenwraith/space-cannon/status"
)

// Resources bundles the shared simulation state handed to every system
// All fields are mutated only from the simulation thread
type Resources struct {
	Registry *Registry
	Shields  *ShieldPool
	Session  *Session
	Emit     *event.Emitter
	Bodies   core.BodySource
	Tuning   parameter.Tuning
	Status   *status.Registry
}

// NewResources wires a fresh registry, shield pool and session around one emitter
// A nil bodies source falls back to the registry's recorded positions
func NewResources(emit *event.Emitter, bodies core.BodySource, tuning parameter.Tuning, stats *status.Registry) *Resources {
	reg := NewRegistry(emit)
	if bodies == nil {
		bodies = reg
	}
	if stats == nil {
		stats = status.NewRegistry()
	}
	tuning = tuning.Sanitize()
	return &Resources{
		Registry: reg,
		Shields:  NewShieldPool(reg, emit, tuning),
		Session:  NewSession(emit),
		Emit:     emit,
		Bodies:   bodies,
		Tuning:   tuning,
		Status:   stats,
	}
}

// PositionOf resolves a position from the body source, then the registry record
func (r *Resources) PositionOf(e core.Entity) (core.Vec2, bool) {
	if p, ok := r.Bodies.Position(e); ok {
		return p, true
	}
	if p, ok := r.Shields.Position(e); ok {
		return p, true
	}
	return r.Registry.Position(e)
}

// Sound queues a sound effect request
func (r *Resources) Sound(s core.SoundType) {
	r.Emit.Emit(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: s})
}

// Visual queues a transient effect
func (r *Resources) Visual(kind core.VisualKind, pos core.Vec2) {
	r.Emit.Emit(event.EventVisualSpawn, &event.VisualPayload{Kind: kind, Position: pos})
}
