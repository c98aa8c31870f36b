package engine

import (
	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/event"
)

// Record is the auxiliary state the registry keeps per live entity
// Position is the last known position when no physics collaborator tracks the entity
type Record struct {
	Category core.Category
	Tag      core.Tag
	Bounces  int
	Inert    bool // Excluded from collision resolution, pending destruction
	Pooled   bool // Owned by a pool, never destroyed
	Position core.Vec2
	Velocity core.Vec2
}

// Registry owns the set of live entities and issues their handles
type Registry struct {
	records *Store[Record]
	next    core.Entity
	emit    *event.Emitter
}

func NewRegistry(emit *event.Emitter) *Registry {
	return &Registry{
		records: NewStore[Record](),
		emit:    emit,
	}
}

// Create registers a new entity and announces it
func (r *Registry) Create(cat core.Category, pos, vel core.Vec2, tag core.Tag) core.Entity {
	return r.create(Record{Category: cat, Tag: tag, Position: pos, Velocity: vel})
}

// CreatePooled registers an entity that survives Destroy, used by resource pools
func (r *Registry) CreatePooled(cat core.Category, pos core.Vec2) core.Entity {
	return r.create(Record{Category: cat, Position: pos, Pooled: true})
}

func (r *Registry) create(rec Record) core.Entity {
	r.next++
	e := r.next
	r.records.Set(e, rec)
	r.emit.Emit(event.EventEntitySpawned, &event.EntitySpawnedPayload{
		Entity:   e,
		Category: rec.Category,
		Tag:      rec.Tag,
		Position: rec.Position,
		Velocity: rec.Velocity,
	})
	return e
}

// Destroy removes an entity and announces it exactly once
// Unknown, already destroyed and pooled handles are a no-op returning false
func (r *Registry) Destroy(e core.Entity) bool {
	rec, ok := r.records.Get(e)
	if !ok || rec.Pooled {
		return false
	}
	r.records.Remove(e)
	r.emit.Emit(event.EventEntityDestroyed, &event.EntityDestroyedPayload{Entity: e, Category: rec.Category})
	return true
}

// Alive reports whether the handle refers to a live entity
func (r *Registry) Alive(e core.Entity) bool {
	return r.records.Has(e)
}

// Get returns a copy of the entity record
func (r *Registry) Get(e core.Entity) (Record, bool) {
	return r.records.Get(e)
}

// Tag returns the special marking of a live entity
func (r *Registry) Tag(e core.Entity) (core.Tag, bool) {
	rec, ok := r.records.Get(e)
	if !ok {
		return core.TagNone, false
	}
	return rec.Tag, true
}

// ClearTag removes the special marking so it cannot trigger again
func (r *Registry) ClearTag(e core.Entity) {
	r.records.Update(e, func(rec *Record) { rec.Tag = core.TagNone })
}

// Category returns the collision category, CategoryNone for missing or inert entities
func (r *Registry) Category(e core.Entity) core.Category {
	rec, ok := r.records.Get(e)
	if !ok || rec.Inert {
		return core.CategoryNone
	}
	return rec.Category
}

// MarkInert removes the entity from collision resolution
func (r *Registry) MarkInert(e core.Entity) {
	r.records.Update(e, func(rec *Record) { rec.Inert = true })
}

// IncrementBounce bumps the bounce counter and returns the new value, 0 for missing entities
func (r *Registry) IncrementBounce(e core.Entity) int {
	n := 0
	r.records.Update(e, func(rec *Record) {
		rec.Bounces++
		n = rec.Bounces
	})
	return n
}

// SetPosition records the last known position
func (r *Registry) SetPosition(e core.Entity, p core.Vec2) {
	r.records.Update(e, func(rec *Record) { rec.Position = p })
}

// Position implements core.BodySource from the recorded positions
func (r *Registry) Position(e core.Entity) (core.Vec2, bool) {
	rec, ok := r.records.Get(e)
	return rec.Position, ok
}

// Entities returns live entities of a category in ascending handle order
func (r *Registry) Entities(cat core.Category) []core.Entity {
	all := r.records.All()
	out := all[:0]
	for _, e := range all {
		if rec, ok := r.records.Get(e); ok && rec.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of live entities of a category
func (r *Registry) Count(cat core.Category) int {
	return len(r.Entities(cat))
}

// CountTagged returns live entities carrying the given tag
func (r *Registry) CountTagged(tag core.Tag) int {
	n := 0
	for _, e := range r.records.All() {
		if rec, ok := r.records.Get(e); ok && rec.Tag == tag {
			n++
		}
	}
	return n
}

// Len returns the number of live entities
func (r *Registry) Len() int {
	return r.records.Count()
}
