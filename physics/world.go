package physics

import (
	"maps"
	"slices"
	"sync"

	"github.com/solarlune/resolv"

	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/event"
	"github.com/lixenwraith/space-cannon/parameter"
)

// cellSize is the resolv broad-phase grid cell in world units
const cellSize = 32

var (
	tagTarget     = resolv.NewTag("target")
	tagProjectile = resolv.NewTag("projectile")
	tagShield     = resolv.NewTag("shield")
	tagLifeBar    = resolv.NewTag("lifebar")
	tagPowerUp    = resolv.NewTag("powerup")
)

// body is one simulated entity
type body struct {
	entity   core.Entity
	category core.Category
	kin      Kinetic
	halfW    float64
	halfH    float64
	shape    resolv.IShape
	anchor   core.Vec2 // Shape position minus body centre
	moving   bool
}

type pair struct{ a, b core.Entity }

func makePair(a, b core.Entity) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

// World integrates every body, reflects movers off the side walls and reports begin contacts
// Bodies are created and removed from simulation events; the world never decides gameplay
type World struct {
	mu sync.Mutex

	width  float64
	height float64
	offset float64 // World origin inside the resolv space, keeps off-screen spawns on the grid

	shieldHalfW float64

	space  *resolv.Space
	bodies map[core.Entity]*body
	shapes map[resolv.IShape]*body

	leftEdge  core.Entity
	rightEdge core.Entity

	touching map[pair]bool
}

// NewWorld creates an empty world for a playfield of the given size
func NewWorld(width, height float64) *World {
	offset := 2 * parameter.CullMargin
	return &World{
		width:       width,
		height:      height,
		offset:      offset,
		shieldHalfW: parameter.Tuning{Width: width, Height: height}.ShieldWidth() / 2,
		space:       resolv.NewSpace(int(width+2*offset), int(height+3*offset), cellSize, cellSize),
		bodies:      make(map[core.Entity]*body),
		shapes:      make(map[resolv.IShape]*body),
		touching:    make(map[pair]bool),
	}
}

// HandleEvent implements event.Handler
func (w *World) HandleEvent(ev event.GameEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch ev.Type {
	case event.EventEntitySpawned:
		p, ok := ev.Payload.(*event.EntitySpawnedPayload)
		if !ok {
			return
		}
		switch p.Category {
		case core.CategoryEdge:
			if p.Position.X < w.width/2 {
				w.leftEdge = p.Entity
			} else {
				w.rightEdge = p.Entity
			}
		case core.CategoryShieldBlock:
			// Pooled, enters the field on activation
		default:
			w.add(p.Entity, p.Category, p.Position, p.Velocity)
		}
	case event.EventEntityDestroyed:
		if p, ok := ev.Payload.(*event.EntityDestroyedPayload); ok {
			w.remove(p.Entity)
		}
	case event.EventShieldActivated:
		if p, ok := ev.Payload.(*event.ShieldPayload); ok {
			w.remove(p.Entity)
			w.add(p.Entity, core.CategoryShieldBlock, p.Position, core.Vec2{})
		}
	case event.EventShieldDeactivated:
		if p, ok := ev.Payload.(*event.ShieldPayload); ok {
			w.remove(p.Entity)
		}
	}
}

// EventTypes implements event.Handler
func (w *World) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEntitySpawned,
		event.EventEntityDestroyed,
		event.EventShieldActivated,
		event.EventShieldDeactivated,
	}
}

func (w *World) add(e core.Entity, cat core.Category, pos, vel core.Vec2) {
	halfW, halfH, tag := w.extent(cat)
	b := &body{
		entity:   e,
		category: cat,
		kin:      Kinetic{Pos: pos, Vel: vel},
		halfW:    halfW,
		halfH:    halfH,
		moving:   cat != core.CategoryShieldBlock && cat != core.CategoryLifeBar,
	}

	shape := resolv.NewRectangleTopLeft(pos.X-halfW+w.offset, pos.Y-halfH+w.offset, 2*halfW, 2*halfH)
	shape.Tags().Set(tag)
	w.space.Add(shape)
	at := shape.Position()
	b.anchor = core.Vec2{X: at.X - w.offset - pos.X, Y: at.Y - w.offset - pos.Y}
	b.shape = shape

	w.bodies[e] = b
	w.shapes[shape] = b
}

func (w *World) remove(e core.Entity) {
	b, ok := w.bodies[e]
	if !ok {
		return
	}
	w.space.Remove(b.shape)
	delete(w.shapes, b.shape)
	delete(w.bodies, e)
	for p := range w.touching {
		if p.a == e || p.b == e {
			delete(w.touching, p)
		}
	}
}

func (w *World) extent(cat core.Category) (halfW, halfH float64, tag resolv.Tags) {
	switch cat {
	case core.CategoryTarget:
		return parameter.TargetRadius, parameter.TargetRadius, tagTarget
	case core.CategoryProjectile:
		return parameter.ProjectileRadius, parameter.ProjectileRadius, tagProjectile
	case core.CategoryShieldBlock:
		return w.shieldHalfW, parameter.ShieldBlockHeight / 2, tagShield
	case core.CategoryLifeBar:
		return w.width / 2, parameter.LifeBarHeight / 2, tagLifeBar
	default:
		return parameter.PowerUpRadius, parameter.PowerUpRadius, tagPowerUp
	}
}

// partners are the tags a body of this category can begin a contact with
func partners(cat core.Category) (resolv.Tags, bool) {
	switch cat {
	case core.CategoryTarget:
		return tagProjectile | tagShield | tagLifeBar, true
	case core.CategoryShieldPowerUp, core.CategoryCannonPowerUp:
		return tagProjectile, true
	}
	return 0, false
}

// Step advances every moving body by dt seconds and returns this frame's contacts
// Wall contacts are reported on the frame the reflection happens, body pairs only on the first overlapping frame
func (w *World) Step(dt float64) []core.Contact {
	w.mu.Lock()
	defer w.mu.Unlock()

	var contacts []core.Contact

	for _, b := range w.ordered() {
		if !b.moving {
			continue
		}
		Integrate(&b.kin, dt)
		if b.category == core.CategoryTarget || b.category == core.CategoryProjectile {
			switch ReflectBoundsX(&b.kin, b.halfW, 0, w.width) {
			case -1:
				contacts = append(contacts, w.edgeContact(b, w.leftEdge, core.Vec2{X: 0, Y: b.kin.Pos.Y}))
			case 1:
				contacts = append(contacts, w.edgeContact(b, w.rightEdge, core.Vec2{X: w.width, Y: b.kin.Pos.Y}))
			}
		}
		b.shape.SetPosition(b.kin.Pos.X+b.anchor.X+w.offset, b.kin.Pos.Y+b.anchor.Y+w.offset)
	}

	now := make(map[pair]bool, len(w.touching))
	for _, b := range w.ordered() {
		tags, ok := partners(b.category)
		if !ok {
			continue
		}
		b.shape.IntersectionTest(resolv.IntersectionTestSettings{
			TestAgainst: b.shape.SelectTouchingCells(0).FilterShapes().ByTags(tags),
			OnIntersect: func(set resolv.IntersectionSet) bool {
				other, ok := w.shapes[set.OtherShape]
				if !ok || other == b {
					return true
				}
				p := makePair(b.entity, other.entity)
				if now[p] {
					return true
				}
				now[p] = true
				if !w.touching[p] {
					contacts = append(contacts, core.Contact{
						A: b.entity, CategoryA: b.category,
						B: other.entity, CategoryB: other.category,
						Point: b.kin.Pos.Midpoint(other.kin.Pos),
					})
				}
				return true
			},
		})
	}
	w.touching = now

	return contacts
}

func (w *World) edgeContact(b *body, edge core.Entity, at core.Vec2) core.Contact {
	return core.Contact{A: b.entity, CategoryA: b.category, B: edge, CategoryB: core.CategoryEdge, Point: at}
}

// ordered returns bodies by entity id so contact order is deterministic
func (w *World) ordered() []*body {
	out := make([]*body, 0, len(w.bodies))
	for _, e := range slices.Sorted(maps.Keys(w.bodies)) {
		out = append(out, w.bodies[e])
	}
	return out
}

// Position implements core.BodySource
func (w *World) Position(e core.Entity) (core.Vec2, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	b, ok := w.bodies[e]
	if !ok {
		return core.Vec2{}, false
	}
	return b.kin.Pos, true
}

// Len returns the number of simulated bodies
func (w *World) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.bodies)
}
