package engine

import (
	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/event"
	"github.com/lixenwraith/space-cannon/parameter"
)

type shieldSlot struct {
	entity core.Entity
	home   core.Vec2
	pos    core.Vec2
	inPlay bool
}

// ShieldPool is a fixed arena of shield blocks, each either in play or in reserve
// Blocks are created once and never destroyed; activation moves a slot, nothing is allocated
type ShieldPool struct {
	slots [parameter.ShieldCapacity]shieldSlot
	index map[core.Entity]int
	reg   *Registry
	emit  *event.Emitter
}

// NewShieldPool creates every block in reserve, homes spread along the shield row across the field width
func NewShieldPool(reg *Registry, emit *event.Emitter, tuning parameter.Tuning) *ShieldPool {
	p := &ShieldPool{
		index: make(map[core.Entity]int, parameter.ShieldCapacity),
		reg:   reg,
		emit:  emit,
	}
	for i := range p.slots {
		x, y := tuning.ShieldHome(i)
		home := core.Vec2{X: x, Y: y}
		e := reg.CreatePooled(core.CategoryShieldBlock, home)
		p.slots[i] = shieldSlot{entity: e, home: home, pos: home}
		p.index[e] = i
	}
	return p
}

// ActivateOne moves the first reserve block into play at pos
// Returns false when the reserve is empty
func (p *ShieldPool) ActivateOne(pos core.Vec2) (core.Entity, bool) {
	for i := range p.slots {
		if !p.slots[i].inPlay {
			p.activate(i, pos)
			return p.slots[i].entity, true
		}
	}
	return 0, false
}

// ActivateReserveAt moves the n-th reserve block (counting reserve slots only) back to its home
func (p *ShieldPool) ActivateReserveAt(n int) (core.Entity, bool) {
	if n < 0 {
		return 0, false
	}
	for i := range p.slots {
		if p.slots[i].inPlay {
			continue
		}
		if n == 0 {
			p.activate(i, p.slots[i].home)
			return p.slots[i].entity, true
		}
		n--
	}
	return 0, false
}

// ActivateAll moves every reserve block to its home, returns the number moved
func (p *ShieldPool) ActivateAll() int {
	n := 0
	for i := range p.slots {
		if !p.slots[i].inPlay {
			p.activate(i, p.slots[i].home)
			n++
		}
	}
	return n
}

func (p *ShieldPool) activate(i int, pos core.Vec2) {
	s := &p.slots[i]
	s.inPlay = true
	s.pos = pos
	p.reg.SetPosition(s.entity, pos)
	p.emit.Emit(event.EventShieldActivated, &event.ShieldPayload{Entity: s.entity, Slot: i, Position: pos})
}

// Deactivate returns an in-play block to reserve
// A block already in reserve, or a handle the pool does not own, is a no-op returning false
func (p *ShieldPool) Deactivate(e core.Entity) bool {
	i, ok := p.index[e]
	if !ok || !p.slots[i].inPlay {
		return false
	}
	s := &p.slots[i]
	s.inPlay = false
	p.emit.Emit(event.EventShieldDeactivated, &event.ShieldPayload{Entity: e, Slot: i, Position: s.pos})
	return true
}

// DeactivateAll returns every in-play block to reserve, returns the number moved
func (p *ShieldPool) DeactivateAll() int {
	n := 0
	for i := range p.slots {
		if p.Deactivate(p.slots[i].entity) {
			n++
		}
	}
	return n
}

// InPlay reports whether e is a pooled block currently in play
func (p *ShieldPool) InPlay(e core.Entity) bool {
	i, ok := p.index[e]
	return ok && p.slots[i].inPlay
}

// Owns reports whether e belongs to the pool
func (p *ShieldPool) Owns(e core.Entity) bool {
	_, ok := p.index[e]
	return ok
}

func (p *ShieldPool) InPlayCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].inPlay {
			n++
		}
	}
	return n
}

func (p *ShieldPool) ReserveCount() int {
	return len(p.slots) - p.InPlayCount()
}

func (p *ShieldPool) Capacity() int {
	return len(p.slots)
}

// InPlayEntities returns the in-play blocks in slot order
func (p *ShieldPool) InPlayEntities() []core.Entity {
	out := make([]core.Entity, 0, len(p.slots))
	for i := range p.slots {
		if p.slots[i].inPlay {
			out = append(out, p.slots[i].entity)
		}
	}
	return out
}

// Position returns where a block sits, its home while in reserve
func (p *ShieldPool) Position(e core.Entity) (core.Vec2, bool) {
	i, ok := p.index[e]
	if !ok {
		return core.Vec2{}, false
	}
	return p.slots[i].pos, true
}
