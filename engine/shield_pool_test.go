package engine

import (
	"testing"

	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/event"
	"github.com/lixenwraith/space-cannon/parameter"
)

func newTestPool() (*ShieldPool, *event.EventQueue) {
	emit, q := newTestEmitter()
	reg := NewRegistry(emit)
	pool := NewShieldPool(reg, emit, parameter.DefaultTuning())
	q.Consume()
	return pool, q
}

func assertConserved(t *testing.T, p *ShieldPool) {
	t.Helper()
	if p.InPlayCount()+p.ReserveCount() != parameter.ShieldCapacity {
		t.Errorf("Expected inPlay+reserve == %d, got %d+%d", parameter.ShieldCapacity, p.InPlayCount(), p.ReserveCount())
	}
}

func TestShieldPool_StartsInReserve(t *testing.T) {
	p, _ := newTestPool()
	if p.ReserveCount() != 6 || p.InPlayCount() != 0 {
		t.Errorf("Expected 6 reserve blocks, got reserve=%d inPlay=%d", p.ReserveCount(), p.InPlayCount())
	}
	assertConserved(t, p)
}

func TestShieldPool_ActivateOneUntilEmpty(t *testing.T) {
	p, q := newTestPool()
	pos := core.Vec2{X: 1, Y: 2}

	seen := make(map[core.Entity]bool)
	for i := 0; i < 6; i++ {
		e, ok := p.ActivateOne(pos)
		if !ok {
			t.Fatalf("Activation %d failed", i)
		}
		if seen[e] {
			t.Errorf("Block %d activated twice", e)
		}
		seen[e] = true
		assertConserved(t, p)
	}

	if e, ok := p.ActivateOne(pos); ok || e != 0 {
		t.Errorf("Expected empty result on drained reserve, got %d,%v", e, ok)
	}
	if got := countEvents(q.Consume(), event.EventShieldActivated); got != 6 {
		t.Errorf("Expected 6 activation events, got %d", got)
	}
}

func TestShieldPool_DeactivateOnce(t *testing.T) {
	p, q := newTestPool()
	p.ActivateAll()
	q.Consume()

	e := p.InPlayEntities()[2]
	if !p.Deactivate(e) {
		t.Fatal("Expected first deactivate to succeed")
	}
	if p.Deactivate(e) {
		t.Error("Expected second deactivate to be a no-op")
	}
	if p.Deactivate(424242) {
		t.Error("Expected foreign handle to be rejected")
	}
	if got := countEvents(q.Consume(), event.EventShieldDeactivated); got != 1 {
		t.Errorf("Expected 1 deactivation event, got %d", got)
	}
	assertConserved(t, p)
}

func TestShieldPool_ActivateReserveAtUsesHome(t *testing.T) {
	p, _ := newTestPool()
	p.ActivateAll()
	blocks := p.InPlayEntities()
	p.Deactivate(blocks[1])
	p.Deactivate(blocks[4])

	// Second reserve slot is slot 4
	e, ok := p.ActivateReserveAt(1)
	if !ok || e != blocks[4] {
		t.Fatalf("Expected slot 4 block %d, got %d,%v", blocks[4], e, ok)
	}
	pos, _ := p.Position(e)
	wantX, wantY := parameter.DefaultTuning().ShieldHome(4)
	if pos.X != wantX || pos.Y != wantY {
		t.Errorf("Expected home (%v,%v), got %v", wantX, wantY, pos)
	}

	if _, ok := p.ActivateReserveAt(1); ok {
		t.Error("Expected out-of-range reserve index to fail")
	}
	assertConserved(t, p)
}

func TestShieldPool_DeactivateAll(t *testing.T) {
	p, _ := newTestPool()
	p.ActivateAll()
	p.Deactivate(p.InPlayEntities()[0])

	if n := p.DeactivateAll(); n != 5 {
		t.Errorf("Expected 5 blocks reclaimed, got %d", n)
	}
	if p.ReserveCount() != 6 {
		t.Errorf("Expected full reserve, got %d", p.ReserveCount())
	}
	if n := p.ActivateAll(); n != 6 {
		t.Errorf("Expected 6 blocks reactivated, got %d", n)
	}
}
