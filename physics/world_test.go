package physics

import (
	"testing"

	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/event"
)

func spawn(w *World, e core.Entity, cat core.Category, pos, vel core.Vec2) {
	w.HandleEvent(event.GameEvent{
		Type:    event.EventEntitySpawned,
		Payload: &event.EntitySpawnedPayload{Entity: e, Category: cat, Position: pos, Velocity: vel},
	})
}

func newTestWorld() *World {
	w := NewWorld(320, 568)
	spawn(w, 1, core.CategoryEdge, core.Vec2{X: 0, Y: 284}, core.Vec2{})
	spawn(w, 2, core.CategoryEdge, core.Vec2{X: 320, Y: 284}, core.Vec2{})
	return w
}

func TestWorld_EdgesHaveNoBody(t *testing.T) {
	w := newTestWorld()
	if w.Len() != 0 {
		t.Errorf("Expected no bodies, got %d", w.Len())
	}
}

func TestWorld_IntegratesMovers(t *testing.T) {
	w := newTestWorld()
	spawn(w, 10, core.CategoryTarget, core.Vec2{X: 100, Y: 500}, core.Vec2{X: 0, Y: -100})

	w.Step(0.5)

	p, ok := w.Position(10)
	if !ok {
		t.Fatal("Expected target position")
	}
	if p.X != 100 || p.Y != 450 {
		t.Errorf("Expected (100,450), got (%v,%v)", p.X, p.Y)
	}
}

func TestWorld_WallReflectionReportsEdge(t *testing.T) {
	w := newTestWorld()
	spawn(w, 10, core.CategoryProjectile, core.Vec2{X: 310, Y: 300}, core.Vec2{X: 100, Y: 0})

	contacts := w.Step(0.1)
	if len(contacts) != 1 {
		t.Fatalf("Expected 1 contact, got %d", len(contacts))
	}
	c := contacts[0]
	if c.A != 10 || c.B != 2 || c.CategoryB != core.CategoryEdge {
		t.Errorf("Expected projectile against right edge, got %+v", c)
	}

	if again := w.Step(0.01); len(again) != 0 {
		t.Errorf("Expected no contact once moving away, got %d", len(again))
	}
	if p, _ := w.Position(10); p.X >= 320-6 {
		t.Errorf("Expected projectile moving back inside, got x=%v", p.X)
	}
}

func TestWorld_PowerUpsPassWalls(t *testing.T) {
	w := newTestWorld()
	spawn(w, 10, core.CategoryCannonPowerUp, core.Vec2{X: 315, Y: 300}, core.Vec2{X: 100, Y: 0})

	if contacts := w.Step(0.5); len(contacts) != 0 {
		t.Errorf("Expected no wall contact, got %d", len(contacts))
	}
	if p, _ := w.Position(10); p.X != 365 {
		t.Errorf("Expected power-up to drift out to 365, got %v", p.X)
	}
}

func TestWorld_BeginContactOnce(t *testing.T) {
	w := newTestWorld()
	spawn(w, 10, core.CategoryTarget, core.Vec2{X: 100, Y: 300}, core.Vec2{})
	spawn(w, 11, core.CategoryProjectile, core.Vec2{X: 100, Y: 300}, core.Vec2{})

	first := w.Step(0.016)
	if len(first) != 1 {
		t.Fatalf("Expected 1 begin contact, got %d", len(first))
	}
	if first[0].A != 10 || first[0].B != 11 {
		t.Errorf("Expected target/projectile pair, got %+v", first[0])
	}

	if second := w.Step(0.016); len(second) != 0 {
		t.Errorf("Expected no repeat while overlapping, got %d", len(second))
	}
}

func TestWorld_ShieldFollowsPool(t *testing.T) {
	w := newTestWorld()
	spawn(w, 20, core.CategoryShieldBlock, core.Vec2{X: 35, Y: 90}, core.Vec2{})
	if w.Len() != 0 {
		t.Fatal("Expected pooled shield without a body")
	}

	w.HandleEvent(event.GameEvent{
		Type:    event.EventShieldActivated,
		Payload: &event.ShieldPayload{Entity: 20, Position: core.Vec2{X: 35, Y: 90}},
	})
	if p, ok := w.Position(20); !ok || p.X != 35 || p.Y != 90 {
		t.Errorf("Expected shield body at (35,90), got %v %v", p, ok)
	}

	w.Step(1)
	if p, _ := w.Position(20); p.Y != 90 {
		t.Errorf("Expected shield to stay put, got y=%v", p.Y)
	}

	w.HandleEvent(event.GameEvent{
		Type:    event.EventShieldDeactivated,
		Payload: &event.ShieldPayload{Entity: 20},
	})
	if _, ok := w.Position(20); ok {
		t.Error("Expected shield body removed")
	}
}

func TestWorld_DestroyRemovesBody(t *testing.T) {
	w := newTestWorld()
	spawn(w, 10, core.CategoryTarget, core.Vec2{X: 100, Y: 300}, core.Vec2{})

	w.HandleEvent(event.GameEvent{
		Type:    event.EventEntityDestroyed,
		Payload: &event.EntityDestroyedPayload{Entity: 10, Category: core.CategoryTarget},
	})

	if w.Len() != 0 {
		t.Errorf("Expected empty world, got %d", w.Len())
	}
}
