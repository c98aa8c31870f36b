package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/engine"
	"github.com/lixenwraith/space-cannon/event"
	"github.com/lixenwraith/space-cannon/parameter"
)

func newTestSpawn(rng *scriptedRandom) *SpawnSystem {
	res, _ := newPlayingResources()
	return NewSpawnSystem(res, rng, quietLog)
}

func TestSpawnSystem_HaloOnTimer(t *testing.T) {
	s := newTestSpawn(&scriptedRandom{})
	reg := s.res.Registry

	s.Update(1900 * time.Millisecond)
	if n := reg.Count(core.CategoryTarget); n != 0 {
		t.Fatalf("Expected no halo before the interval, got %d", n)
	}
	s.Update(200 * time.Millisecond)
	if n := reg.Count(core.CategoryTarget); n != 1 {
		t.Fatalf("Expected one halo, got %d", n)
	}
	if math.Abs(s.Rate()-1.01) > 1e-9 {
		t.Errorf("Expected rate 1.01, got %v", s.Rate())
	}
}

func TestSpawnSystem_RateCapped(t *testing.T) {
	s := newTestSpawn(&scriptedRandom{})
	for i := 0; i < 80; i++ {
		s.SpawnTarget()
	}
	if s.Rate() != parameter.HaloRateCap {
		t.Errorf("Expected rate capped at %v, got %v", parameter.HaloRateCap, s.Rate())
	}
}

func TestSpawnSystem_SpawnGeometry(t *testing.T) {
	for _, f := range []float64{0, 0.25, 0.999} {
		rng := &scriptedRandom{}
		s := newTestSpawn(rng)
		rng.floats = []float64{f, f}
		e := s.SpawnTarget()
		rec, _ := s.res.Registry.Get(e)
		tun := s.res.Tuning

		if rec.Position.X < parameter.TargetRadius || rec.Position.X > tun.Width-parameter.TargetRadius {
			t.Errorf("x=%v outside spawn band", rec.Position.X)
		}
		if rec.Position.Y != tun.Height+parameter.TargetRadius {
			t.Errorf("Expected spawn above top edge, got y=%v", rec.Position.Y)
		}
		if rec.Velocity.Y >= 0 {
			t.Errorf("Expected downward velocity, got %v", rec.Velocity)
		}
		speed := math.Hypot(rec.Velocity.X, rec.Velocity.Y)
		if math.Abs(speed-tun.TargetSpeed) > 1e-6 {
			t.Errorf("Expected speed %v, got %v", tun.TargetSpeed, speed)
		}
	}
}

func TestSpawnSystem_BombWhenFourAlive(t *testing.T) {
	s := newTestSpawn(&scriptedRandom{})
	res := s.res
	for i := 0; i < parameter.BombTargetCount; i++ {
		spawnAt(res, core.CategoryTarget, 100, 300, core.TagNone)
	}

	bomb := s.SpawnTarget()
	if tag, _ := res.Registry.Tag(bomb); tag != core.TagBomb {
		t.Fatalf("Expected bomb tag, got %v", tag)
	}
	if !res.Session.BombPresent() {
		t.Error("Expected bomb flag set")
	}

	// Back to four alive with the bomb still present
	res.Registry.Destroy(res.Registry.Entities(core.CategoryTarget)[0])
	next := s.SpawnTarget()
	if tag, _ := res.Registry.Tag(next); tag == core.TagBomb {
		t.Error("Expected no second bomb while one is present")
	}
	if res.Registry.CountTagged(core.TagBomb) != 1 {
		t.Errorf("Expected exactly one bomb, got %d", res.Registry.CountTagged(core.TagBomb))
	}
}

func TestSpawnSystem_MultiplierDraw(t *testing.T) {
	s := newTestSpawn(&scriptedRandom{ints: []int{0}})
	e := s.SpawnTarget()
	if tag, _ := s.res.Registry.Tag(e); tag != core.TagScoreMultiplier {
		t.Errorf("Expected multiplier tag on a winning draw, got %v", tag)
	}

	e = s.SpawnTarget()
	if tag, _ := s.res.Registry.Tag(e); tag != core.TagNone {
		t.Errorf("Expected plain target on a losing draw, got %v", tag)
	}
}

func TestSpawnSystem_AmmoRegen(t *testing.T) {
	s := newTestSpawn(&scriptedRandom{})
	session := s.res.Session
	session.SetAmmo(2)

	s.Update(time.Second)
	if session.Ammo() != 3 {
		t.Errorf("Expected 3 ammo after one second, got %d", session.Ammo())
	}

	session.EnterMultishot()
	session.ConsumeAmmo()
	s.Update(time.Second)
	if session.Ammo() != 4 {
		t.Errorf("Expected regen frozen in multishot, got %d", session.Ammo())
	}
}

func TestSpawnSystem_InertWhenPaused(t *testing.T) {
	s := newTestSpawn(&scriptedRandom{})
	s.res.Session.SetAmmo(0)
	s.res.Session.TogglePause()

	s.Update(30 * time.Second)

	if s.res.Registry.Count(core.CategoryTarget) != 0 {
		t.Error("Expected no spawns while paused")
	}
	if s.res.Session.Ammo() != 0 {
		t.Error("Expected no regen while paused")
	}
}

func TestSpawnSystem_CannonPowerUpOnePerStep(t *testing.T) {
	s := newTestSpawn(&scriptedRandom{})
	reg := s.res.Registry

	s.RecordKill(23)
	s.Update(0)
	if n := reg.Count(core.CategoryCannonPowerUp); n != 1 {
		t.Fatalf("Expected one power-up, got %d", n)
	}
	if s.PendingKills() != 13 {
		t.Errorf("Expected remainder 13, got %d", s.PendingKills())
	}

	s.Update(0)
	s.Update(0)
	if n := reg.Count(core.CategoryCannonPowerUp); n != 2 {
		t.Errorf("Expected two power-ups after carry, got %d", n)
	}
	if s.PendingKills() != 3 {
		t.Errorf("Expected remainder 3, got %d", s.PendingKills())
	}
}

func TestSpawnSystem_ShieldPowerUpCooldown(t *testing.T) {
	s := newTestSpawn(&scriptedRandom{})
	res := s.res
	reg := res.Registry

	// Full line: the timer expires without a spawn and re-arms
	s.Update(16 * time.Second)
	if reg.Count(core.CategoryShieldPowerUp) != 0 || !s.ShieldPowerUpArmed() {
		t.Fatal("Expected no shield power-up with an empty reserve")
	}

	res.Shields.Deactivate(res.Shields.InPlayEntities()[0])
	s.Update(16 * time.Second)
	if reg.Count(core.CategoryShieldPowerUp) != 1 {
		t.Fatalf("Expected a shield power-up, got %d", reg.Count(core.CategoryShieldPowerUp))
	}
	if s.ShieldPowerUpArmed() {
		t.Error("Expected cooldown disarmed while in flight")
	}

	s.Update(16 * time.Second)
	if reg.Count(core.CategoryShieldPowerUp) != 1 {
		t.Error("Expected no second shield power-up while one is in flight")
	}

	s.PowerUpGone(core.CategoryShieldPowerUp)
	if !s.ShieldPowerUpArmed() {
		t.Error("Expected cooldown re-armed")
	}
}

func TestSpawnSystem_PowerUpDriftsAcross(t *testing.T) {
	for _, side := range []int{0, 1} {
		s := newTestSpawn(&scriptedRandom{ints: []int{side}})
		e := s.spawnPowerUp(core.CategoryCannonPowerUp)
		rec, _ := s.res.Registry.Get(e)

		if rec.Velocity.Y != 0 {
			t.Errorf("side %d: expected horizontal drift, got %v", side, rec.Velocity)
		}
		if (rec.Position.X < 0) != (rec.Velocity.X > 0) {
			t.Errorf("side %d: expected drift toward the opposite edge, pos=%v vel=%v", side, rec.Position, rec.Velocity)
		}
	}
}

func TestSpawnSystem_PowerUpBandFollowsHeight(t *testing.T) {
	tuning := parameter.DefaultTuning()
	tuning.Height = 200

	for _, draw := range []float64{0, 0.999} {
		q := event.NewEventQueue()
		res := engine.NewResources(event.NewEmitter(q), nil, tuning, nil)
		res.Session.StartGame()
		s := NewSpawnSystem(res, &scriptedRandom{floats: []float64{draw}}, quietLog)

		e := s.spawnPowerUp(core.CategoryShieldPowerUp)
		rec, _ := res.Registry.Get(e)
		if rec.Position.Y <= 0 || rec.Position.Y >= tuning.Height {
			t.Errorf("draw %v: expected power-up inside the field height %v, got y=%v", draw, tuning.Height, rec.Position.Y)
		}
	}
}
