package system

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/engine"
	"github.com/lixenwraith/space-cannon/parameter"
	"github.com/lixenwraith/space-cannon/status"
)

// SpawnSystem drives every time-based generator: halos, ammo regeneration and both power-ups
type SpawnSystem struct {
	res *engine.Resources
	rng Random
	log zerolog.Logger

	rate          float64       // Halo spawn rate multiplier, 1.0 up to the cap
	haloRemaining time.Duration // Until next halo
	ammoRemaining time.Duration // Until next ammo regen

	shieldPowerUpArmed     bool // False while a shield power-up is in flight
	shieldPowerUpRemaining time.Duration

	kills int // Targets destroyed since the last cannon power-up

	statSpawned *atomic.Int64
	statRate    *status.AtomicFloat
}

func NewSpawnSystem(res *engine.Resources, rng Random, log zerolog.Logger) *SpawnSystem {
	s := &SpawnSystem{
		res:         res,
		rng:         rng,
		log:         log.With().Str("system", "spawn").Logger(),
		statSpawned: res.Status.Ints.Get(status.KeyTargetsSpawned),
		statRate:    res.Status.Floats.Get(status.KeySpawnRate),
	}
	s.Reset()
	return s
}

// Reset restores the start-of-game schedule
func (s *SpawnSystem) Reset() {
	s.rate = 1.0
	s.kills = 0
	s.haloRemaining = s.nextHaloInterval()
	s.ammoRemaining = parameter.AmmoRegenInterval
	s.shieldPowerUpArmed = true
	s.shieldPowerUpRemaining = s.nextShieldPowerUpInterval()
	s.statRate.Set(s.rate)
}

// Update advances every timer; inert outside Playing
func (s *SpawnSystem) Update(dt time.Duration) {
	if !s.res.Session.IsPlaying() {
		return
	}

	s.haloRemaining -= dt
	if s.haloRemaining <= 0 {
		s.SpawnTarget()
		s.haloRemaining = s.nextHaloInterval()
	}

	s.ammoRemaining -= dt
	if s.ammoRemaining <= 0 {
		s.ammoRemaining += parameter.AmmoRegenInterval
		s.res.Session.RegenAmmo()
	}

	if s.shieldPowerUpArmed {
		s.shieldPowerUpRemaining -= dt
		if s.shieldPowerUpRemaining <= 0 {
			s.releaseShieldPowerUp()
		}
	}

	s.checkCannonPowerUp()
}

// SpawnTarget launches one halo from above the top edge and ramps the spawn rate
func (s *SpawnSystem) SpawnTarget() core.Entity {
	t := s.res.Tuning
	reg := s.res.Registry
	session := s.res.Session

	tag := core.TagNone
	switch {
	case reg.Count(core.CategoryTarget) == parameter.BombTargetCount && !session.BombPresent():
		tag = core.TagBomb
		session.SetBombPresent(true)
	case session.IsPlaying() && s.rng.IntN(parameter.MultiplierChance) == 0:
		tag = core.TagScoreMultiplier
	}

	pos := core.Vec2{
		X: uniform(s.rng, parameter.TargetRadius, t.Width-parameter.TargetRadius),
		Y: t.Height + parameter.TargetRadius,
	}
	deg := uniform(s.rng, parameter.HaloAngleMin, parameter.HaloAngleMax)
	vel := core.FromAngle(deg * math.Pi / 180).Scale(t.TargetSpeed)

	e := reg.Create(core.CategoryTarget, pos, vel, tag)

	s.rate = min(s.rate+t.HaloRateStep, t.HaloRateCap)
	s.statRate.Set(s.rate)
	s.statSpawned.Add(1)
	s.log.Debug().Uint64("entity", uint64(e)).Stringer("tag", tag).Float64("rate", s.rate).Msg("target spawned")
	return e
}

// RecordKill counts destroyed targets toward the next cannon power-up
func (s *SpawnSystem) RecordKill(n int) {
	s.kills += n
}

// checkCannonPowerUp releases at most one cannon power-up per step, carrying the remainder
func (s *SpawnSystem) checkCannonPowerUp() {
	threshold := s.res.Tuning.KillsPerCannonPowerUp
	if s.kills < threshold {
		return
	}
	s.kills -= threshold
	s.spawnPowerUp(core.CategoryCannonPowerUp)
}

func (s *SpawnSystem) releaseShieldPowerUp() {
	if s.res.Shields.ReserveCount() == 0 {
		s.shieldPowerUpRemaining = s.nextShieldPowerUpInterval()
		return
	}
	s.shieldPowerUpArmed = false
	s.spawnPowerUp(core.CategoryShieldPowerUp)
}

// PowerUpGone re-arms the shield power-up cooldown once the pickup was collected or lost
func (s *SpawnSystem) PowerUpGone(cat core.Category) {
	if cat != core.CategoryShieldPowerUp {
		return
	}
	s.shieldPowerUpArmed = true
	s.shieldPowerUpRemaining = s.nextShieldPowerUpInterval()
}

// spawnPowerUp enters from a random side edge and drifts toward the opposite one
func (s *SpawnSystem) spawnPowerUp(cat core.Category) core.Entity {
	t := s.res.Tuning
	lo, hi := t.PowerUpBand()
	y := uniform(s.rng, lo, hi)

	pos := core.Vec2{X: -parameter.PowerUpRadius, Y: y}
	vel := core.Vec2{X: t.PowerUpSpeed}
	if s.rng.IntN(2) == 1 {
		pos.X = t.Width + parameter.PowerUpRadius
		vel.X = -t.PowerUpSpeed
	}

	e := s.res.Registry.Create(cat, pos, vel, core.TagNone)
	s.log.Debug().Uint64("entity", uint64(e)).Stringer("category", cat).Msg("power-up released")
	return e
}

func (s *SpawnSystem) nextHaloInterval() time.Duration {
	t := s.res.Tuning
	base := float64(t.HaloInterval) + (s.rng.Float64()-0.5)*float64(t.HaloIntervalSpread)
	return time.Duration(base / s.rate)
}

func (s *SpawnSystem) nextShieldPowerUpInterval() time.Duration {
	t := s.res.Tuning
	return t.ShieldPowerUpInterval + time.Duration((s.rng.Float64()*2-1)*float64(t.ShieldPowerUpJitter))
}

// Rate returns the current halo spawn rate multiplier
func (s *SpawnSystem) Rate() float64 { return s.rate }

// PendingKills returns kills not yet converted into a cannon power-up
func (s *SpawnSystem) PendingKills() int { return s.kills }

// ShieldPowerUpArmed reports whether the shield power-up cooldown is running
func (s *SpawnSystem) ShieldPowerUpArmed() bool { return s.shieldPowerUpArmed }
