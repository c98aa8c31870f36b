package system

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/engine"
	"github.com/lixenwraith/space-cannon/parameter"
	"github.com/lixenwraith/space-cannon/status"
)

// KillSink receives the side effects of resolution that belong to the spawn schedule
type KillSink interface {
	RecordKill(n int)
	PowerUpGone(cat core.Category)
}

// pairKey identifies a canonical category pair
type pairKey struct {
	first, second core.Category
}

// CollisionSystem applies the contact rule table to one step's batch of begin-contacts
type CollisionSystem struct {
	res   *engine.Resources
	kills KillSink
	rng   Random
	log   zerolog.Logger

	rules map[pairKey]func(c core.Contact)

	// OnLifeBarLost runs when a target reaches the life bar
	OnLifeBarLost func()

	statKilled  *atomic.Int64
	statBombs   *atomic.Int64
	statShields *atomic.Int64
	statPowerUp *atomic.Int64
}

func NewCollisionSystem(res *engine.Resources, kills KillSink, rng Random, log zerolog.Logger) *CollisionSystem {
	s := &CollisionSystem{
		res:         res,
		kills:       kills,
		rng:         rng,
		log:         log.With().Str("system", "collision").Logger(),
		statKilled:  res.Status.Ints.Get(status.KeyTargetsKilled),
		statBombs:   res.Status.Ints.Get(status.KeyBombsDetonated),
		statShields: res.Status.Ints.Get(status.KeyShieldsLost),
		statPowerUp: res.Status.Ints.Get(status.KeyPowerUps),
	}
	s.rules = map[pairKey]func(core.Contact){
		{core.CategoryTarget, core.CategoryEdge}:              s.targetEdge,
		{core.CategoryProjectile, core.CategoryEdge}:          s.projectileEdge,
		{core.CategoryTarget, core.CategoryProjectile}:        s.targetProjectile,
		{core.CategoryTarget, core.CategoryShieldBlock}:       s.targetShield,
		{core.CategoryTarget, core.CategoryLifeBar}:           s.targetLifeBar,
		{core.CategoryProjectile, core.CategoryShieldPowerUp}: s.projectileShieldPowerUp,
		{core.CategoryProjectile, core.CategoryCannonPowerUp}: s.projectileCannonPowerUp,
	}
	return s
}

// Resolve applies the rule table to every contact in order
// Categories come from the registry so destroyed or inert entities fall through as no-ops
// Contacts remaining after the session leaves Playing are discarded
func (s *CollisionSystem) Resolve(contacts []core.Contact) {
	for _, raw := range contacts {
		if !s.res.Session.IsPlaying() {
			return
		}
		c, ok := s.classify(raw)
		if !ok {
			continue
		}
		rule, ok := s.rules[pairKey{c.CategoryA, c.CategoryB}]
		if !ok {
			continue
		}
		s.log.Trace().Uint64("a", uint64(c.A)).Stringer("cat_a", c.CategoryA).
			Uint64("b", uint64(c.B)).Stringer("cat_b", c.CategoryB).Msg("contact")
		rule(c)
	}
}

// classify replaces reported categories with live ones and canonicalizes the pair
func (s *CollisionSystem) classify(raw core.Contact) (core.Contact, bool) {
	c := raw
	c.CategoryA = s.liveCategory(raw.A)
	c.CategoryB = s.liveCategory(raw.B)
	if c.CategoryA == core.CategoryNone || c.CategoryB == core.CategoryNone || c.A == c.B {
		return c, false
	}
	return c.Canonical(), true
}

func (s *CollisionSystem) liveCategory(e core.Entity) core.Category {
	cat := s.res.Registry.Category(e)
	if cat == core.CategoryShieldBlock && !s.res.Shields.InPlay(e) {
		return core.CategoryNone
	}
	return cat
}

func (s *CollisionSystem) positionOr(e core.Entity, fallback core.Vec2) core.Vec2 {
	if p, ok := s.res.PositionOf(e); ok {
		return p
	}
	return fallback
}

// === Rules, first is the lower category ===

func (s *CollisionSystem) targetEdge(c core.Contact) {
	s.res.Sound(core.SoundBounce)
}

func (s *CollisionSystem) projectileEdge(c core.Contact) {
	s.res.Visual(core.VisualBounceExplosion, c.Point)
	if s.res.Registry.IncrementBounce(c.A) > parameter.MaxBounces {
		s.res.Registry.Destroy(c.A)
		s.res.Session.ResetMultiplier()
	}
}

func (s *CollisionSystem) targetProjectile(c core.Contact) {
	reg := s.res.Registry
	session := s.res.Session
	target, projectile := c.A, c.B

	session.AddScore()
	s.res.Visual(core.VisualExplosion, s.positionOr(target, c.Point))
	s.res.Sound(core.SoundExplosion)

	tag, _ := reg.Tag(target)
	reg.MarkInert(target)
	killed := 1

	switch tag {
	case core.TagScoreMultiplier:
		session.IncrementMultiplier()
	case core.TagBomb:
		reg.ClearTag(target)
		for _, other := range reg.Entities(core.CategoryTarget) {
			if other == target || reg.Category(other) == core.CategoryNone {
				continue
			}
			reg.MarkInert(other)
			s.res.Visual(core.VisualExplosion, s.positionOr(other, c.Point))
			reg.Destroy(other)
			killed++
		}
		session.SetBombPresent(false)
		s.statBombs.Add(1)
		s.log.Debug().Int("chain", killed-1).Msg("bomb detonated")
	}

	reg.Destroy(target)
	reg.Destroy(projectile)

	s.statKilled.Add(int64(killed))
	s.kills.RecordKill(killed)
}

func (s *CollisionSystem) targetShield(c core.Contact) {
	reg := s.res.Registry
	target, shield := c.A, c.B

	s.res.Visual(core.VisualExplosion, s.positionOr(target, c.Point))
	s.res.Sound(core.SoundExplosion)

	tag, _ := reg.Tag(target)
	reg.MarkInert(target)

	if tag == core.TagBomb {
		reg.ClearTag(target)
		lost := s.res.Shields.DeactivateAll()
		s.res.Session.SetBombPresent(false)
		s.statShields.Add(int64(lost))
	} else if s.res.Shields.Deactivate(shield) {
		s.statShields.Add(1)
	}

	reg.Destroy(target)
}

func (s *CollisionSystem) targetLifeBar(c core.Contact) {
	lifeBar := c.B

	s.res.Visual(core.VisualDeepExplosion, s.positionOr(lifeBar, c.Point))
	s.res.Sound(core.SoundDeepExplosion)
	s.res.Registry.Destroy(lifeBar)
	s.log.Info().Int("score", s.res.Session.Score()).Msg("life bar destroyed")

	if s.OnLifeBarLost != nil {
		s.OnLifeBarLost()
	}
}

func (s *CollisionSystem) projectileShieldPowerUp(c core.Contact) {
	projectile, powerUp := c.A, c.B

	if reserve := s.res.Shields.ReserveCount(); reserve > 0 {
		s.res.Shields.ActivateReserveAt(s.rng.IntN(reserve))
	}
	s.res.Sound(core.SoundShieldUp)

	s.res.Registry.Destroy(projectile)
	s.res.Registry.Destroy(powerUp)
	s.statPowerUp.Add(1)
	s.kills.PowerUpGone(core.CategoryShieldPowerUp)
}

func (s *CollisionSystem) projectileCannonPowerUp(c core.Contact) {
	projectile, powerUp := c.A, c.B

	s.res.Session.EnterMultishot()
	s.res.Sound(core.SoundPowerUp)

	s.res.Registry.Destroy(projectile)
	s.res.Registry.Destroy(powerUp)
	s.statPowerUp.Add(1)
	s.kills.PowerUpGone(core.CategoryCannonPowerUp)
}
