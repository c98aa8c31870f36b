package system

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/engine"
)

// SweepSystem removes entities that left the playfield and applies the matching state resets
type SweepSystem struct {
	res   *engine.Resources
	kills KillSink
	log   zerolog.Logger
}

func NewSweepSystem(res *engine.Resources, kills KillSink, log zerolog.Logger) *SweepSystem {
	return &SweepSystem{
		res:   res,
		kills: kills,
		log:   log.With().Str("system", "sweep").Logger(),
	}
}

// Bounds returns the area an entity may occupy before it is culled
func (s *SweepSystem) Bounds() core.Rect {
	t := s.res.Tuning
	m := t.CullMargin
	return core.Rect{MinX: -m, MinY: -m, MaxX: t.Width + m, MaxY: t.Height + m}
}

// Update culls projectiles, targets and power-ups outside Bounds
// Returns the number of entities removed
func (s *SweepSystem) Update() int {
	bounds := s.Bounds()
	reg := s.res.Registry
	session := s.res.Session
	removed := 0

	for _, e := range reg.Entities(core.CategoryProjectile) {
		if s.inside(e, bounds) {
			continue
		}
		if reg.Destroy(e) {
			session.ResetMultiplier()
			removed++
		}
	}

	// Targets spawn above the top edge and fall, so only the top is open
	targetBounds := bounds
	targetBounds.MaxY = s.res.Tuning.Height + 2*s.res.Tuning.CullMargin
	for _, e := range reg.Entities(core.CategoryTarget) {
		if s.inside(e, targetBounds) {
			continue
		}
		tag, _ := reg.Tag(e)
		if reg.Destroy(e) {
			if tag == core.TagBomb {
				session.SetBombPresent(false)
			}
			removed++
		}
	}

	for _, cat := range []core.Category{core.CategoryShieldPowerUp, core.CategoryCannonPowerUp} {
		for _, e := range reg.Entities(cat) {
			if s.inside(e, bounds) {
				continue
			}
			if reg.Destroy(e) {
				s.kills.PowerUpGone(cat)
				removed++
			}
		}
	}

	if removed > 0 {
		s.log.Trace().Int("removed", removed).Msg("sweep")
	}
	return removed
}

// inside treats entities without a known position as inside
func (s *SweepSystem) inside(e core.Entity, bounds core.Rect) bool {
	p, ok := s.res.PositionOf(e)
	return !ok || bounds.Contains(p)
}
