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

// CannonSystem sweeps the aim back and forth and turns fire requests into projectiles
type CannonSystem struct {
	res *engine.Resources
	log zerolog.Logger

	origin  core.Vec2
	elapsed time.Duration // Sweep phase

	pending    int           // Shots left in the current multishot burst
	burstTimer time.Duration // Until next burst shot

	statShots *atomic.Int64
}

func NewCannonSystem(res *engine.Resources, log zerolog.Logger) *CannonSystem {
	return &CannonSystem{
		res:       res,
		log:       log.With().Str("system", "cannon").Logger(),
		origin:    core.Vec2{X: res.Tuning.Width / 2, Y: 0},
		statShots: res.Status.Ints.Get(status.KeyShotsFired),
	}
}

// Reset drops any queued burst shots
func (c *CannonSystem) Reset() {
	c.pending = 0
	c.burstTimer = 0
}

// Angle returns the aim in radians, a triangle wave over [0, pi]
func (c *CannonSystem) Angle() float64 {
	period := c.res.Tuning.CannonSweepPeriod
	phase := float64(c.elapsed%period) / float64(period)
	if phase < 0.5 {
		return 2 * phase * math.Pi
	}
	return (2 - 2*phase) * math.Pi
}

// Origin returns the cannon pivot
func (c *CannonSystem) Origin() core.Vec2 { return c.origin }

// Pending returns burst shots still queued
func (c *CannonSystem) Pending() int { return c.pending }

// Fire consumes one ammo and launches a projectile, queuing the rest of a burst in multishot mode
// Ignored outside Playing or with an empty magazine
func (c *CannonSystem) Fire() bool {
	session := c.res.Session
	if !session.IsPlaying() {
		return false
	}
	burst := session.Multishot()
	if !session.ConsumeAmmo() {
		return false
	}

	c.launch()
	if burst {
		if c.pending == 0 {
			c.burstTimer = c.res.Tuning.MultishotSpacing
		}
		c.pending += c.res.Tuning.MultishotBurst - 1
		c.log.Debug().Int("pending", c.pending).Msg("burst queued")
	}
	return true
}

// Update advances the sweep and releases due burst shots
func (c *CannonSystem) Update(dt time.Duration) {
	c.elapsed += dt
	if c.pending == 0 || !c.res.Session.IsPlaying() {
		return
	}

	c.burstTimer -= dt
	for c.pending > 0 && c.burstTimer <= 0 {
		c.launch()
		c.pending--
		c.burstTimer += c.res.Tuning.MultishotSpacing
	}
}

func (c *CannonSystem) launch() core.Entity {
	aim := core.FromAngle(c.Angle())
	pos := c.origin.Add(aim.Scale(parameter.CannonWidth / 2))
	vel := aim.Scale(c.res.Tuning.ShootSpeed)

	e := c.res.Registry.Create(core.CategoryProjectile, pos, vel, core.TagNone)
	c.res.Sound(core.SoundLaser)
	c.statShots.Add(1)
	return e
}
