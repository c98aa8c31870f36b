package parameter

import "time"

// Layout
const (
	// HudRows is the number of terminal rows reserved above the playfield
	HudRows = 1
)

// Visual effect lifetimes
const (
	ExplosionLifetime     = 300 * time.Millisecond
	DeepExplosionLifetime = 900 * time.Millisecond
	BounceFlashLifetime   = 150 * time.Millisecond

	// TrailLength is the number of past cells kept per projectile
	TrailLength = 4

	// TrailFade is how long a trail lingers once its projectile is gone
	TrailFade = 200 * time.Millisecond
)

// Glyphs
const (
	GlyphTarget        = 'O'
	GlyphProjectile    = '*'
	GlyphShield        = '='
	GlyphLifeBar       = '-'
	GlyphShieldPowerUp = 'S'
	GlyphCannonPowerUp = 'M'
	GlyphCannon        = '^'
	GlyphTrail         = '.'
	GlyphExplosion     = '#'
	GlyphBounce        = '+'
	GlyphAmmo          = '|'

	AudioStr = "♫ "
)
