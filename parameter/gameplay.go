package parameter

import "time"

// Playfield, world units with the origin at the bottom-left corner
const (
	PlayfieldWidth  = 320.0
	PlayfieldHeight = 568.0

	// CullMargin is how far outside the playfield an entity may drift before the sweep removes it
	CullMargin = 32.0
)

// Bodies
const (
	TargetRadius     = 16.0
	ProjectileRadius = 6.0
	PowerUpRadius    = 12.0

	CannonWidth = 40.0

	ShieldBlockWidth  = 40.0
	ShieldBlockHeight = 8.0
	ShieldRowY        = 90.0
	ShieldFirstX      = 35.0
	ShieldSpacing     = 50.0

	LifeBarY      = 70.0
	LifeBarHeight = 4.0
)

// Speeds, world units per second
const (
	TargetSpeed  = 100.0
	ShootSpeed   = 1000.0
	PowerUpSpeed = 100.0
)

// Halo Spawning
const (
	// HaloInterval is the mean delay between halo spawns at rate multiplier 1.0
	HaloInterval = 2 * time.Second

	// HaloIntervalSpread is the total width of the uniform jitter around HaloInterval
	HaloIntervalSpread = time.Second

	// HaloAngleMin and HaloAngleMax bound the launch direction, degrees
	HaloAngleMin = 200.0
	HaloAngleMax = 340.0

	HaloRateStep = 0.01
	HaloRateCap  = 1.5

	// BombTargetCount is the live target count at which the next halo becomes a bomb
	BombTargetCount = 4

	// MultiplierChance is the 1-in-N draw for a score multiplier halo
	MultiplierChance = 6
)

// Session
const (
	AmmoMax           = 5
	AmmoRegenInterval = time.Second

	// MaxBounces is the number of wall bounces a projectile survives
	MaxBounces = 3

	ShieldCapacity = 6
)

// Power-ups
const (
	ShieldPowerUpInterval = 15 * time.Second
	ShieldPowerUpJitter   = 4 * time.Second

	// KillsPerCannonPowerUp is the destroyed target count that releases a cannon power-up
	KillsPerCannonPowerUp = 10

	MultishotBurst   = 5
	MultishotSpacing = 100 * time.Millisecond
)

// Cannon
const (
	// CannonSweepPeriod is a full back-and-forth sweep of the aim over 0..pi
	CannonSweepPeriod = 4 * time.Second
)

// Power-up drift band on the stock playfield, power-ups cross the field horizontally inside it
const (
	PowerUpMinY = 220.0
	PowerUpMaxY = 460.0
)

// Fixed bodies
const (
	// EdgeThickness is the collision depth of the side walls
	EdgeThickness = 4.0
)
