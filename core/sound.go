package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundLaser         SoundType = iota // Cannon fired
	SoundBounce                         // Target bounced off a wall
	SoundExplosion                      // Target destroyed
	SoundDeepExplosion                  // Life bar destroyed
	SoundShieldUp                       // Shield block restored by pickup
	SoundPowerUp                        // Multishot pickup
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{"laser", "bounce", "explosion", "deep-explosion", "shield-up", "powerup"}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// VisualKind selects a transient effect drawn by the presentation
type VisualKind uint8

const (
	VisualExplosion       VisualKind = iota // Target destroyed
	VisualBounceExplosion                   // Projectile hit a wall
	VisualDeepExplosion                     // Life bar destroyed
)
