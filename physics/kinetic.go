package physics

import "github.com/lixenwraith/space-cannon/core"

// Kinetic is the integrable state of a moving body in world units
type Kinetic struct {
	Pos core.Vec2
	Vel core.Vec2
}

// Integrate performs physics integration: p = p + v*dt
func Integrate(k *Kinetic, dt float64) core.Vec2 {
	k.Pos = k.Pos.Add(k.Vel.Scale(dt))
	return k.Pos
}

// ReflectBoundsX handles horizontal wall collision for a body of half-width r
// Returns -1 for the left wall, 1 for the right wall, 0 when no reflection occurred
// Only a body moving into the wall reflects, so an overlapping body never bounces twice
func ReflectBoundsX(k *Kinetic, r, minX, maxX float64) int {
	if k.Pos.X-r < minX && k.Vel.X < 0 {
		k.Pos.X = minX + r
		k.Vel.X = -k.Vel.X
		return -1
	}
	if k.Pos.X+r > maxX && k.Vel.X > 0 {
		k.Pos.X = maxX - r
		k.Vel.X = -k.Vel.X
		return 1
	}
	return 0
}
