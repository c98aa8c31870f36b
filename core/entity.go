package core

import "math"

// Entity is a stable handle issued by the registry, zero is never issued
type Entity uint64

// Category identifies an entity kind
// Values are the physics category bits; the lower value is the first body of a contact pair
type Category uint32

const (
	CategoryNone          Category = 0
	CategoryTarget        Category = 0x01
	CategoryProjectile    Category = 0x02
	CategoryEdge          Category = 0x04
	CategoryShieldBlock   Category = 0x08
	CategoryLifeBar       Category = 0x10
	CategoryShieldPowerUp Category = 0x20
	CategoryCannonPowerUp Category = 0x40
)

var categoryNames = map[Category]string{
	CategoryNone:          "none",
	CategoryTarget:        "target",
	CategoryProjectile:    "projectile",
	CategoryEdge:          "edge",
	CategoryShieldBlock:   "shield",
	CategoryLifeBar:       "lifebar",
	CategoryShieldPowerUp: "shield-powerup",
	CategoryCannonPowerUp: "cannon-powerup",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// IsPowerUp reports whether the category drifts across the field as a pickup
func (c Category) IsPowerUp() bool {
	return c == CategoryShieldPowerUp || c == CategoryCannonPowerUp
}

// Tag is the single optional special marking a target can carry
type Tag uint8

const (
	TagNone Tag = iota
	TagScoreMultiplier
	TagBomb
)

func (t Tag) String() string {
	switch t {
	case TagScoreMultiplier:
		return "multiplier"
	case TagBomb:
		return "bomb"
	default:
		return "none"
	}
}

// Vec2 is a point or velocity in world units, y axis pointing up
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Midpoint returns the point halfway between v and o
func (v Vec2) Midpoint(o Vec2) Vec2 {
	return Vec2{(v.X + o.X) / 2, (v.Y + o.Y) / 2}
}

// FromAngle returns the unit vector for an angle in radians
func FromAngle(rad float64) Vec2 {
	return Vec2{math.Cos(rad), math.Sin(rad)}
}

// Rect is an axis-aligned area in world units
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether p lies inside the rectangle, edges included
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// BodySource resolves the current position of a simulated entity
// Implemented by the physics collaborator; positions are never stored by the core
type BodySource interface {
	Position(e Entity) (Vec2, bool)
}
