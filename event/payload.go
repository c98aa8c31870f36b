package event

import "github.com/lixenwraith/space-cannon/core"

// GameEvent is a single queued notification
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   uint64 // Step counter at push time
}

// EntitySpawnedPayload describes a freshly created entity
type EntitySpawnedPayload struct {
	Entity   core.Entity
	Category core.Category
	Tag      core.Tag
	Position core.Vec2
	Velocity core.Vec2
}

type EntityDestroyedPayload struct {
	Entity   core.Entity
	Category core.Category
}

// ShieldPayload identifies a pooled block and where it sits
type ShieldPayload struct {
	Entity   core.Entity
	Slot     int
	Position core.Vec2
}

type VisualPayload struct {
	Kind     core.VisualKind
	Position core.Vec2
}

type SoundRequestPayload struct {
	SoundType core.SoundType
}

// HudPayload mirrors the on-screen counters
type HudPayload struct {
	Score      int
	Multiplier int
	Ammo       int
	Multishot  bool
}

type MenuPayload struct {
	Score    int
	TopScore int
}

type StateChangePayload struct {
	From core.Phase
	To   core.Phase
}

type MusicTogglePayload struct {
	Enabled bool
}
