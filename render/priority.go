package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityLifeBar
	PriorityShield
	PriorityTrail
	PriorityEntities
	PriorityCannon
	PriorityEffects
	PriorityUI
	PriorityOverlay
)
