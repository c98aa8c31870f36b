package event

// EventType represents the type of game event
type EventType int

const (
	// === Entity Lifecycle ===

	// EventEntitySpawned announces a new registry entity
	// Trigger: Registry.Create
	// Consumer: PhysicsWorld, Renderer | Payload: *EntitySpawnedPayload
	EventEntitySpawned EventType = iota + 1

	// EventEntityDestroyed announces removal of an entity, emitted exactly once per entity
	// Trigger: Registry.Destroy
	// Consumer: PhysicsWorld, Renderer | Payload: *EntityDestroyedPayload
	EventEntityDestroyed

	// EventShieldActivated moves a pooled shield block into play
	// Trigger: ShieldPool activation
	// Consumer: PhysicsWorld, Renderer | Payload: *ShieldPayload
	EventShieldActivated

	// EventShieldDeactivated returns a shield block to reserve
	// Trigger: ShieldPool.Deactivate
	// Consumer: PhysicsWorld, Renderer | Payload: *ShieldPayload
	EventShieldDeactivated

	// === Presentation ===

	// EventVisualSpawn requests a transient effect at a world position
	// Trigger: Collision resolution, game over
	// Consumer: Renderer | Payload: *VisualPayload
	EventVisualSpawn

	// EventHudUpdate carries the current session counters
	// Trigger: Game.Step when counters changed
	// Consumer: Renderer | Payload: *HudPayload
	EventHudUpdate

	// EventMenuShow displays the menu overlay
	// Trigger: Startup, game over
	// Consumer: Renderer | Payload: *MenuPayload
	EventMenuShow

	// EventMenuHide removes the menu overlay
	// Trigger: New game
	// Consumer: Renderer | Payload: nil
	EventMenuHide

	// EventStateChange reports a session phase transition
	// Trigger: Session transitions
	// Consumer: Renderer, cmd | Payload: *StateChangePayload
	EventStateChange

	// === Audio ===

	// EventSoundRequest requests audio playback
	// Trigger: Fire, collision resolution
	// Consumer: SoundManager | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventMusicToggle switches background music
	// Trigger: Music toggle intent
	// Consumer: SoundManager, Renderer | Payload: *MusicTogglePayload
	EventMusicToggle

	eventTypeEnd
)
