package event

// typeToName maps event types to their log names
var typeToName = map[EventType]string{
	EventEntitySpawned:     "EntitySpawned",
	EventEntityDestroyed:   "EntityDestroyed",
	EventShieldActivated:   "ShieldActivated",
	EventShieldDeactivated: "ShieldDeactivated",
	EventVisualSpawn:       "VisualSpawn",
	EventHudUpdate:         "HudUpdate",
	EventMenuShow:          "MenuShow",
	EventMenuHide:          "MenuHide",
	EventStateChange:       "StateChange",
	EventSoundRequest:      "SoundRequest",
	EventMusicToggle:       "MusicToggle",
}

var nameToType = func() map[string]EventType {
	m := make(map[string]EventType, len(typeToName))
	for t, name := range typeToName {
		m[name] = t
	}
	return m
}()

func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "Unknown"
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

// AllTypes returns every defined event type in declaration order
func AllTypes() []EventType {
	types := make([]EventType, 0, len(typeToName))
	for t := EventEntitySpawned; t < eventTypeEnd; t++ {
		types = append(types, t)
	}
	return types
}
