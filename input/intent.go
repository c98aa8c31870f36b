package input

// Intent is a semantic player action decoupled from the key that produced it
type Intent uint8

const (
	IntentNone Intent = iota

	IntentFire        // Space, Enter
	IntentNewGame     // n, also Fire while the menu is shown
	IntentPause       // p
	IntentToggleMusic // m, Ctrl+G
	IntentQuit        // q, Ctrl+Q, Ctrl+C
	IntentResize      // Terminal resize event
)

var intentNames = map[Intent]string{
	IntentNone:        "none",
	IntentFire:        "fire",
	IntentNewGame:     "new_game",
	IntentPause:       "pause",
	IntentToggleMusic: "toggle_music",
	IntentQuit:        "quit",
	IntentResize:      "resize",
}

// actionRegistry maps config action names to intents, resize is not bindable
var actionRegistry = func() map[string]Intent {
	m := make(map[string]Intent, len(intentNames))
	for intent, name := range intentNames {
		if intent != IntentResize {
			m[name] = intent
		}
	}
	return m
}()

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}
