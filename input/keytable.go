package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Enter, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEnter: IntentFire,
			tcell.KeyCtrlQ: IntentQuit,
			tcell.KeyCtrlC: IntentQuit,
			tcell.KeyCtrlG: IntentToggleMusic,
			tcell.KeyCtrlP: IntentPause,
		},
		Runes: map[rune]Intent{
			' ': IntentFire,
			'n': IntentNewGame,
			'p': IntentPause,
			'm': IntentToggleMusic,
			'q': IntentQuit,
		},
	}
}

// Lookup resolves one key press, runes are matched case-insensitively
func (kt *KeyTable) Lookup(key tcell.Key, r rune) Intent {
	if key != tcell.KeyRune {
		return kt.SpecialKeys[key]
	}
	if intent, ok := kt.Runes[r]; ok {
		return intent
	}
	if r >= 'A' && r <= 'Z' {
		return kt.Runes[r+('a'-'A')]
	}
	return IntentNone
}

// Translate converts a terminal event into an intent, unrelated events map to IntentNone
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return kt.Lookup(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}
