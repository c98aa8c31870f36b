package input

import (
	"fmt"
	"maps"
	"slices"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// specialKeyNames are the bindable non-rune keys by config name
var specialKeyNames = map[string]tcell.Key{
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"esc":    tcell.KeyEscape,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+g": tcell.KeyCtrlG,
	"ctrl+p": tcell.KeyCtrlP,
	"ctrl+q": tcell.KeyCtrlQ,
	"ctrl+s": tcell.KeyCtrlS,
}

// Rune aliases for keys that can't be bare config keys
var runeAliases = map[string]rune{
	"space":  ' ',
	"period": '.',
	"comma":  ',',
}

// ApplyBindings overlays key-to-action overrides onto the table
// An action of "none" unbinds the key
// Returns error on unknown action or key names, the table is unchanged on error
func (kt *KeyTable) ApplyBindings(bindings map[string]string) error {
	special := maps.Clone(kt.SpecialKeys)
	runes := maps.Clone(kt.Runes)

	// Sorted so the first reported error is stable
	for _, name := range slices.Sorted(maps.Keys(bindings)) {
		action := bindings[name]
		intent, ok := actionRegistry[action]
		if !ok {
			return fmt.Errorf("key %q: unknown action %q", name, action)
		}

		if key, ok := specialKeyNames[name]; ok {
			if intent == IntentNone {
				delete(special, key)
			} else {
				special[key] = intent
			}
			continue
		}

		r, ok := runeAliases[name]
		if !ok {
			if utf8.RuneCountInString(name) != 1 {
				return fmt.Errorf("key %q: unknown key name", name)
			}
			r, _ = utf8.DecodeRuneInString(name)
		}
		if intent == IntentNone {
			delete(runes, r)
		} else {
			runes[r] = intent
		}
	}

	kt.SpecialKeys = special
	kt.Runes = runes
	return nil
}
