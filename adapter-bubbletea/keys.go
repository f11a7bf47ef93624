package adapter_bubbletea

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	editor "github.com/ionut-t/vir/core"
)

var keyTypes = map[tea.KeyType]editor.KeyCode{
	tea.KeyEnter:     editor.KeyEnter,
	tea.KeyTab:       editor.KeyTab,
	tea.KeyShiftTab:  editor.KeyTab,
	tea.KeyBackspace: editor.KeyBackspace,
	tea.KeyEsc:       editor.KeyEscape,
	tea.KeyUp:        editor.KeyUp,
	tea.KeyDown:      editor.KeyDown,
	tea.KeyLeft:      editor.KeyLeft,
	tea.KeyRight:     editor.KeyRight,
	tea.KeyHome:      editor.KeyHome,
	tea.KeyEnd:       editor.KeyEnd,
	tea.KeyPgUp:      editor.KeyPageUp,
	tea.KeyPgDown:    editor.KeyPageDown,
	tea.KeyDelete:    editor.KeyDelete,
	tea.KeyInsert:    editor.KeyInsert,
}

// convertBubbleKeys turns one Bubble Tea key message into editor key events.
// A paste arrives as a single message carrying many runes and becomes one
// event per rune. Line breaks (CR, LF or CRLF) become a single enter.
func convertBubbleKeys(msg tea.KeyMsg) []editor.KeyEvent {
	if msg.Type != tea.KeyRunes || len(msg.Runes) <= 1 {
		return []editor.KeyEvent{convertBubbleKey(msg)}
	}

	keys := make([]editor.KeyEvent, 0, len(msg.Runes))
	for i, r := range msg.Runes {
		switch r {
		case '\r':
			keys = append(keys, editor.Special(editor.KeyEnter))
		case '\n':
			if i > 0 && msg.Runes[i-1] == '\r' {
				continue
			}
			keys = append(keys, editor.Special(editor.KeyEnter))
		default:
			keys = append(keys, editor.Char(r))
		}
	}
	return keys
}

// Convert Bubbletea key to editor.Key
func convertBubbleKey(msg tea.KeyMsg) editor.KeyEvent {
	key := editor.KeyEvent{}

	if msg.Alt {
		key.Modifiers |= editor.ModAlt
	}

	if code, ok := keyTypes[msg.Type]; ok {
		key.Key = code
		if msg.Type == tea.KeyShiftTab {
			key.Modifiers |= editor.ModShift
		}
		return key
	}

	switch msg.Type {
	case tea.KeySpace:
		key.Key = editor.KeySpace
		key.Rune = ' '
		return key

	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			key.Rune = msg.Runes[0]
		}
		return key
	}

	// Remaining types are control combinations, named "ctrl+<key>".
	name := strings.TrimPrefix(msg.String(), "alt+")
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok {
		key.Modifiers |= editor.ModCtrl
		if r, size := utf8.DecodeRuneInString(rest); size == len(rest) && r != utf8.RuneError {
			key.Rune = r
		}
	}

	return key
}
