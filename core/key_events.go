package core

import (
	"fmt"
	"strings"
	"unicode"
)

// --- KeyCode, KeyModifiers, Key ---

// KeyCode represents non-character keys
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Editing keys
	KeyDelete
	KeyInsert
)

// KeyModifiers represents modifier keys held during a keystroke
type KeyModifiers uint8

const (
	ModNone KeyModifiers = 0
	ModCtrl KeyModifiers = 1 << iota
	ModAlt
	ModShift
)

// Event is one discrete input: a key press or a terminal resize.
type Event interface {
	isEvent()
}

// KeyEvent represents a keyboard input event
type KeyEvent struct {
	Rune      rune
	Key       KeyCode
	Modifiers KeyModifiers
}

// ResizeEvent reports new terminal dimensions.
type ResizeEvent struct {
	Width  int
	Height int
}

func (KeyEvent) isEvent()    {}
func (ResizeEvent) isEvent() {}

var keyCodeNames = map[KeyCode]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyEscape:    "esc",
	KeySpace:     "space",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
}

// Char returns a key event for a plain character.
func Char(r rune) KeyEvent {
	if r == ' ' {
		return KeyEvent{Rune: r, Key: KeySpace}
	}
	return KeyEvent{Rune: r}
}

// Ctrl returns a key event for r pressed with the control modifier.
func Ctrl(r rune) KeyEvent {
	return KeyEvent{Rune: r, Modifiers: ModCtrl}
}

// Special returns a key event for a non-character key.
func Special(code KeyCode) KeyEvent {
	return KeyEvent{Key: code}
}

// IsChar reports whether the event types a literal character: it carries a
// rune and no control or alt modifier.
func (k KeyEvent) IsChar() bool {
	return k.Rune != 0 && k.Modifiers&(ModCtrl|ModAlt) == 0
}

// Name returns the canonical key name used by the binding tables, e.g.
// "left", "enter", "x", "ctrl+s", "shift+tab". On character keys shift is
// folded into the rune itself.
func (k KeyEvent) Name() string {
	var b strings.Builder
	if k.Modifiers&ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if k.Modifiers&ModAlt != 0 {
		b.WriteString("alt+")
	}
	if k.Modifiers&ModShift != 0 && k.Rune == 0 {
		b.WriteString("shift+")
	}

	switch {
	case k.Rune == ' ' || k.Key == KeySpace:
		b.WriteString("space")
	case k.Rune != 0:
		b.WriteRune(k.Rune)
	default:
		name, ok := keyCodeNames[k.Key]
		if !ok {
			name = "unknown"
		}
		b.WriteString(name)
	}

	return b.String()
}

// ParseKeyName is the inverse of Name. It accepts the canonical names plus a
// few common aliases ("escape", "return", "del").
func ParseKeyName(name string) (KeyEvent, error) {
	var key KeyEvent
	rest := name
	for len(rest) > 1 {
		lower := strings.ToLower(rest)
		if strings.HasPrefix(lower, "ctrl+") && len(rest) > len("ctrl+") {
			key.Modifiers |= ModCtrl
			rest = rest[len("ctrl+"):]
		} else if strings.HasPrefix(lower, "alt+") && len(rest) > len("alt+") {
			key.Modifiers |= ModAlt
			rest = rest[len("alt+"):]
		} else if strings.HasPrefix(lower, "shift+") && len(rest) > len("shift+") {
			key.Modifiers |= ModShift
			rest = rest[len("shift+"):]
		} else {
			break
		}
	}

	if runes := []rune(rest); len(runes) == 1 {
		key.Rune = runes[0]
		if key.Modifiers&ModShift != 0 {
			key.Modifiers &^= ModShift
			key.Rune = unicode.ToUpper(key.Rune)
		}
		if key.Rune == ' ' {
			key.Key = KeySpace
		}
		return key, nil
	}

	switch strings.ToLower(rest) {
	case "escape":
		rest = "esc"
	case "return":
		rest = "enter"
	case "del":
		rest = "delete"
	}

	for code, n := range keyCodeNames {
		if strings.EqualFold(n, rest) {
			key.Key = code
			if code == KeySpace {
				key.Rune = ' '
				key.Modifiers &^= ModShift
			}
			return key, nil
		}
	}

	return KeyEvent{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// String returns a human readable representation of a key.
func (k KeyEvent) String() string {
	var parts []string

	if k.Modifiers&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if k.Modifiers&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if k.Modifiers&ModShift != 0 {
		parts = append(parts, "Shift")
	}

	if k.Rune != 0 && k.Rune != ' ' {
		parts = append(parts, string(k.Rune))
	} else {
		name, ok := keyCodeNames[k.Key]
		if !ok {
			name = fmt.Sprintf("SpecialKey(%d)", k.Key)
		}
		if k.Rune == ' ' {
			name = "space"
		}
		parts = append(parts, strings.ToUpper(name[:1])+name[1:])
	}

	return strings.Join(parts, "+")
}
