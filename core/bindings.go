package core

import (
	"maps"
	"unicode"
)

const (
	DefaultIndentWidth = 4
	DefaultInterrupt   = "ctrl+c"
	DefaultSave        = "ctrl+s"
)

// Bindings is the resolved key-binding table: per mode, a canonical key name
// to action map, the text object table used while an operator is pending, the
// global keys and the numeric options.
type Bindings struct {
	Insert      map[string]InsertAction
	Normal      map[string]NormalAction
	Visual      map[string]VisualAction
	TextObjects map[string]ObjectKind

	Interrupt string // Exits from any mode, checked before everything else
	Save      string // Requests a save from any mode

	IndentWidth int    // Spaces inserted by InsertIndent
	WordBreak   string // Characters that end a word object
}

// DefaultBindings returns the built-in table used when no configuration is
// available or an entry is missing.
func DefaultBindings() Bindings {
	return Bindings{
		Insert: map[string]InsertAction{
			"esc":       InsertNormalMode,
			"delete":    InsertDelForw,
			"backspace": InsertDelBack,
			"enter":     InsertNewLine,
			"tab":       InsertIndent,
			"up":        InsertUp,
			"down":      InsertDown,
			"left":      InsertLeft,
			"right":     InsertRight,
		},
		Normal: map[string]NormalAction{
			"r":      NormalReplaceChar,
			"d":      NormalDelete,
			"x":      NormalDeleteChar,
			"delete": NormalDeleteChar,
			"c":      NormalChange,
			"y":      NormalYank,
			"p":      NormalPut,
			"0":      NormalLineStart,
			"home":   NormalLineStart,
			"$":      NormalLineEnd,
			"end":    NormalLineEnd,
			"k":      NormalUp,
			"up":     NormalUp,
			"j":      NormalDown,
			"down":   NormalDown,
			"h":      NormalLeft,
			"left":   NormalLeft,
			"l":      NormalRight,
			"right":  NormalRight,
			"i":      NormalInsertMode,
			"v":      NormalVisualMode,
		},
		Visual: map[string]VisualAction{
			"r":     VisualReplaceChar,
			"d":     VisualDelete,
			"x":     VisualDeleteChar,
			"c":     VisualChange,
			"y":     VisualYank,
			"0":     VisualLineStart,
			"home":  VisualLineStart,
			"$":     VisualLineEnd,
			"end":   VisualLineEnd,
			"k":     VisualUp,
			"up":    VisualUp,
			"j":     VisualDown,
			"down":  VisualDown,
			"h":     VisualLeft,
			"left":  VisualLeft,
			"l":     VisualRight,
			"right": VisualRight,
			"esc":   VisualNormalMode,
			"v":     VisualNormalMode,
		},
		TextObjects: map[string]ObjectKind{
			"w":   ObjectWord,
			"$":   ObjectLineEnd,
			"l":   ObjectChar,
			"_":   ObjectLine,
			"esc": ObjectCancel,
		},
		Interrupt:   DefaultInterrupt,
		Save:        DefaultSave,
		IndentWidth: DefaultIndentWidth,
		WordBreak:   DefaultWordBreak,
	}
}

// Clone returns a deep copy so a table can be modified without touching the
// one an editor is using.
func (b Bindings) Clone() Bindings {
	c := b
	c.Insert = maps.Clone(b.Insert)
	c.Normal = maps.Clone(b.Normal)
	c.Visual = maps.Clone(b.Visual)
	c.TextObjects = maps.Clone(b.TextObjects)
	return c
}

// Rebind makes key the only key bound to action in m.
func Rebind[A comparable](m map[string]A, action A, key string) {
	for k, a := range m {
		if a == action {
			delete(m, k)
		}
	}
	m[key] = action
}

// insertAction classifies key in Insert mode. Printable characters and tab
// are written; other control characters are never inserted as text.
func (b Bindings) insertAction(key KeyEvent) InsertAction {
	if key.IsChar() && key.Rune != ' ' && printable(key.Rune) {
		return InsertWrite
	}
	if a, ok := b.Insert[key.Name()]; ok {
		return a
	}
	if key.Rune == ' ' && key.Modifiers == ModNone {
		return InsertWrite
	}
	return InsertNone
}

func (b Bindings) normalAction(key KeyEvent) NormalAction {
	return b.Normal[key.Name()]
}

func (b Bindings) visualAction(key KeyEvent) VisualAction {
	return b.Visual[key.Name()]
}

func printable(r rune) bool {
	return r == '\t' || !unicode.IsControl(r)
}
