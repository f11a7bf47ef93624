package core

// Position represents a specific location in the text buffer
type Position struct {
	Row int // Zero-indexed row (line number)
	Col int // Zero-indexed column (character offset in the line, not a visual column)
}

// Compare orders positions lexicographically: row first, then column.
// It returns -1, 0 or 1.
func (p Position) Compare(other Position) int {
	switch {
	case p.Row < other.Row:
		return -1
	case p.Row > other.Row:
		return 1
	case p.Col < other.Col:
		return -1
	case p.Col > other.Col:
		return 1
	}
	return 0
}

// Before reports whether p sorts strictly before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// NormalizeSelection ensures start is before end, line by line, then column by column.
func NormalizeSelection(p1, p2 Position) (start, end Position) {
	if p1.Compare(p2) <= 0 {
		return p1, p2
	}
	return p2, p1
}

// Outcome is the editor-level result of processing one event. The core never
// performs I/O itself; the caller acts on Save and Exit.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeExit
	OutcomeSave
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExit:
		return "exit"
	case OutcomeSave:
		return "save"
	default:
		return "none"
	}
}

// Editor represents the main editor interface
type Editor interface {
	// Buffer access. The buffer is mutated only by mode handlers.
	GetBuffer() Buffer
	SetContent([]byte) // Replace the buffer content (resets cursor and viewport)
	SetLines([]string) // Replace the buffer content from already split lines

	// Mode handling
	GetMode() Mode
	IsNormalMode() bool
	IsInsertMode() bool
	IsVisualMode() bool
	IsPending() bool // Whether an operator is waiting for its target
	GetState() State

	// Event handling
	HandleEvent(ev Event) Outcome
	HandleKey(key KeyEvent) Outcome
	Resize(width, height int)

	// Cursor, viewport and selection accessors
	GetCursor() Position
	GetViewport() Viewport
	GetAnchor() (Position, bool)
	GetRegister() Register

	// Bindings
	GetBindings() Bindings
	SetBindings(Bindings)

	// Rendering
	Frame() Frame

	// Signals for UI updates
	GetUpdateSignalChan() <-chan Signal
	DispatchError(id ErrorId, err error)
	DispatchMessage(args ...string)
	DispatchSignal(signal Signal)

	MarkSaved(content string) // Record content as persisted
}

// Clipboard mirrors the yank register to the outside world. Put reads it
// when the register is empty.
type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}
