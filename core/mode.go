package core

type Mode string

const (
	NormalMode Mode = "normal"
	InsertMode Mode = "insert"
	VisualMode Mode = "visual"
)

// Title is the display name of the mode, as shown in the status line.
func (m Mode) Title() string {
	switch m {
	case InsertMode:
		return "Insert"
	case VisualMode:
		return "Visual"
	default:
		return "Normal"
	}
}

// EditorMode represents a modal editing state. HandleKey receives every key
// that is not a global key and not consumed by a pending operator.
type EditorMode interface {
	Name() Mode
	HandleKey(e *editor, key KeyEvent) Outcome
	Enter(e *editor) // Called when entering the mode
	Exit(e *editor)  // Called when exiting the mode
}
