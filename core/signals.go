package core

type Signal any

type YankSignal struct {
	content  string
	linewise bool
}

func (y YankSignal) Value() (content string, linewise bool) {
	return y.content, y.linewise
}

type PasteSignal struct {
	content string
}

func (p PasteSignal) Value() string {
	return p.content
}

type DeleteSignal struct {
	content string
}

func (d DeleteSignal) Value() string {
	return d.content
}

type MessageSignal struct {
	id    string
	value string
}

func (m MessageSignal) Value() (id, message string) {
	id = m.id
	message = m.value

	return id, message
}

type SaveSignal struct {
	content string
}

func (s SaveSignal) Value() string {
	return s.content
}

type QuitSignal struct{}

type ErrorSignal struct {
	id  ErrorId
	err error
}

func (e ErrorSignal) Value() (id ErrorId, err error) {
	id = e.id
	err = e.err

	return id, err
}

// ModeSignal is sent whenever the active mode changes.
type ModeSignal struct {
	mode Mode
}

func (m ModeSignal) Value() Mode {
	return m.mode
}

func (e *editor) DispatchSignal(signal Signal) {
	select {
	case e.updateSignal <- signal:
	default: // Ignore if the channel is full
	}
}
