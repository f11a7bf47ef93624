package core

import "log"

// State represents the display-facing state of the editor
type State struct {
	Mode        Mode   // Current editing mode (Normal, Insert, Visual)
	StatusLine  string // Content of the status line (bottom line)
	CommandLine string // Keys of the operator being typed
	Quit        bool   // Flag indicating if the editor should exit
}

// InitialState creates a default state
func InitialState() State {
	return State{
		Mode:       NormalMode,
		StatusLine: NormalMode.Title(),
	}
}

// Concrete implementation of Editor
type editor struct {
	buffer      Buffer
	cursor      Cursor
	viewport    Viewport
	anchor      *Position // Set only while in Visual mode
	currentMode EditorMode
	modes       map[Mode]EditorMode
	state       State

	bindings Bindings
	resolver *Resolver

	pending       *pendingOp   // Non-nil while an operator waits for its target
	queuedResize  *ResizeEvent // Resize received during a pending wait
	followPending bool         // Scroll-follow owed to the next frame

	register     Register
	clipboard    Clipboard // Clipboard interface for copy/paste
	updateSignal chan Signal
}

// New creates a new editor instance with the default bindings and an 80x24
// viewport. clipboard may be nil.
func New(clipboard Clipboard) Editor {
	bindings := DefaultBindings()

	e := &editor{
		buffer:       NewBuffer(),
		viewport:     Viewport{Width: 80, Height: 24},
		modes:        make(map[Mode]EditorMode),
		state:        InitialState(),
		bindings:     bindings,
		resolver:     NewResolver(bindings),
		clipboard:    clipboard,
		updateSignal: make(chan Signal, 100), // Buffered channel for updates
	}

	e.modes[NormalMode] = NewNormalMode()
	e.modes[InsertMode] = NewInsertMode()
	e.modes[VisualMode] = NewVisualMode()

	e.currentMode = e.modes[NormalMode]
	e.currentMode.Enter(e)

	return e
}

func (e *editor) setMode(modeName Mode) {
	newMode, ok := e.modes[modeName]
	if !ok {
		fault("setMode", "unknown mode %q", modeName)
	}

	if e.currentMode != nil {
		e.currentMode.Exit(e)
	}

	e.currentMode = newMode
	e.state.Mode = modeName
	e.currentMode.Enter(e)

	e.cursor.Clamp(e.buffer, modeName)
	e.DispatchSignal(ModeSignal{mode: modeName})
}

func (e *editor) GetBuffer() Buffer {
	return e.buffer
}

func (e *editor) SetContent(content []byte) {
	e.buffer.SetContent(content)
	e.reset()
}

func (e *editor) SetLines(lines []string) {
	e.buffer.SetLines(lines)
	e.reset()
}

// reset drops any state tied to the previous content. Fresh content counts
// as saved.
func (e *editor) reset() {
	e.buffer.SaveContent()
	e.pending = nil
	e.state.CommandLine = ""
	if e.state.Mode != NormalMode {
		e.setMode(NormalMode)
	}
	e.cursor = Cursor{}
	e.viewport.XOffset, e.viewport.YOffset = 0, 0
}

func (e *editor) GetMode() Mode {
	return e.state.Mode
}

func (e *editor) IsNormalMode() bool {
	return e.state.Mode == NormalMode
}

func (e *editor) IsInsertMode() bool {
	return e.state.Mode == InsertMode
}

func (e *editor) IsVisualMode() bool {
	return e.state.Mode == VisualMode
}

func (e *editor) IsPending() bool {
	return e.pending != nil
}

func (e *editor) GetUpdateSignalChan() <-chan Signal {
	return e.updateSignal
}

// HandleEvent processes one input event to completion.
func (e *editor) HandleEvent(ev Event) Outcome {
	switch ev := ev.(type) {
	case KeyEvent:
		return e.HandleKey(ev)
	case ResizeEvent:
		if e.pending != nil {
			// Applied once the operator resolves.
			e.queuedResize = &ev
			return OutcomeNone
		}
		e.Resize(ev.Width, ev.Height)
	default:
		fault("HandleEvent", "unexpected event %T", ev)
	}
	return OutcomeNone
}

// HandleKey runs the global keys first, then the pending operator if one is
// waiting, then the action table of the current mode.
func (e *editor) HandleKey(key KeyEvent) Outcome {
	if e.currentMode == nil {
		fault("HandleKey", "no active mode")
	}

	name := key.Name()
	if name == e.bindings.Interrupt {
		e.cancelPending()
		e.Quit()
		return OutcomeExit
	}
	if name == e.bindings.Save {
		e.DispatchSignal(SaveSignal{content: e.buffer.GetCurrentContent()})
		return OutcomeSave
	}

	outcome := OutcomeNone
	if e.pending != nil {
		e.resolvePending(key)
	} else {
		outcome = e.currentMode.HandleKey(e, key)
	}

	e.cursor.Clamp(e.buffer, e.state.Mode)
	e.viewport.Follow(e.cursor.Position)

	if e.pending == nil && e.queuedResize != nil {
		r := e.queuedResize
		e.queuedResize = nil
		e.Resize(r.Width, r.Height)
	}

	return outcome
}

// Resize updates the viewport size. The scroll-follow runs on the next Frame.
func (e *editor) Resize(width, height int) {
	e.viewport.Width = max(width, 1)
	e.viewport.Height = max(height, 1)
	e.followPending = true
}

func (e *editor) GetCursor() Position {
	return e.cursor.Position
}

func (e *editor) GetViewport() Viewport {
	return e.viewport
}

func (e *editor) GetAnchor() (Position, bool) {
	if e.anchor == nil {
		return Position{}, false
	}
	return *e.anchor, true
}

func (e *editor) GetRegister() Register {
	return e.register
}

func (e *editor) GetBindings() Bindings {
	return e.bindings.Clone()
}

// SetBindings swaps the key tables. A pending operator keeps waiting and is
// resolved against the new text object table.
func (e *editor) SetBindings(b Bindings) {
	if b.Interrupt == "" {
		b.Interrupt = DefaultInterrupt
	}
	if b.Save == "" {
		b.Save = DefaultSave
	}
	e.bindings = b
	e.resolver = NewResolver(b)
}

func (e *editor) GetState() State {
	e.state.StatusLine = e.statusLine()
	return e.state
}

// statusLine is the mode name, flagged with [+] while there are unsaved
// changes.
func (e *editor) statusLine() string {
	if e.buffer.IsModified() {
		return e.state.Mode.Title() + " [+]"
	}
	return e.state.Mode.Title()
}

// MarkSaved records content as persisted. Pass the content carried by the
// SaveSignal, not the live buffer: edits made after the save stay modified.
func (e *editor) MarkSaved(content string) {
	e.buffer.SetSavedContent(content)
	e.DispatchMessage(ChangesSavedMessage)
}

func (e *editor) Quit() {
	e.state.Quit = true
	select {
	case e.updateSignal <- QuitSignal{}:
	default:
		log.Println("Editor: Failed to send QuitSignal - channel full or not ready")
	}
}
