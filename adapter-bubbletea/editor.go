package adapter_bubbletea

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	editor "github.com/ionut-t/vir/core"
)

type Theme struct {
	NormalModeStyle  lipgloss.Style
	InsertModeStyle  lipgloss.Style
	VisualModeStyle  lipgloss.Style
	StatusLineStyle  lipgloss.Style
	CommandLineStyle lipgloss.Style
	MessageStyle     lipgloss.Style
	SelectionStyle   lipgloss.Style
	ErrorStyle       lipgloss.Style
	TildeStyle       lipgloss.Style
	BlockCursorStyle lipgloss.Style
	BarCursorStyle   lipgloss.Style
}

var DefaultTheme = Theme{
	NormalModeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	InsertModeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")),
	VisualModeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("127")).Foreground(lipgloss.Color("255")),
	CommandLineStyle: lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	StatusLineStyle:  lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	MessageStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	SelectionStyle:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
	TildeStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	BlockCursorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	BarCursorStyle:   lipgloss.NewStyle().Underline(true).Bold(true),
}

// chromeHeight is the status line plus the command line.
const chromeHeight = 2

const defaultMessageDuration = 3 * time.Second

type Model struct {
	editor         editor.Editor
	width          int
	height         int
	fileName       string
	showStatusLine bool
	theme          Theme
	StatusLineFunc func() string
	err            error
	message        string
	isFocused      bool
	cursor         cursor.Model
	cursorShape    editor.CursorShape
	clearMsgCancel context.CancelFunc
}

type ErrorMsg struct {
	ID    editor.ErrorId
	Error error
}

// SaveMsg asks the owner of the file to persist Content. Call MarkSaved with
// Content once it is written.
type SaveMsg struct {
	Content string
}

type QuitMsg struct{}

type YankMsg struct {
	Content  string
	Linewise bool
}

type PasteMsg struct {
	Content string
}

type DeleteMsg struct {
	Content string
}

type ModeMsg struct {
	Mode editor.Mode
}

// BindingsMsg replaces the key tables between two events.
type BindingsMsg struct {
	Bindings editor.Bindings
}

type messageMsg string

type clearMsg struct{}

func (m *Model) dispatchClearMsg(duration time.Duration) tea.Cmd {
	if m.clearMsgCancel != nil {
		m.clearMsgCancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	m.clearMsgCancel = cancel

	return func() tea.Msg {
		defer cancel()
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			return clearMsg{}
		}
		return nil
	}
}

type clipboardImpl struct{}

func (c *clipboardImpl) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (c *clipboardImpl) Read() (string, error) {
	return clipboard.ReadAll()
}

// New returns a model whose yanks are mirrored to the system clipboard.
func New(width, height int) Model {
	return NewWithEditor(editor.New(&clipboardImpl{}), width, height)
}

// NewWithEditor wraps an existing editor, e.g. one built without a clipboard.
func NewWithEditor(e editor.Editor, width, height int) Model {
	c := cursor.New()
	c.Style = DefaultTheme.BlockCursorStyle

	m := Model{
		editor:         e,
		showStatusLine: true,
		theme:          DefaultTheme,
		cursor:         c,
		cursorShape:    editor.ShapeFor(e.GetMode()),
	}

	m.SetSize(width, height)

	return m
}

// SetSize sets the outer size of the editor, status and command line included.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	textHeight := height
	if m.showStatusLine {
		textHeight -= chromeHeight
	}

	m.editor.HandleEvent(editor.ResizeEvent{Width: max(width, 1), Height: max(textHeight, 1)})
}

// SetBytes sets the content of the editor.
func (m *Model) SetBytes(content []byte) {
	m.editor.SetContent(content)
}

// SetContent sets the content of the editor from a string.
func (m *Model) SetContent(content string) {
	m.SetBytes([]byte(content))
}

// SetFileName sets the name shown in the status line.
func (m *Model) SetFileName(name string) {
	m.fileName = name
}

// WithTheme allows setting a custom theme for the editor.
func (m *Model) WithTheme(theme Theme) {
	m.theme = theme
	m.cursor.Style = theme.BlockCursorStyle
}

// HideStatusLine controls whether to show the status line at the bottom of the viewport.
func (m *Model) HideStatusLine(hide bool) {
	m.showStatusLine = !hide
	m.SetSize(m.width, m.height)
}

// GetSavedContent returns the content last marked as saved.
func (m *Model) GetSavedContent() string {
	return m.editor.GetBuffer().GetSavedContent()
}

// GetCurrentContent returns the current content of the editor buffer.
func (m *Model) GetCurrentContent() string {
	return m.editor.GetBuffer().GetCurrentContent()
}

// HasChanges checks if the editor has unsaved changes
func (m *Model) HasChanges() bool {
	return m.editor.GetBuffer().IsModified()
}

// MarkSaved records content as written to disk.
func (m *Model) MarkSaved(content string) {
	m.editor.MarkSaved(content)
}

// GetEditor returns the underlying editor instance
func (m *Model) GetEditor() editor.Editor {
	return m.editor
}

// Focus sets the editor to focused state.
func (m *Model) Focus() tea.Cmd {
	m.isFocused = true
	return m.cursor.Focus()
}

// Blur sets the editor to unfocused state.
func (m *Model) Blur() {
	m.isFocused = false
	m.cursor.Blur()
}

// IsFocused returns whether the editor is currently focused.
func (m *Model) IsFocused() bool {
	return m.isFocused
}

// IsNormalMode returns whether the editor is in normal mode.
func (m *Model) IsNormalMode() bool {
	return m.editor.IsNormalMode()
}

// IsInsertMode returns whether the editor is in insert mode.
func (m *Model) IsInsertMode() bool {
	return m.editor.IsInsertMode()
}

// IsVisualMode returns whether the editor is in visual mode.
func (m *Model) IsVisualMode() bool {
	return m.editor.IsVisualMode()
}

// DispatchMessage shows msg in the command line for duration.
func (m *Model) DispatchMessage(msg string, duration time.Duration) tea.Cmd {
	m.message = msg
	m.err = nil
	return m.dispatchClearMsg(duration)
}

// DispatchError shows err in the command line for duration.
func (m *Model) DispatchError(err error, duration time.Duration) tea.Cmd {
	m.message = ""
	m.err = err
	return m.dispatchClearMsg(duration)
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.listenForEditorUpdate(), cursor.Blink)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if !m.IsFocused() {
			break
		}

		for _, key := range convertBubbleKeys(msg) {
			m.editor.HandleEvent(key)
		}

		// Keep the cursor solid while typing.
		if m.cursor.Mode() == cursor.CursorBlink {
			m.cursor.Blink = false
			cmds = append(cmds, m.cursor.BlinkCmd())
		}
		cmds = append(cmds, m.syncCursor())

	case BindingsMsg:
		m.editor.SetBindings(msg.Bindings)
		cmds = append(cmds, m.DispatchMessage(editor.BindingsMessage, defaultMessageDuration))

	case messageMsg:
		cmds = append(cmds, m.DispatchMessage(string(msg), defaultMessageDuration))

	case ErrorMsg:
		cmds = append(cmds, m.DispatchError(msg.Error, defaultMessageDuration))

	case ModeMsg:
		cmds = append(cmds, m.syncCursor())

	case clearMsg:
		m.message = ""
		m.err = nil
		m.clearMsgCancel = nil

	case signalMsg:
		// Re-arm the listener and hand the unwrapped message back to the
		// program so the owner of the model sees it too.
		cmds = append(cmds, m.listenForEditorUpdate())
		if msg.msg != nil {
			inner := msg.msg
			cmds = append(cmds, func() tea.Msg { return inner })
		}
	}

	var cursorCmd tea.Cmd
	m.cursor, cursorCmd = m.cursor.Update(msg)
	cmds = append(cmds, cursorCmd)

	return m, tea.Batch(cmds...)
}

// syncCursor switches the caret between blinking and steady to match the
// shape the current mode asks for.
func (m *Model) syncCursor() tea.Cmd {
	m.cursorShape = editor.ShapeFor(m.editor.GetMode())

	want := cursor.CursorBlink
	if m.cursorShape == editor.CursorSteadyBlock {
		want = cursor.CursorStatic
	}
	if m.cursor.Mode() == want {
		return nil
	}
	return m.cursor.SetMode(want)
}

// signalMsg carries one editor signal translated into a message. Exactly one
// listener is pending at a time; it is re-armed when its signalMsg arrives.
type signalMsg struct {
	msg tea.Msg
}

func (m *Model) listenForEditorUpdate() tea.Cmd {
	signals := m.editor.GetUpdateSignalChan()

	return func() tea.Msg {
		signal := <-signals

		switch signal := signal.(type) {
		case editor.MessageSignal:
			_, message := signal.Value()
			return signalMsg{messageMsg(message)}

		case editor.ErrorSignal:
			id, err := signal.Value()
			return signalMsg{ErrorMsg{ID: id, Error: err}}

		case editor.YankSignal:
			content, linewise := signal.Value()
			return signalMsg{YankMsg{Content: content, Linewise: linewise}}

		case editor.PasteSignal:
			return signalMsg{PasteMsg{Content: signal.Value()}}

		case editor.DeleteSignal:
			return signalMsg{DeleteMsg{Content: signal.Value()}}

		case editor.SaveSignal:
			return signalMsg{SaveMsg{Content: signal.Value()}}

		case editor.ModeSignal:
			return signalMsg{ModeMsg{Mode: signal.Value()}}

		case editor.QuitSignal:
			return signalMsg{QuitMsg{}}
		}

		return signalMsg{}
	}
}
