package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type fakeClipboard struct {
	writes []string
	err    error
}

func (c *fakeClipboard) Write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, text)
	return nil
}

func (c *fakeClipboard) Read() (string, error) {
	if len(c.writes) == 0 {
		return "", c.err
	}
	return c.writes[len(c.writes)-1], c.err
}

func newTestEditor(lines []string, cursor Position) *editor {
	e := New(nil).(*editor)
	e.SetLines(lines)
	e.cursor.Position = cursor
	drainSignals(e)
	return e
}

func press(e *editor, keys ...KeyEvent) Outcome {
	outcome := OutcomeNone
	for _, k := range keys {
		outcome = e.HandleEvent(k)
	}
	return outcome
}

// typeKeys presses one Char event per rune of s.
func typeKeys(e *editor, s string) {
	for _, r := range s {
		e.HandleEvent(Char(r))
	}
}

func drainSignals(e *editor) []Signal {
	var signals []Signal
	for {
		select {
		case s := <-e.updateSignal:
			signals = append(signals, s)
		default:
			return signals
		}
	}
}

func TestEditor_DeleteChar(t *testing.T) {
	e := newTestEditor([]string{"abc", "bcdef"}, Position{Row: 0, Col: 1})

	typeKeys(e, "x")

	require.Equal(t, []string{"ac", "bcdef"}, e.buffer.GetLines())
	require.Equal(t, Position{Row: 0, Col: 1}, e.GetCursor())
	require.Equal(t, Register{Content: "b"}, e.GetRegister())
}

func TestEditor_DeleteCharAtLineEndClamps(t *testing.T) {
	e := newTestEditor([]string{"abc"}, Position{Row: 0, Col: 2})

	typeKeys(e, "x")

	require.Equal(t, []string{"ab"}, e.buffer.GetLines())
	require.Equal(t, Position{Row: 0, Col: 1}, e.GetCursor())
}

func TestEditor_InsertNewlineAtAppendPosition(t *testing.T) {
	e := newTestEditor([]string{"abc"}, Position{})

	typeKeys(e, "i")
	require.True(t, e.IsInsertMode())
	e.cursor.Position = Position{Row: 0, Col: 3}

	press(e, Special(KeyEnter))

	require.Equal(t, []string{"abc", ""}, e.buffer.GetLines())
	require.Equal(t, Position{Row: 1, Col: 0}, e.GetCursor())
}

func TestEditor_InsertTyping(t *testing.T) {
	e := newTestEditor([]string{"ac"}, Position{Row: 0, Col: 1})

	typeKeys(e, "ib ")
	press(e, Special(KeyEscape))

	require.Equal(t, []string{"ab c"}, e.buffer.GetLines())
	require.True(t, e.IsNormalMode())
	require.Equal(t, Position{Row: 0, Col: 3}, e.GetCursor())
}

func TestEditor_InsertEscapeClampsCursor(t *testing.T) {
	e := newTestEditor([]string{"abc"}, Position{})

	typeKeys(e, "i")
	e.cursor.Position = Position{Row: 0, Col: 3}
	press(e, Special(KeyEscape))

	require.Equal(t, Position{Row: 0, Col: 2}, e.GetCursor())
}

func TestEditor_Backspace(t *testing.T) {
	e := newTestEditor([]string{"ab", "cd"}, Position{})
	typeKeys(e, "i")

	e.cursor.Position = Position{Row: 1, Col: 0}
	press(e, Special(KeyBackspace))
	require.Equal(t, []string{"abcd"}, e.buffer.GetLines())
	require.Equal(t, Position{Row: 0, Col: 2}, e.GetCursor())

	press(e, Special(KeyBackspace))
	require.Equal(t, []string{"acd"}, e.buffer.GetLines())
	require.Equal(t, Position{Row: 0, Col: 1}, e.GetCursor())

	e.cursor.Position = Position{}
	press(e, Special(KeyBackspace))
	require.Equal(t, []string{"acd"}, e.buffer.GetLines())
	require.Equal(t, Position{}, e.GetCursor())
}

func TestEditor_DeleteForwardJoinsAtLineEnd(t *testing.T) {
	e := newTestEditor([]string{"ab", "cd"}, Position{})
	typeKeys(e, "i")
	e.cursor.Position = Position{Row: 0, Col: 2}

	press(e, Special(KeyDelete))

	require.Equal(t, []string{"abcd"}, e.buffer.GetLines())
	require.Equal(t, Position{Row: 0, Col: 2}, e.GetCursor())
}

func TestEditor_DeleteForwardAtBufferEnd(t *testing.T) {
	e := newTestEditor([]string{"ab"}, Position{})
	typeKeys(e, "i")
	drainSignals(e)
	e.cursor.Position = Position{Row: 0, Col: 2}

	press(e, Special(KeyDelete))

	require.Equal(t, []string{"ab"}, e.buffer.GetLines())
	signals := drainSignals(e)
	require.Len(t, signals, 1)
	id, err := signals[0].(ErrorSignal).Value()
	require.Equal(t, ErrNoLineToJoinId, id)
	require.ErrorIs(t, err, ErrNoLineToJoin)
}

func TestEditor_InsertIgnoresControlRunes(t *testing.T) {
	e := newTestEditor([]string{"ab"}, Position{Row: 0, Col: 1})
	typeKeys(e, "i")

	require.NotPanics(t, func() {
		press(e, Char('\n'), Char('\r'), Char('\x1b'))
	})
	press(e, Char('\t'))

	require.Equal(t, []string{"a\tb"}, e.buffer.GetLines())
	require.Equal(t, 1, e.buffer.LineCount())
	require.True(t, e.IsInsertMode())
}

func TestEditor_Indent(t *testing.T) {
	e := newTestEditor([]string{"x"}, Position{})
	typeKeys(e, "i")

	press(e, Special(KeyTab))

	require.Equal(t, []string{"    x"}, e.buffer.GetLines())
	require.Equal(t, Position{Row: 0, Col: 4}, e.GetCursor())
}

func TestEditor_DeleteWord(t *testing.T) {
	e := newTestEditor([]string{"hello world"}, Position{})

	typeKeys(e, "dw")

	require.Equal(t, []string{" world"}, e.buffer.GetLines())
	require.Equal(t, Position{}, e.GetCursor())
	require.Equal(t, Register{Content: "hello"}, e.GetRegister())
	require.False(t, e.IsPending())
	require.True(t, e.IsNormalMode())
}

func TestEditor_DeleteToLineEnd(t *testing.T) {
	e := newTestEditor([]string{"hello world"}, Position{Row: 0, Col: 5})

	typeKeys(e, "d$")

	require.Equal(t, []string{"hello"}, e.buffer.GetLines())
	require.Equal(t, Position{Row: 0, Col: 4}, e.GetCursor())
}

func TestEditor_DeleteLine(t *testing.T) {
	tests := []struct {
		name       string
		lines      []string
		cursor     Position
		want       []string
		wantCursor Position
		wantReg    string
	}{
		{"middle line", []string{"a", "b", "c"}, Position{1, 0}, []string{"a", "c"}, Position{1, 0}, "b"},
		{"first line", []string{"a", "b", "c"}, Position{0, 0}, []string{"b", "c"}, Position{0, 0}, "a"},
		{"last line", []string{"a", "b", "c"}, Position{2, 0}, []string{"a", "b"}, Position{1, 0}, "c"},
		{"only line", []string{"only"}, Position{0, 2}, []string{""}, Position{0, 0}, "only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(tt.lines, tt.cursor)

			typeKeys(e, "dd")

			require.Equal(t, tt.want, e.buffer.GetLines())
			require.Equal(t, tt.wantCursor, e.GetCursor())
			require.Equal(t, Register{Content: tt.wantReg, Linewise: true}, e.GetRegister())
		})
	}
}

func TestEditor_ChangeWord(t *testing.T) {
	e := newTestEditor([]string{"hello world"}, Position{})

	typeKeys(e, "cw")
	require.True(t, e.IsInsertMode())
	require.Equal(t, Position{}, e.GetCursor())

	typeKeys(e, "bye")
	require.Equal(t, []string{"bye world"}, e.buffer.GetLines())
}

func TestEditor_ChangeLineKeepsLine(t *testing.T) {
	e := newTestEditor([]string{"abc", "def"}, Position{Row: 0, Col: 1})

	typeKeys(e, "cc")

	require.Equal(t, []string{"", "def"}, e.buffer.GetLines())
	require.True(t, e.IsInsertMode())
	require.Equal(t, Position{}, e.GetCursor())
	require.Equal(t, Register{Content: "abc", Linewise: true}, e.GetRegister())
}

func TestEditor_YankLineAndPut(t *testing.T) {
	e := newTestEditor([]string{"one", "two"}, Position{})

	typeKeys(e, "yy")
	require.Equal(t, []string{"one", "two"}, e.buffer.GetLines())
	require.Equal(t, Register{Content: "one", Linewise: true}, e.GetRegister())

	typeKeys(e, "p")
	require.Equal(t, []string{"one", "one", "two"}, e.buffer.GetLines())
	require.Equal(t, Position{Row: 1, Col: 0}, e.GetCursor())
}

func TestEditor_YankWordAndPut(t *testing.T) {
	e := newTestEditor([]string{"ab cd"}, Position{})

	typeKeys(e, "yw$p")

	require.Equal(t, []string{"ab cdab"}, e.buffer.GetLines())
	require.Equal(t, Position{Row: 0, Col: 6}, e.GetCursor())
}

func TestEditor_PutEmptyRegister(t *testing.T) {
	e := newTestEditor([]string{"abc"}, Position{})

	typeKeys(e, "p")

	require.Equal(t, []string{"abc"}, e.buffer.GetLines())
	signals := drainSignals(e)
	require.Len(t, signals, 1)
	id, err := signals[0].(ErrorSignal).Value()
	require.Equal(t, ErrEmptyRegisterId, id)
	require.ErrorIs(t, err, ErrEmptyRegister)
}

func TestEditor_PutFromClipboard(t *testing.T) {
	tests := []struct {
		name   string
		clip   string
		want   []string
		cursor Position
	}{
		{"charwise", "xy", []string{"axybc"}, Position{Row: 0, Col: 2}},
		{"linewise", "one\r\ntwo\r\n", []string{"abc", "one", "two"}, Position{Row: 1, Col: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(&fakeClipboard{writes: []string{tt.clip}}).(*editor)
			e.SetLines([]string{"abc"})

			typeKeys(e, "p")

			require.Equal(t, tt.want, e.buffer.GetLines())
			require.Equal(t, tt.cursor, e.GetCursor())
			require.Equal(t, Register{}, e.GetRegister(), "the register is left alone")
		})
	}
}

func TestEditor_PutClipboardReadFailure(t *testing.T) {
	e := New(&fakeClipboard{err: errors.New("no display")}).(*editor)
	e.SetLines([]string{"abc"})
	drainSignals(e)

	typeKeys(e, "p")

	require.Equal(t, []string{"abc"}, e.buffer.GetLines())
	signals := drainSignals(e)
	require.Len(t, signals, 1)
	id, err := signals[0].(ErrorSignal).Value()
	require.Equal(t, ErrFailedToPasteId, id)
	require.EqualError(t, err, "no display")
}

func TestEditor_ReplaceChar(t *testing.T) {
	e := newTestEditor([]string{"abc"}, Position{Row: 0, Col: 1})

	typeKeys(e, "r")
	require.True(t, e.IsPending())
	require.Equal(t, "r", e.GetState().CommandLine)

	typeKeys(e, "z")
	require.Equal(t, []string{"azc"}, e.buffer.GetLines())
	require.Equal(t, Position{Row: 0, Col: 1}, e.GetCursor())
	require.False(t, e.IsPending())
	require.Empty(t, e.GetState().CommandLine)
}

func TestEditor_ReplaceCharCancelled(t *testing.T) {
	e := newTestEditor([]string{"abc"}, Position{Row: 0, Col: 1})

	typeKeys(e, "r")
	press(e, Special(KeyEscape))

	require.False(t, e.IsPending())
	require.Equal(t, []string{"abc"}, e.buffer.GetLines())
	require.False(t, e.buffer.IsModified())
}

func TestEditor_ReplaceCharIgnoresNonCharacterKeys(t *testing.T) {
	e := newTestEditor([]string{"abc"}, Position{Row: 0, Col: 1})

	typeKeys(e, "r")
	press(e, Special(KeyLeft), Char('\n'))
	require.True(t, e.IsPending())
	require.Equal(t, Position{Row: 0, Col: 1}, e.GetCursor())

	typeKeys(e, "q")
	require.Equal(t, []string{"aqc"}, e.buffer.GetLines())
}

func TestEditor_OperatorCancelledByUnboundKey(t *testing.T) {
	for _, key := range []KeyEvent{Char('q'), Special(KeyEscape), Special(KeyEnter)} {
		t.Run(key.Name(), func(t *testing.T) {
			e := newTestEditor([]string{"hello"}, Position{Row: 0, Col: 2})

			typeKeys(e, "d")
			press(e, key)

			require.False(t, e.IsPending())
			require.Equal(t, []string{"hello"}, e.buffer.GetLines())
			require.Equal(t, Position{Row: 0, Col: 2}, e.GetCursor())
		})
	}
}

func TestEditor_OperatorOnEmptyLine(t *testing.T) {
	e := newTestEditor([]string{""}, Position{})

	typeKeys(e, "dl")

	require.Equal(t, []string{""}, e.buffer.GetLines())
	require.False(t, e.IsPending())
	require.Empty(t, drainSignals(e))
}

func TestEditor_VisualDelete(t *testing.T) {
	e := newTestEditor([]string{"abcdef"}, Position{Row: 0, Col: 1})

	typeKeys(e, "v")
	anchor, ok := e.GetAnchor()
	require.True(t, ok)
	require.Equal(t, Position{Row: 0, Col: 1}, anchor)

	typeKeys(e, "lld")

	require.Equal(t, []string{"aef"}, e.buffer.GetLines())
	require.True(t, e.IsNormalMode())
	require.Equal(t, Position{Row: 0, Col: 1}, e.GetCursor())
	require.Equal(t, "bcd", e.GetRegister().Content)

	_, ok = e.GetAnchor()
	require.False(t, ok)
}

func TestEditor_VisualDeleteBackwards(t *testing.T) {
	e := newTestEditor([]string{"abcdef"}, Position{Row: 0, Col: 3})

	typeKeys(e, "vhhx")

	require.Equal(t, []string{"aef"}, e.buffer.GetLines())
	require.Equal(t, Position{Row: 0, Col: 1}, e.GetCursor())
}

func TestEditor_VisualDeleteAcrossLines(t *testing.T) {
	e := newTestEditor([]string{"abc", "def", "ghi"}, Position{Row: 0, Col: 1})

	typeKeys(e, "vjd")

	require.Equal(t, []string{"af", "ghi"}, e.buffer.GetLines())
	require.Equal(t, Position{Row: 0, Col: 1}, e.GetCursor())
	require.Equal(t, "bc\nde", e.GetRegister().Content)
}

func TestEditor_VisualYank(t *testing.T) {
	e := newTestEditor([]string{"abcdef"}, Position{Row: 0, Col: 1})

	typeKeys(e, "vlly")

	require.Equal(t, []string{"abcdef"}, e.buffer.GetLines())
	require.Equal(t, Register{Content: "bcd"}, e.GetRegister())
	require.True(t, e.IsNormalMode())
	require.Equal(t, Position{Row: 0, Col: 1}, e.GetCursor())
}

func TestEditor_VisualReplace(t *testing.T) {
	e := newTestEditor([]string{"abcdef"}, Position{Row: 0, Col: 1})

	typeKeys(e, "vlrx")

	require.Equal(t, []string{"axxdef"}, e.buffer.GetLines())
	require.True(t, e.IsNormalMode())
	require.Equal(t, Position{Row: 0, Col: 1}, e.GetCursor())
}

func TestEditor_VisualChange(t *testing.T) {
	e := newTestEditor([]string{"abcdef"}, Position{Row: 0, Col: 1})

	typeKeys(e, "vlcZ")

	require.Equal(t, []string{"aZdef"}, e.buffer.GetLines())
	require.True(t, e.IsInsertMode())
}

func TestEditor_VisualEscape(t *testing.T) {
	e := newTestEditor([]string{"abc"}, Position{})

	typeKeys(e, "vl")
	press(e, Special(KeyEscape))

	require.True(t, e.IsNormalMode())
	require.Equal(t, Position{Row: 0, Col: 1}, e.GetCursor())
	_, ok := e.GetAnchor()
	require.False(t, ok)
}

func TestEditor_InterruptPreemptsPending(t *testing.T) {
	e := newTestEditor([]string{"abc"}, Position{})

	typeKeys(e, "d")
	outcome := press(e, Ctrl('c'))

	require.Equal(t, OutcomeExit, outcome)
	require.False(t, e.IsPending())
	require.True(t, e.GetState().Quit)
	require.Equal(t, []string{"abc"}, e.buffer.GetLines())
	require.Contains(t, drainSignals(e), Signal(QuitSignal{}))
}

func TestEditor_Save(t *testing.T) {
	e := newTestEditor([]string{"abc"}, Position{})
	typeKeys(e, "x")
	drainSignals(e)

	outcome := press(e, Ctrl('s'))

	require.Equal(t, OutcomeSave, outcome)
	require.Equal(t, []Signal{SaveSignal{content: "bc"}}, drainSignals(e))
	require.Equal(t, "Normal [+]", e.GetState().StatusLine)

	e.MarkSaved("bc")
	require.False(t, e.buffer.IsModified())
	require.Equal(t, "Normal", e.GetState().StatusLine)
}

func TestEditor_EditsAfterSaveStayModified(t *testing.T) {
	e := newTestEditor([]string{"abc"}, Position{})

	typeKeys(e, "iX")
	press(e, Ctrl('s'))
	var written string
	for _, s := range drainSignals(e) {
		if save, ok := s.(SaveSignal); ok {
			written = save.Value()
		}
	}
	require.Equal(t, "Xabc", written)

	// The write completes after another key was handled.
	typeKeys(e, "Y")
	e.MarkSaved(written)

	require.Equal(t, "XYabc", e.buffer.GetCurrentContent())
	require.Equal(t, "Xabc", e.buffer.GetSavedContent())
	require.True(t, e.buffer.IsModified())
	require.Equal(t, "Insert [+]", e.GetState().StatusLine)
}

func TestEditor_ModeSignals(t *testing.T) {
	e := newTestEditor([]string{"abc"}, Position{})

	typeKeys(e, "i")
	press(e, Special(KeyEscape))
	typeKeys(e, "v")

	require.Equal(t, []Signal{
		ModeSignal{mode: InsertMode},
		ModeSignal{mode: NormalMode},
		ModeSignal{mode: VisualMode},
	}, drainSignals(e))
}

func TestEditor_ResizeQueuedWhilePending(t *testing.T) {
	e := newTestEditor([]string{"a", "b"}, Position{})

	typeKeys(e, "d")
	e.HandleEvent(ResizeEvent{Width: 10, Height: 3})
	require.Equal(t, 80, e.GetViewport().Width, "resize waits for the operator")

	typeKeys(e, "d")
	require.Equal(t, []string{"b"}, e.buffer.GetLines())
	require.Equal(t, 10, e.GetViewport().Width)
	require.Equal(t, 3, e.GetViewport().Height)
}

func TestEditor_ResizeFollowsOnNextFrame(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "line"
	}
	e := newTestEditor(lines, Position{})
	e.HandleEvent(ResizeEvent{Width: 80, Height: 20})

	for range 8 {
		typeKeys(e, "j")
	}
	require.Equal(t, Position{Row: 8}, e.GetCursor())

	e.HandleEvent(ResizeEvent{Width: 80, Height: 3})
	require.Equal(t, 0, e.GetViewport().YOffset)

	frame := e.Frame()
	require.Equal(t, 6, e.GetViewport().YOffset)
	require.Equal(t, Position{Row: 2}, frame.Cursor)
	require.Len(t, frame.Lines, 3)
}

func TestEditor_ResizeFloorsAtOne(t *testing.T) {
	e := newTestEditor([]string{"a"}, Position{})

	e.HandleEvent(ResizeEvent{Width: 0, Height: -4})

	require.Equal(t, 1, e.GetViewport().Width)
	require.Equal(t, 1, e.GetViewport().Height)
}

func TestEditor_ScrollFollowsCursor(t *testing.T) {
	e := newTestEditor([]string{"0123456789"}, Position{})
	e.Resize(4, 1)
	e.Frame()

	typeKeys(e, "$")

	require.Equal(t, 6, e.GetViewport().XOffset)
	require.Equal(t, "6789", e.Frame().Lines[0])
}

func TestEditor_ClipboardMirror(t *testing.T) {
	clip := &fakeClipboard{}
	e := New(clip).(*editor)
	e.SetLines([]string{"one", "two"})

	typeKeys(e, "yy")
	typeKeys(e, "jyw")

	require.Equal(t, []string{"one\n", "two"}, clip.writes)
}

func TestEditor_ClipboardFailure(t *testing.T) {
	e := New(&fakeClipboard{err: errors.New("no display")}).(*editor)
	e.SetLines([]string{"hello"})
	drainSignals(e)

	typeKeys(e, "yw")

	require.Equal(t, Register{Content: "hello"}, e.GetRegister())

	var ids []ErrorId
	for _, s := range drainSignals(e) {
		if es, ok := s.(ErrorSignal); ok {
			id, _ := es.Value()
			ids = append(ids, id)
		}
	}
	require.Equal(t, []ErrorId{ErrCopyFailedId}, ids)
}

func TestEditor_SetBindings(t *testing.T) {
	e := newTestEditor([]string{"hello world"}, Position{})

	b := DefaultBindings()
	Rebind(b.Normal, NormalDelete, "s")
	b.Interrupt = ""
	e.SetBindings(b)

	require.Equal(t, DefaultInterrupt, e.GetBindings().Interrupt)

	typeKeys(e, "d")
	require.False(t, e.IsPending(), "d is no longer bound")

	typeKeys(e, "sw")
	require.Equal(t, []string{" world"}, e.buffer.GetLines())
}

func TestEditor_GetBindingsIsACopy(t *testing.T) {
	e := newTestEditor([]string{"abc"}, Position{})

	b := e.GetBindings()
	delete(b.Normal, "x")

	typeKeys(e, "x")
	require.Equal(t, []string{"bc"}, e.buffer.GetLines())
}

func TestEditor_SetContentResets(t *testing.T) {
	e := newTestEditor([]string{"abc"}, Position{Row: 0, Col: 2})
	typeKeys(e, "vd")
	typeKeys(e, "v")
	require.True(t, e.IsVisualMode())
	typeKeys(e, "r")
	require.True(t, e.IsPending())

	e.SetContent([]byte("new\ncontent\n"))

	require.False(t, e.IsPending())
	require.True(t, e.IsNormalMode())
	require.Equal(t, Position{}, e.GetCursor())
	require.Equal(t, []string{"new", "content"}, e.buffer.GetLines())
	require.False(t, e.buffer.IsModified())
}

func TestEditor_UnknownEventFaults(t *testing.T) {
	e := newTestEditor([]string{"abc"}, Position{})
	require.Panics(t, func() { e.HandleEvent(nil) })
}

func TestEditor_Property_CursorStaysLegal(t *testing.T) {
	keys := []KeyEvent{
		Char('h'), Char('j'), Char('k'), Char('l'), Char('x'), Char('d'),
		Char('c'), Char('y'), Char('w'), Char('p'), Char('$'), Char('0'),
		Char('_'), Char('i'), Char('v'), Char('r'), Char('a'), Char(' '),
		Special(KeyEscape), Special(KeyEnter), Special(KeyBackspace),
		Special(KeyDelete), Special(KeyTab), Special(KeyLeft), Special(KeyDown),
	}

	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z ]{0,8}`), 1, 4).Draw(t, "lines")
		e := New(nil).(*editor)
		e.SetLines(lines)
		e.Resize(
			rapid.IntRange(1, 10).Draw(t, "width"),
			rapid.IntRange(1, 5).Draw(t, "height"),
		)
		e.Frame()

		seq := rapid.SliceOfN(rapid.SampledFrom(keys), 1, 40).Draw(t, "keys")
		for _, k := range seq {
			e.HandleEvent(k)
			drainSignals(e)

			pos := e.GetCursor()
			require.GreaterOrEqual(t, e.buffer.LineCount(), 1)
			require.GreaterOrEqual(t, pos.Row, 0)
			require.Less(t, pos.Row, e.buffer.LineCount())

			lineLen := e.buffer.LineRuneCount(pos.Row)
			if e.IsInsertMode() {
				require.LessOrEqual(t, pos.Col, lineLen)
			} else {
				require.LessOrEqual(t, pos.Col, max(lineLen-1, 0))
			}
			require.True(t, e.GetViewport().Contains(pos))

			_, hasAnchor := e.GetAnchor()
			require.Equal(t, e.IsVisualMode(), hasAnchor)
		}
	})
}
