package core

// CursorShape is how the display should draw the caret.
type CursorShape int

const (
	CursorBlinkingBar CursorShape = iota
	CursorBlinkingBlock
	CursorSteadyBlock
)

func (s CursorShape) String() string {
	switch s {
	case CursorBlinkingBar:
		return "blinking-bar"
	case CursorSteadyBlock:
		return "steady-block"
	default:
		return "blinking-block"
	}
}

// ShapeFor returns the caret shape of mode.
func ShapeFor(mode Mode) CursorShape {
	switch mode {
	case InsertMode:
		return CursorBlinkingBar
	case VisualMode:
		return CursorSteadyBlock
	default:
		return CursorBlinkingBlock
	}
}

// Span is an inclusive column range on one frame row.
type Span struct {
	Start int
	End   int
}

// Frame is everything the display needs to paint one screen. All coordinates
// are relative to the viewport.
type Frame struct {
	Lines       []string     // Cropped visible rows
	Highlights  map[int]Span // Selection per frame row, Visual mode only
	Cursor      Position
	CursorShape CursorShape
	Mode        Mode
	Status      string // Mode name and modified flag
	Pending     string // Keys of an operator waiting for its target
	Width       int
	Height      int
}

// RenderInput is the visible slice of the editor state. Cursor and Anchor are
// already viewport-relative; Anchor is nil outside Visual mode.
type RenderInput struct {
	Lines   [][]rune
	XOffset int
	Width   int
	Height  int
	Cursor  Position
	Anchor  *Position
	Mode    Mode
}

// Render crops the visible rows and computes the selection highlight.
func Render(in RenderInput) Frame {
	width := max(in.Width, 1)

	frame := Frame{
		Lines:       make([]string, len(in.Lines)),
		Highlights:  make(map[int]Span),
		Cursor:      in.Cursor,
		CursorShape: ShapeFor(in.Mode),
		Mode:        in.Mode,
		Width:       width,
		Height:      max(in.Height, len(in.Lines)),
	}

	for i, line := range in.Lines {
		frame.Lines[i] = string(crop(line, in.XOffset, width))
	}

	if in.Mode != VisualMode || in.Anchor == nil || *in.Anchor == in.Cursor {
		return frame
	}

	for i := range frame.Lines {
		lineLen := len([]rune(frame.Lines[i]))
		span, ok := selectionSpan(*in.Anchor, in.Cursor, i, lineLen)
		if !ok {
			continue
		}
		span.Start = max(span.Start, 0)
		span.End = min(span.End, width-1)
		if span.End < span.Start {
			continue
		}
		frame.Highlights[i] = span
	}

	return frame
}

// crop returns the part of line in [x, x+width).
func crop(line []rune, x, width int) []rune {
	if len(line) <= x {
		return nil
	}
	return line[x:min(len(line), x+width)]
}

// selectionSpan applies the selection geometry to one row. lineLen is the
// length of the cropped row.
func selectionSpan(anchor, cursor Position, row, lineLen int) (Span, bool) {
	first, last := NormalizeSelection(anchor, cursor)

	switch {
	case row < first.Row || row > last.Row:
		return Span{}, false
	case first.Row == last.Row:
		return Span{Start: min(first.Col, last.Col), End: max(first.Col, last.Col)}, true
	case row == first.Row:
		return Span{Start: first.Col, End: lineLen - 1}, true
	case row == last.Row:
		return Span{Start: 0, End: last.Col}, true
	default:
		return Span{Start: 0, End: lineLen - 1}, true
	}
}

// Frame produces the current screen. A scroll-follow owed by an earlier
// resize is applied first.
func (e *editor) Frame() Frame {
	if e.followPending {
		e.viewport.Follow(e.cursor.Position)
		e.followPending = false
	}

	v := e.viewport
	height := max(v.Height, 1)
	first := min(v.YOffset, e.buffer.LineCount())
	last := min(v.YOffset+height, e.buffer.LineCount())

	lines := make([][]rune, 0, last-first)
	for row := first; row < last; row++ {
		lines = append(lines, e.buffer.GetLineRunes(row))
	}

	var anchor *Position
	if e.anchor != nil {
		rel := v.Relative(*e.anchor)
		anchor = &rel
	}

	frame := Render(RenderInput{
		Lines:   lines,
		XOffset: v.XOffset,
		Width:   v.Width,
		Height:  height,
		Cursor:  v.Relative(e.cursor.Position),
		Anchor:  anchor,
		Mode:    e.state.Mode,
	})
	frame.Status = e.statusLine()
	frame.Pending = e.state.CommandLine

	return frame
}
