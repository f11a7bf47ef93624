package core

import "strings"

// visualMode keeps the anchor fixed where the mode was entered; the live
// cursor is the other end of the selection.
type visualMode struct{}

func NewVisualMode() EditorMode { return &visualMode{} }

func (m *visualMode) Name() Mode { return VisualMode }

func (m *visualMode) Enter(e *editor) {
	anchor := e.cursor.Position
	e.anchor = &anchor
}

func (m *visualMode) Exit(e *editor) {
	e.anchor = nil
}

func (m *visualMode) HandleKey(e *editor, key KeyEvent) Outcome {
	switch e.bindings.visualAction(key) {
	case VisualReplaceChar:
		e.beginPending(OpReplaceChar, key)

	case VisualDelete, VisualDeleteChar:
		e.applyOperator(OpDelete, e.selection())
	case VisualChange:
		e.applyOperator(OpChange, e.selection())
	case VisualYank:
		e.applyOperator(OpYank, e.selection())

	case VisualLineStart:
		e.cursor.MoveToLineStart()
	case VisualLineEnd:
		e.cursor.MoveToLineEnd(e.buffer, VisualMode)

	case VisualUp:
		e.cursor.MoveUp()
	case VisualDown:
		e.cursor.MoveDown()
	case VisualLeft:
		e.cursor.MoveLeft()
	case VisualRight:
		e.cursor.MoveRight()

	case VisualNormalMode:
		e.setMode(NormalMode)

	case VisualExit:
		e.Quit()
		return OutcomeExit

	case VisualNone:
	}

	return OutcomeNone
}

func (e *editor) selection() SelectionObject {
	if e.anchor == nil {
		fault("selection", "no anchor outside visual mode")
	}
	return SelectionObject{Anchor: *e.anchor}
}

// replaceSelection overwrites every character of the selection with r. Line
// breaks inside the selection are kept.
func (e *editor) replaceSelection(sel SelectionObject, r rune) {
	start, end := SelectionBounds(sel.Anchor, e.cursor.Position, e.buffer)

	for row := start.Row; row <= end.Row; row++ {
		from := 0
		if row == start.Row {
			from = start.Col
		}
		to := e.buffer.LineRuneCount(row)
		if row == end.Row {
			to = min(end.Col, to)
		}
		if to <= from {
			continue
		}
		e.buffer.ReplaceRange(
			Position{Row: row, Col: from},
			Position{Row: row, Col: to},
			strings.Repeat(string(r), to-from),
		)
	}

	e.cursor.Position = start
	e.setMode(NormalMode)
}
