package core

import "strings"

type insertMode struct{}

func NewInsertMode() EditorMode { return &insertMode{} }

func (m *insertMode) Name() Mode { return InsertMode }

func (m *insertMode) Enter(e *editor) {}

func (m *insertMode) Exit(e *editor) {}

func (m *insertMode) HandleKey(e *editor, key KeyEvent) Outcome {
	buffer := e.buffer
	pos := e.cursor.Position

	switch e.bindings.insertAction(key) {
	case InsertWrite:
		buffer.InsertText(pos, string(key.Rune))
		e.cursor.MoveRight()

	case InsertDelForw:
		if pos.Col < buffer.LineRuneCount(pos.Row) {
			buffer.RemoveChar(pos)
		} else if err := buffer.JoinNextLine(pos.Row); err != nil {
			// At the append position the next character is the newline.
			e.DispatchError(ErrNoLineToJoinId, err)
		}

	case InsertDelBack:
		switch {
		case pos.Col > 0:
			buffer.RemoveChar(Position{Row: pos.Row, Col: pos.Col - 1})
			e.cursor.MoveLeft()
		case pos.Row > 0:
			prevLen := buffer.LineRuneCount(pos.Row - 1)
			if err := buffer.JoinNextLine(pos.Row - 1); err == nil {
				e.cursor.Position = Position{Row: pos.Row - 1, Col: prevLen}
			}
		}

	case InsertNewLine:
		buffer.InsertNewline(pos)
		e.cursor.Position = Position{Row: pos.Row + 1, Col: 0}

	case InsertIndent:
		width := max(e.bindings.IndentWidth, 0)
		buffer.InsertText(pos, strings.Repeat(" ", width))
		e.cursor.Position.Col += width

	case InsertUp:
		e.cursor.MoveUp()
	case InsertDown:
		e.cursor.MoveDown()
	case InsertLeft:
		e.cursor.MoveLeft()
	case InsertRight:
		e.cursor.MoveRight()

	case InsertNormalMode:
		e.setMode(NormalMode)

	case InsertNone:
	}

	return OutcomeNone
}
