package core

type normalMode struct{}

func NewNormalMode() EditorMode { return &normalMode{} }

func (m *normalMode) Name() Mode { return NormalMode }

func (m *normalMode) Enter(e *editor) {}

func (m *normalMode) Exit(e *editor) {}

func (m *normalMode) HandleKey(e *editor, key KeyEvent) Outcome {
	buffer := e.buffer
	pos := e.cursor.Position

	switch e.bindings.normalAction(key) {
	// Operators wait for one more key
	case NormalReplaceChar:
		e.beginPending(OpReplaceChar, key)
	case NormalDelete:
		e.beginPending(OpDelete, key)
	case NormalChange:
		e.beginPending(OpChange, key)
	case NormalYank:
		e.beginPending(OpYank, key)

	case NormalDeleteChar:
		if pos.Col < buffer.LineRuneCount(pos.Row) {
			e.applyOperator(OpDelete, CharObject{Pos: pos})
		}

	case NormalPut:
		e.put()

	case NormalLineStart:
		e.cursor.MoveToLineStart()
	case NormalLineEnd:
		e.cursor.MoveToLineEnd(buffer, NormalMode)

	case NormalUp:
		e.cursor.MoveUp()
	case NormalDown:
		e.cursor.MoveDown()
	case NormalLeft:
		e.cursor.MoveLeft()
	case NormalRight:
		e.cursor.MoveRight()

	case NormalInsertMode:
		e.setMode(InsertMode)
	case NormalVisualMode:
		e.setMode(VisualMode)

	case NormalExit:
		e.Quit()
		return OutcomeExit

	case NormalNone:
	}

	return OutcomeNone
}
