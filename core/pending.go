package core

import (
	"fmt"
	"strings"
)

// pendingOp is the operator-pending sub-state: an operator has been typed and
// the editor waits for exactly one more key to pick its target.
type pendingOp struct {
	op   Operator
	key  KeyEvent // The key that started the operator
	mode Mode     // The mode the operator was typed in
}

// Register is the scratch register filled by yank, delete and change.
type Register struct {
	Content  string
	Linewise bool
}

func (e *editor) beginPending(op Operator, key KeyEvent) {
	e.pending = &pendingOp{op: op, key: key, mode: e.state.Mode}
	e.state.CommandLine = key.Name()
}

func (e *editor) cancelPending() {
	e.pending = nil
	e.state.CommandLine = ""
}

// resolvePending consumes the key that completes a pending operator.
func (e *editor) resolvePending(key KeyEvent) {
	p := e.pending

	if p.op == OpReplaceChar {
		if !key.IsChar() || !printable(key.Rune) {
			// Only a cancel key ends the wait; anything else is ignored.
			if e.bindings.TextObjects[key.Name()] == ObjectCancel {
				e.cancelPending()
			}
			return
		}

		e.cancelPending()
		if p.mode == VisualMode {
			e.replaceSelection(e.selection(), key.Rune)
			return
		}
		pos := e.cursor.Position
		if pos.Col < e.buffer.LineRuneCount(pos.Row) {
			start, end := Bounds(CharObject{Pos: pos})
			e.buffer.ReplaceRange(start, end, string(key.Rune))
		}
		return
	}

	e.cancelPending()
	obj := e.resolver.Resolve(p.key, key, e.buffer, e.cursor.Position)
	e.applyOperator(p.op, obj)
}

// applyOperator runs op against obj. CancelOp and NoObject leave the buffer
// untouched.
func (e *editor) applyOperator(op Operator, obj TextObject) {
	var start, end Position
	switch o := obj.(type) {
	case CancelOp, NoObject:
		return
	case SelectionObject:
		start, end = SelectionBounds(o.Anchor, e.cursor.Position, e.buffer)
	default:
		start, end = objectRange(e.buffer, obj)
	}

	_, linewise := obj.(LineObject)
	text := e.buffer.Text(start, end)

	switch op {
	case OpYank:
		e.yank(text, linewise)
		e.DispatchSignal(YankSignal{content: text, linewise: linewise})
		if _, ok := obj.(SelectionObject); ok {
			e.cursor.Position = start
			e.setMode(NormalMode)
		}

	case OpDelete:
		e.yank(text, linewise)
		e.buffer.ReplaceRange(start, end, "")
		e.cursor.Position = e.cursorAfterDelete(obj, start)
		e.DispatchSignal(DeleteSignal{content: text})
		if e.state.Mode == VisualMode {
			e.setMode(NormalMode)
		}

	case OpChange:
		e.yank(text, linewise)
		if l, ok := obj.(LineObject); ok {
			// Keep the line itself so there is somewhere to type.
			start = Position{Row: l.Row}
			end = Position{Row: l.Row, Col: e.buffer.LineRuneCount(l.Row)}
		}
		e.buffer.ReplaceRange(start, end, "")
		e.cursor.Position = start
		e.setMode(InsertMode)

	default:
		fault("applyOperator", "operator %s has no range action", op)
	}
}

func (e *editor) cursorAfterDelete(obj TextObject, start Position) Position {
	if l, ok := obj.(LineObject); ok {
		return Position{Row: min(l.Row, e.buffer.LineCount()-1), Col: 0}
	}
	return start
}

// yank stores text in the register and mirrors it to the clipboard.
func (e *editor) yank(text string, linewise bool) {
	if linewise {
		text = strings.TrimPrefix(strings.TrimSuffix(text, "\n"), "\n")
	}
	e.register = Register{Content: text, Linewise: linewise}

	if e.clipboard == nil {
		return
	}
	content := text
	if linewise {
		content += "\n"
	}
	if err := e.clipboard.Write(content); err != nil {
		e.DispatchError(ErrCopyFailedId, fmt.Errorf("failed to copy to clipboard: %w", err))
	}
}

// put inserts the register after the cursor. Linewise content goes on new
// lines below the current one.
func (e *editor) put() {
	reg := e.register
	if reg.Content == "" && !reg.Linewise {
		var ok bool
		if reg, ok = e.clipboardRegister(); !ok {
			return
		}
	}

	pos := e.cursor.Position
	lineLen := e.buffer.LineRuneCount(pos.Row)

	if reg.Linewise {
		at := Position{Row: pos.Row, Col: lineLen}
		e.buffer.ReplaceRange(at, at, "\n"+reg.Content)
		e.cursor.Position = Position{Row: pos.Row + 1, Col: 0}
		e.DispatchSignal(PasteSignal{content: reg.Content})
		return
	}

	at := Position{Row: pos.Row, Col: min(pos.Col+1, lineLen)}
	e.buffer.ReplaceRange(at, at, reg.Content)

	lines := strings.Split(reg.Content, "\n")
	last := []rune(lines[len(lines)-1])
	if len(lines) == 1 {
		e.cursor.Position = Position{Row: at.Row, Col: at.Col + len(last) - 1}
	} else {
		e.cursor.Position = Position{Row: at.Row + len(lines) - 1, Col: max(len(last)-1, 0)}
	}
	e.DispatchSignal(PasteSignal{content: reg.Content})
}

// clipboardRegister reads the system clipboard in place of an empty register.
// Text ending in a newline is put linewise.
func (e *editor) clipboardRegister() (Register, bool) {
	if e.clipboard == nil {
		e.DispatchError(ErrEmptyRegisterId, ErrEmptyRegister)
		return Register{}, false
	}

	content, err := e.clipboard.Read()
	if err != nil {
		e.DispatchError(ErrFailedToPasteId, err)
		return Register{}, false
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	if content == "" {
		e.DispatchError(ErrEmptyRegisterId, ErrEmptyRegister)
		return Register{}, false
	}
	if strings.HasSuffix(content, "\n") {
		return Register{Content: strings.TrimSuffix(content, "\n"), Linewise: true}, true
	}
	return Register{Content: content}, true
}
