package core

import (
	"strings"
	"unicode"
)

// DefaultWordBreak is the set of characters that end a word, in addition to
// whitespace.
const DefaultWordBreak = "*?_-.[]~=&;!#$%^(){}<>"

// TextObject is a resolved range an operator acts on. The set of variants is
// closed: CharObject, LineObject, LineEndObject, WordObject, SelectionObject,
// CancelOp and NoObject.
type TextObject interface {
	isTextObject()
}

// CharObject is the half-open range [Pos, Pos+1 col).
type CharObject struct{ Pos Position }

// LineObject is the whole line Row including its trailing newline.
type LineObject struct{ Row int }

// LineEndObject runs from Pos to the end of its line; Count is the number of
// characters left on the line.
type LineEndObject struct {
	Pos   Position
	Count int
}

// WordObject spans Count characters starting at Pos.
type WordObject struct {
	Pos   Position
	Count int
}

// SelectionObject pairs the Visual anchor with the live cursor. Its range is
// inclusive of both endpoints and is computed with SelectionBounds.
type SelectionObject struct{ Anchor Position }

// CancelOp aborts the pending operator without mutation.
type CancelOp struct{}

// NoObject means there is nothing to operate on.
type NoObject struct{}

func (CharObject) isTextObject()      {}
func (LineObject) isTextObject()      {}
func (LineEndObject) isTextObject()   {}
func (WordObject) isTextObject()      {}
func (SelectionObject) isTextObject() {}
func (CancelOp) isTextObject()        {}
func (NoObject) isTextObject()        {}

// Bounds returns the half-open range [start, end) covered by obj. Asking for
// the bounds of a SelectionObject, CancelOp or NoObject is a fault.
func Bounds(obj TextObject) (start, end Position) {
	switch o := obj.(type) {
	case CharObject:
		return o.Pos, Position{Row: o.Pos.Row, Col: o.Pos.Col + 1}
	case LineObject:
		return Position{Row: o.Row}, Position{Row: o.Row + 1}
	case LineEndObject:
		return o.Pos, Position{Row: o.Pos.Row, Col: o.Pos.Col + o.Count}
	case WordObject:
		return o.Pos, Position{Row: o.Pos.Row, Col: o.Pos.Col + o.Count}
	case SelectionObject:
		fault("Bounds", "selection bounds need the cursor, use SelectionBounds")
	case CancelOp:
		fault("Bounds", "bounds of CancelOp requested")
	case NoObject:
		fault("Bounds", "bounds of NoObject requested")
	default:
		fault("Bounds", "unknown text object %T", obj)
	}
	return Position{}, Position{}
}

// SelectionBounds turns the inclusive selection between anchor and cursor
// into a half-open range: from the smaller endpoint to one character past the
// larger. The result does not depend on which endpoint is the anchor. When
// the larger endpoint has no character under it (an empty line) the range
// takes that line's newline instead, if one follows.
func SelectionBounds(anchor, cursor Position, buffer Buffer) (start, end Position) {
	start, last := NormalizeSelection(anchor, cursor)

	lineLen := buffer.LineRuneCount(last.Row)
	switch {
	case last.Col < lineLen:
		end = Position{Row: last.Row, Col: last.Col + 1}
	case last.Row+1 < buffer.LineCount():
		end = Position{Row: last.Row + 1, Col: 0}
	default:
		end = Position{Row: last.Row, Col: lineLen}
	}

	return start, end
}

// ObjectKind is the template a key binds to in the text object table. The
// resolver fills in the positions from the cursor.
type ObjectKind int

const (
	ObjectNone ObjectKind = iota
	ObjectChar
	ObjectLine
	ObjectLineEnd
	ObjectWord
	ObjectCancel
)

var objectKindNames = map[ObjectKind]string{
	ObjectChar:    "char",
	ObjectLine:    "line",
	ObjectLineEnd: "lineend",
	ObjectWord:    "word",
	ObjectCancel:  "cancel",
}

func (k ObjectKind) String() string {
	if name, ok := objectKindNames[k]; ok {
		return name
	}
	return "none"
}

// Resolver turns an operator key plus the next key into a TextObject.
type Resolver struct {
	objects   map[string]ObjectKind
	wordBreak string
}

// NewResolver builds a resolver from the text object table of b.
func NewResolver(b Bindings) *Resolver {
	wordBreak := b.WordBreak
	if wordBreak == "" {
		wordBreak = DefaultWordBreak
	}
	return &Resolver{
		objects:   b.TextObjects,
		wordBreak: wordBreak,
	}
}

// Resolve maps the key that followed opKey to a text object at cursor.
// Repeating the operator key selects the whole line; an unbound key cancels.
func (r *Resolver) Resolve(opKey, key KeyEvent, buffer Buffer, cursor Position) TextObject {
	if key.Name() == opKey.Name() {
		return LineObject{Row: cursor.Row}
	}

	switch r.objects[key.Name()] {
	case ObjectChar:
		if cursor.Col >= buffer.LineRuneCount(cursor.Row) {
			return NoObject{}
		}
		return CharObject{Pos: cursor}
	case ObjectLine:
		return LineObject{Row: cursor.Row}
	case ObjectLineEnd:
		return r.LineEnd(buffer, cursor)
	case ObjectWord:
		return r.Word(buffer, cursor)
	default:
		return CancelOp{}
	}
}

// Word scans forward from pos and returns the run of characters up to, not
// including, the first break character or whitespace.
func (r *Resolver) Word(buffer Buffer, pos Position) WordObject {
	if pos.Row < 0 || pos.Row >= buffer.LineCount() {
		fault("Word", "row %d out of bounds [0, %d)", pos.Row, buffer.LineCount())
	}
	line := buffer.GetLineRunes(pos.Row)

	count := 0
	for col := pos.Col; col < len(line); col++ {
		if r.isBreak(line[col]) {
			break
		}
		count++
	}

	return WordObject{Pos: pos, Count: count}
}

// LineEnd returns the object covering pos to the end of its line.
func (r *Resolver) LineEnd(buffer Buffer, pos Position) LineEndObject {
	if pos.Row < 0 || pos.Row >= buffer.LineCount() {
		fault("LineEnd", "row %d out of bounds [0, %d)", pos.Row, buffer.LineCount())
	}
	return LineEndObject{Pos: pos, Count: max(buffer.LineRuneCount(pos.Row)-pos.Col, 0)}
}

func (r *Resolver) isBreak(c rune) bool {
	return unicode.IsSpace(c) || strings.ContainsRune(r.wordBreak, c)
}

// objectRange returns the buffer range an operator applies to. A LineObject
// on the last line has no following newline to consume, so it takes the
// preceding one instead (or empties the only line).
func objectRange(buffer Buffer, obj TextObject) (start, end Position) {
	start, end = Bounds(obj)

	if _, ok := obj.(LineObject); ok && end.Row >= buffer.LineCount() {
		lastLen := buffer.LineRuneCount(start.Row)
		if start.Row == 0 {
			return Position{}, Position{Row: 0, Col: lastLen}
		}
		prev := start.Row - 1
		return Position{Row: prev, Col: buffer.LineRuneCount(prev)}, Position{Row: start.Row, Col: lastLen}
	}

	return start, end
}
