package core

// Cursor represents the current position for editing operations
type Cursor struct {
	Position Position // Current position (row, column)
}

// Viewport is the window of the buffer that is currently visible.
type Viewport struct {
	XOffset int // First visible column
	YOffset int // First visible row
	Width   int // Number of visible columns
	Height  int // Number of visible rows
}

// --- Clamping ---

// maxCol returns the largest legal column on a line of length lineLen. Insert
// mode may sit one past the last character (the append position); Normal and
// Visual always have a character under the cursor.
func maxCol(lineLen int, mode Mode) int {
	if mode == InsertMode {
		return lineLen
	}
	return max(lineLen-1, 0)
}

// Clamp re-derives a legal cursor position from the buffer bounds and the
// column rule of mode. It must run after every buffer mutation.
func (c *Cursor) Clamp(buffer Buffer, mode Mode) {
	lastRow := max(buffer.LineCount()-1, 0)
	c.Position.Row = min(max(c.Position.Row, 0), lastRow)

	limit := maxCol(buffer.LineRuneCount(c.Position.Row), mode)
	c.Position.Col = min(max(c.Position.Col, 0), limit)
}

// --- Cursor Movement ---
// Moves saturate at zero. The upper bound is left to the next Clamp so that a
// move can land on a column that only becomes valid after a following edit.

// MoveLeft moves the cursor one character left.
func (c *Cursor) MoveLeft() {
	c.Position.Col = max(c.Position.Col-1, 0)
}

// MoveRight moves the cursor one character right.
func (c *Cursor) MoveRight() {
	c.Position.Col++
}

// MoveUp moves the cursor one line up.
func (c *Cursor) MoveUp() {
	c.Position.Row = max(c.Position.Row-1, 0)
}

// MoveDown moves the cursor one line down.
func (c *Cursor) MoveDown() {
	c.Position.Row++
}

// MoveToLineStart moves the cursor to the start of the current line (col 0)
func (c *Cursor) MoveToLineStart() {
	c.Position.Col = 0
}

// MoveToLineEnd moves the cursor to the end of the current line: the last
// character, or the append position in Insert mode.
func (c *Cursor) MoveToLineEnd(buffer Buffer, mode Mode) {
	c.Position.Col = maxCol(buffer.LineRuneCount(c.Position.Row), mode)
}

// --- Viewport ---

// Follow adjusts the offsets by the minimum amount that brings pos back into
// the visible rectangle. It never recenters and never changes the size.
func (v *Viewport) Follow(pos Position) {
	width := max(v.Width, 1)
	height := max(v.Height, 1)

	if pos.Row < v.YOffset {
		v.YOffset = pos.Row
	} else if pos.Row >= v.YOffset+height {
		v.YOffset = pos.Row - height + 1
	}

	if pos.Col < v.XOffset {
		v.XOffset = pos.Col
	} else if pos.Col >= v.XOffset+width {
		v.XOffset = pos.Col - width + 1
	}

	v.YOffset = max(v.YOffset, 0)
	v.XOffset = max(v.XOffset, 0)
}

// Contains reports whether pos lies inside the visible rectangle.
func (v Viewport) Contains(pos Position) bool {
	return pos.Row >= v.YOffset && pos.Row < v.YOffset+max(v.Height, 1) &&
		pos.Col >= v.XOffset && pos.Col < v.XOffset+max(v.Width, 1)
}

// Relative translates a buffer position into viewport coordinates. The
// result may be negative or beyond the size when pos is off screen.
func (v Viewport) Relative(pos Position) Position {
	return Position{Row: pos.Row - v.YOffset, Col: pos.Col - v.XOffset}
}
