package core

import (
	"strings"
)

// Buffer represents the text content being edited (Using Runes)
type Buffer interface {
	// Content access
	GetLines() []string              // Get lines as strings (for saving/display)
	GetLineRunes(lineNum int) []rune // Get specific line as runes (for editing)
	LineRuneCount(lineNum int) int   // Get rune count for a line
	GetSavedContent() string         // Get saved buffer content as a string
	GetCurrentContent() string       // Get entire buffer content as a string
	LineCount() int                  // Get number of lines (always >= 1)
	Text(start, end Position) string // Get the half-open range [start, end) as a string

	// Modification. Positions must already be valid; an out-of-range
	// position or an inverted range panics with a *Fault.
	InsertText(pos Position, text string)          // Splice text into one line
	InsertNewline(pos Position)                    // Split a line in two
	JoinNextLine(lineNum int) error                // Append line lineNum+1 onto lineNum
	ReplaceRange(start, end Position, text string) // Replace [start, end) with text
	RemoveChar(pos Position)                       // Remove exactly one character

	IsModified() bool          // Check if buffer has been modified
	SaveContent()              // Record the current content as saved
	SetSavedContent(string)    // Record content as the saved version
	SetContent(content []byte) // Set content (from file or other source)
	SetLines(lines []string)   // Set content from already split lines
	IsEmpty() bool             // Check if buffer is empty
}

// textBuffer implementation using runes for better unicode handling
type textBuffer struct {
	lines        [][]rune // Store lines as slices of runes
	savedContent string
}

// NewBuffer creates a new empty buffer
func NewBuffer() Buffer {
	return &textBuffer{
		lines: [][]rune{{}}, // Start with one empty line
	}
}

func NewBufferFromBytes(content []byte) Buffer {
	b := textBuffer{
		lines: [][]rune{{}},
	}

	b.SetContent(content)
	b.SaveContent()
	return &b
}

// NewBufferFromLines creates a buffer holding the given lines, marked as saved.
func NewBufferFromLines(lines []string) Buffer {
	b := textBuffer{}
	b.SetLines(lines)
	b.SaveContent()
	return &b
}

func (b *textBuffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// SetContent splits content on newlines. A single trailing newline ends the
// last line rather than opening an empty one, and CRLF endings are accepted.
func (b *textBuffer) SetContent(content []byte) {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	b.SetLines(strings.Split(text, "\n"))
}

func (b *textBuffer) SetLines(lines []string) {
	b.lines = make([][]rune, 0, max(len(lines), 1))
	for _, line := range lines {
		b.lines = append(b.lines, []rune(line))
	}

	if len(b.lines) == 0 {
		b.lines = [][]rune{{}}
	}
}

func (b *textBuffer) GetLines() []string {
	linesStr := make([]string, len(b.lines))
	for i, r := range b.lines {
		linesStr[i] = string(r)
	}
	return linesStr
}

func (b *textBuffer) GetLineRunes(lineNum int) []rune {
	if lineNum < 0 || lineNum >= len(b.lines) {
		return nil
	}
	return b.lines[lineNum]
}

func (b *textBuffer) LineRuneCount(lineNum int) int {
	if lineNum < 0 || lineNum >= len(b.lines) {
		return 0
	}
	return len(b.lines[lineNum])
}

func (b *textBuffer) IsModified() bool {
	return b.savedContent != b.GetCurrentContent()
}

func (b *textBuffer) SaveContent() {
	b.savedContent = b.GetCurrentContent()
}

// SetSavedContent records content, which may be older than the buffer, as
// what was last written.
func (b *textBuffer) SetSavedContent(content string) {
	b.savedContent = content
}

// GetCurrentContent returns the entire buffer content as a string
func (b *textBuffer) GetCurrentContent() string {
	return strings.Join(b.GetLines(), "\n")
}

// GetSavedContent returns the saved content as a string
func (b *textBuffer) GetSavedContent() string {
	return b.savedContent
}

func (b *textBuffer) LineCount() int {
	return len(b.lines)
}

// Text returns the content of [start, end), joining lines with "\n".
func (b *textBuffer) Text(start, end Position) string {
	b.checkRange("Text", start, end)

	if start.Row == end.Row {
		return string(b.lines[start.Row][start.Col:end.Col])
	}

	var sb strings.Builder
	sb.WriteString(string(b.lines[start.Row][start.Col:]))
	for row := start.Row + 1; row < end.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[row]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[end.Row][:end.Col]))

	return sb.String()
}

// --- Buffer Modification ---

// InsertText splices text into line pos.Row at pos.Col. The text must not
// contain a line break; the caller advances the cursor.
func (b *textBuffer) InsertText(pos Position, text string) {
	b.checkPosition("InsertText", pos)
	if strings.ContainsRune(text, '\n') {
		fault("InsertText", "text %q crosses a line boundary", text)
	}

	line := b.lines[pos.Row]
	runes := []rune(text)
	newLine := make([]rune, 0, len(line)+len(runes))
	newLine = append(newLine, line[:pos.Col]...)
	newLine = append(newLine, runes...)
	newLine = append(newLine, line[pos.Col:]...)
	b.lines[pos.Row] = newLine
}

// InsertNewline splits line pos.Row at pos.Col; the second half becomes a
// new line right after it.
func (b *textBuffer) InsertNewline(pos Position) {
	b.checkPosition("InsertNewline", pos)

	line := b.lines[pos.Row]
	head := make([]rune, pos.Col)
	copy(head, line[:pos.Col])
	tail := make([]rune, len(line)-pos.Col)
	copy(tail, line[pos.Col:])

	b.lines[pos.Row] = head
	b.lines = append(b.lines, nil)
	copy(b.lines[pos.Row+2:], b.lines[pos.Row+1:])
	b.lines[pos.Row+1] = tail
}

// JoinNextLine appends line lineNum+1 onto lineNum and removes it.
func (b *textBuffer) JoinNextLine(lineNum int) error {
	if lineNum < 0 || lineNum >= len(b.lines) {
		fault("JoinNextLine", "row %d out of bounds [0, %d)", lineNum, len(b.lines))
	}
	if lineNum+1 >= len(b.lines) {
		return ErrNoLineToJoin
	}

	b.lines[lineNum] = append(b.lines[lineNum], b.lines[lineNum+1]...)
	b.lines = append(b.lines[:lineNum+1], b.lines[lineNum+2:]...)

	return nil
}

// ReplaceRange replaces the half-open range [start, end) with text. A range
// spanning several lines collapses into one line; an empty text deletes. A
// text containing line breaks is split into lines.
func (b *textBuffer) ReplaceRange(start, end Position, text string) {
	b.checkRange("ReplaceRange", start, end)

	head := b.lines[start.Row][:start.Col]
	tail := b.lines[end.Row][end.Col:]

	parts := strings.Split(text, "\n")
	replacement := make([][]rune, len(parts))
	for i, part := range parts {
		replacement[i] = []rune(part)
	}

	first := make([]rune, 0, len(head)+len(replacement[0]))
	first = append(first, head...)
	first = append(first, replacement[0]...)
	replacement[0] = first

	last := replacement[len(replacement)-1]
	replacement[len(replacement)-1] = append(last, tail...)

	newLines := make([][]rune, 0, len(b.lines)-(end.Row-start.Row)+len(replacement)-1)
	newLines = append(newLines, b.lines[:start.Row]...)
	newLines = append(newLines, replacement...)
	newLines = append(newLines, b.lines[end.Row+1:]...)
	b.lines = newLines
}

// RemoveChar removes exactly one character at pos.
func (b *textBuffer) RemoveChar(pos Position) {
	if pos.Row < 0 || pos.Row >= len(b.lines) || pos.Col < 0 || pos.Col >= len(b.lines[pos.Row]) {
		fault("RemoveChar", "no character at %d:%d", pos.Row, pos.Col)
	}
	b.ReplaceRange(pos, Position{Row: pos.Row, Col: pos.Col + 1}, "")
}

func (b *textBuffer) checkPosition(op string, pos Position) {
	if pos.Row < 0 || pos.Row >= len(b.lines) {
		fault(op, "row %d out of bounds [0, %d)", pos.Row, len(b.lines))
	}
	if pos.Col < 0 || pos.Col > len(b.lines[pos.Row]) {
		fault(op, "col %d out of bounds [0, %d]", pos.Col, len(b.lines[pos.Row]))
	}
}

func (b *textBuffer) checkRange(op string, start, end Position) {
	if end.Before(start) {
		fault(op, "inverted range %d:%d > %d:%d", start.Row, start.Col, end.Row, end.Col)
	}
	b.checkPosition(op, start)
	b.checkPosition(op, end)
}
