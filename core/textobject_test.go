package core

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBounds(t *testing.T) {
	tests := []struct {
		name       string
		obj        TextObject
		start, end Position
	}{
		{"char", CharObject{Pos: Position{1, 2}}, Position{1, 2}, Position{1, 3}},
		{"line", LineObject{Row: 3}, Position{3, 0}, Position{4, 0}},
		{"line end", LineEndObject{Pos: Position{0, 2}, Count: 4}, Position{0, 2}, Position{0, 6}},
		{"word", WordObject{Pos: Position{2, 1}, Count: 5}, Position{2, 1}, Position{2, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Bounds(tt.obj)
			require.Equal(t, tt.start, start)
			require.Equal(t, tt.end, end)
		})
	}
}

func TestBounds_Faults(t *testing.T) {
	for _, obj := range []TextObject{CancelOp{}, NoObject{}, SelectionObject{}} {
		func() {
			defer func() {
				f, ok := recover().(*Fault)
				require.True(t, ok, "expected a *Fault for %T", obj)
				require.Equal(t, "Bounds", f.Op)
			}()
			Bounds(obj)
		}()
	}
}

func TestSelectionBounds(t *testing.T) {
	buffer := NewBufferFromLines([]string{"abcdef", "", "xyz"})

	start, end := SelectionBounds(Position{0, 1}, Position{0, 3}, buffer)
	require.Equal(t, Position{0, 1}, start)
	require.Equal(t, Position{0, 4}, end)

	start, end = SelectionBounds(Position{2, 1}, Position{0, 4}, buffer)
	require.Equal(t, Position{0, 4}, start)
	require.Equal(t, Position{2, 2}, end)

	// The empty line has no character, so its newline is taken.
	start, end = SelectionBounds(Position{0, 5}, Position{1, 0}, buffer)
	require.Equal(t, Position{0, 5}, start)
	require.Equal(t, Position{2, 0}, end)
}

func TestSelectionBounds_Property_Symmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z]{0,10}`), 1, 5).Draw(t, "lines")
		buffer := NewBufferFromLines(lines)

		pos := func(label string) Position {
			row := rapid.IntRange(0, len(lines)-1).Draw(t, label+"Row")
			col := rapid.IntRange(0, max(len(lines[row])-1, 0)).Draw(t, label+"Col")
			return Position{Row: row, Col: col}
		}
		a, b := pos("a"), pos("b")

		s1, e1 := SelectionBounds(a, b, buffer)
		s2, e2 := SelectionBounds(b, a, buffer)
		require.Equal(t, s1, s2)
		require.Equal(t, e1, e2)
		require.False(t, e1.Before(s1))
	})
}

func TestResolver_Resolve(t *testing.T) {
	resolver := NewResolver(DefaultBindings())
	buffer := NewBufferFromLines([]string{"hello world", ""})
	d := Char('d')

	tests := []struct {
		name   string
		key    KeyEvent
		cursor Position
		want   TextObject
	}{
		{"word", Char('w'), Position{0, 0}, WordObject{Pos: Position{0, 0}, Count: 5}},
		{"word from the middle", Char('w'), Position{0, 7}, WordObject{Pos: Position{0, 7}, Count: 4}},
		{"word on a space", Char('w'), Position{0, 5}, WordObject{Pos: Position{0, 5}, Count: 0}},
		{"same key as operator", Char('d'), Position{0, 3}, LineObject{Row: 0}},
		{"line", Char('_'), Position{0, 3}, LineObject{Row: 0}},
		{"line end", Char('$'), Position{0, 6}, LineEndObject{Pos: Position{0, 6}, Count: 5}},
		{"char", Char('l'), Position{0, 1}, CharObject{Pos: Position{0, 1}}},
		{"char on an empty line", Char('l'), Position{1, 0}, NoObject{}},
		{"cancel key", Special(KeyEscape), Position{0, 0}, CancelOp{}},
		{"unbound key", Char('q'), Position{0, 0}, CancelOp{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, resolver.Resolve(d, tt.key, buffer, tt.cursor))
		})
	}
}

func TestResolver_WordBreak(t *testing.T) {
	b := DefaultBindings()
	b.WordBreak = ","
	resolver := NewResolver(b)
	buffer := NewBufferFromLines([]string{"foo-bar,baz"})

	require.Equal(t, WordObject{Pos: Position{}, Count: 7}, resolver.Word(buffer, Position{}))
	require.Equal(t, WordObject{Pos: Position{}, Count: 3}, NewResolver(DefaultBindings()).Word(buffer, Position{}))
}

func TestResolver_WordOutOfBoundsFaults(t *testing.T) {
	resolver := NewResolver(DefaultBindings())
	buffer := NewBufferFromLines([]string{"abc"})

	require.Panics(t, func() { resolver.Word(buffer, Position{Row: 4}) })
	require.Panics(t, func() { resolver.LineEnd(buffer, Position{Row: -1}) })
}

func TestObjectRange_LastLine(t *testing.T) {
	buffer := NewBufferFromLines([]string{"abc", "def"})

	start, end := objectRange(buffer, LineObject{Row: 1})
	require.Equal(t, Position{0, 3}, start, "takes the preceding newline")
	require.Equal(t, Position{1, 3}, end)

	start, end = objectRange(buffer, LineObject{Row: 0})
	require.Equal(t, Position{0, 0}, start)
	require.Equal(t, Position{1, 0}, end)

	single := NewBufferFromLines([]string{"only"})
	start, end = objectRange(single, LineObject{Row: 0})
	require.Equal(t, Position{0, 0}, start)
	require.Equal(t, Position{0, 4}, end)
}
