package adapter_bubbletea

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	editor "github.com/ionut-t/vir/core"
)

func (m Model) View() string {
	frame := m.editor.Frame()

	rows := make([]string, 0, frame.Height)
	for i, line := range frame.Lines {
		span, selected := frame.Highlights[i]
		cursorCol := -1
		if i == frame.Cursor.Row && m.isFocused {
			cursorCol = frame.Cursor.Col
		}
		rows = append(rows, m.renderRow(line, span, selected, cursorCol, frame.CursorShape))
	}
	for len(rows) < frame.Height {
		rows = append(rows, m.theme.TildeStyle.Render("~"))
	}

	content := strings.Join(rows, "\n")
	if !m.showStatusLine {
		return content
	}

	commandLine := m.theme.CommandLineStyle.Render(frame.Pending)

	if m.message != "" {
		commandLine = m.theme.MessageStyle.
			Background(m.theme.CommandLineStyle.GetBackground()).
			Render(m.message)
	}

	if m.err != nil {
		commandLine = m.theme.ErrorStyle.
			Background(m.theme.CommandLineStyle.GetBackground()).
			Render(m.err.Error())
	}

	statusLine := m.getStatusLine(frame)

	paddingWidth := m.width - lipgloss.Width(statusLine)
	if paddingWidth > 0 {
		statusLine += m.theme.StatusLineStyle.Render(strings.Repeat(" ", paddingWidth))
	}

	paddingWidth = m.width - lipgloss.Width(commandLine)
	if paddingWidth > 0 {
		commandLine += m.theme.CommandLineStyle.Render(strings.Repeat(" ", paddingWidth))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		statusLine,
		commandLine,
	)
}

// cell is one rune column of a frame row as it lands on the terminal.
type cell struct {
	text  string
	width int
}

// cellAt measures column col of runes. Columns past the text are blanks. Tabs
// and other control runes have no width of their own, so they are drawn as a
// single blank to keep one terminal cell per column.
func cellAt(runes []rune, col int) cell {
	if col >= len(runes) {
		return cell{" ", 1}
	}
	r := runes[col]
	if unicode.IsControl(r) {
		return cell{" ", 1}
	}
	return cell{string(r), runewidth.RuneWidth(r)}
}

// renderRow paints one frame row: the selection span in SelectionStyle and
// the caret at cursorCol (-1 for none). A caret past the end of the text is
// drawn on a blank cell. Wide runes take two cells, so the row is cut to the
// model width, dropping leading columns when the caret would fall off.
func (m Model) renderRow(line string, span editor.Span, selected bool, cursorCol int, shape editor.CursorShape) string {
	runes := []rune(line)
	cells := make([]cell, max(len(runes), cursorCol+1))
	for col := range cells {
		cells[col] = cellAt(runes, col)
	}
	if cursorCol >= 0 && cells[cursorCol].width == 0 {
		cells[cursorCol] = cell{" ", 1}
	}

	first := 0
	if cursorCol >= 0 && m.width > 0 {
		used := 0
		for _, c := range cells[:cursorCol+1] {
			used += c.width
		}
		for used > m.width && first < cursorCol {
			used -= cells[first].width
			first++
		}
	}

	var b strings.Builder
	var run strings.Builder
	runSelected := false
	used := 0

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runSelected {
			b.WriteString(m.theme.SelectionStyle.Render(run.String()))
		} else {
			b.WriteString(run.String())
		}
		run.Reset()
	}

	for col := first; col < len(cells); col++ {
		c := cells[col]
		if m.width > 0 && used+c.width > m.width {
			break
		}
		used += c.width

		if col == cursorCol {
			flush()
			b.WriteString(m.renderCursor(c.text, shape))
			continue
		}

		inSpan := selected && col >= span.Start && col <= span.End
		if inSpan != runSelected {
			flush()
			runSelected = inSpan
		}
		run.WriteString(c.text)
	}
	flush()

	return b.String()
}

// renderCursor draws the caret over ch. Blocks come from the bubbles cursor,
// which also drives the blink; the bar is drawn as an underline since a cell
// cannot be split.
func (m Model) renderCursor(ch string, shape editor.CursorShape) string {
	if shape != editor.CursorBlinkingBar {
		c := m.cursor
		c.SetChar(ch)
		return c.View()
	}

	if m.cursor.Mode() == cursor.CursorBlink && m.cursor.Blink {
		return ch
	}
	return m.theme.BarCursorStyle.Render(ch)
}

func (m Model) getStatusLine(frame editor.Frame) string {
	if m.StatusLineFunc != nil {
		return m.StatusLineFunc()
	}

	var modeStyle lipgloss.Style
	switch frame.Mode {
	case editor.InsertMode:
		modeStyle = m.theme.InsertModeStyle
	case editor.VisualMode:
		modeStyle = m.theme.VisualModeStyle
	default:
		modeStyle = m.theme.NormalModeStyle
	}

	statusLine := modeStyle.Render(" " + strings.ToUpper(frame.Status) + " ")

	name := ""
	if m.fileName != "" {
		name = " " + m.fileName
	}

	pos := m.editor.GetCursor()
	cursorInfo := fmt.Sprintf("%d:%d ", pos.Row+1, pos.Col+1)

	width := m.width - (lipgloss.Width(statusLine) + lipgloss.Width(name) + lipgloss.Width(cursorInfo))
	gap := strings.Repeat(" ", max(0, width))

	statusLine += m.theme.StatusLineStyle.Render(name + gap + cursorInfo)

	return statusLine
}
