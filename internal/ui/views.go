package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/jex/internal/navigator"
	"github.com/oakwood-commons/jex/pkg/core"
)

const minPaneWidth = 10

// render draws the whole screen from one frame snapshot.
func (m *Model) render() string {
	frame := m.ctrl.Frame()
	width, height := m.winWidth, m.winHeight
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	statusBar := m.renderStatusBar(frame, width)
	contentHeight := height - 1

	var content string
	switch {
	case frame.Confirm != core.ConfirmNone:
		content = m.renderDialog(frame, width, contentHeight)
	case frame.Session != core.SessionIdle:
		content = m.renderEdit(frame, width, contentHeight)
	default:
		content = m.renderWorkspace(frame, width, contentHeight)
	}

	return content + "\n" + statusBar
}

// renderWorkspace lays out the tree pane and, when open, the preview pane.
func (m *Model) renderWorkspace(frame core.Frame, width, height int) string {
	if frame.Preview == nil {
		return m.renderTree(frame, width, height)
	}

	previewWidth := width * frame.Preview.Pct / 100
	if previewWidth < minPaneWidth {
		previewWidth = minPaneWidth
	}
	treeWidth := width - previewWidth
	if treeWidth < minPaneWidth {
		treeWidth = minPaneWidth
		previewWidth = width - treeWidth
	}

	tree := m.renderTree(frame, treeWidth, height)
	preview := m.renderPreview(frame.Preview, previewWidth, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, tree, preview)
}

// renderTree draws the row listing with the cursor kept in view.
func (m *Model) renderTree(frame core.Frame, width, height int) string {
	top := scrollWindow(frame.Cursor, len(frame.Rows), height)

	lines := make([]string, 0, height)
	for i := top; i < len(frame.Rows) && i-top < height; i++ {
		lines = append(lines, m.renderRow(frame.Rows[i], i == frame.Cursor, width))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// scrollWindow returns the first visible row index for a listing of n rows
// in a viewport of the given height, keeping cursor inside.
func scrollWindow(cursor, n, height int) int {
	if height <= 0 || n <= height {
		return 0
	}
	top := cursor - height/2
	if top > n-height {
		top = n - height
	}
	if top < 0 {
		top = 0
	}
	return top
}

func (m *Model) renderRow(row navigator.Row, selected bool, width int) string {
	marker := "  "
	if row.Expandable {
		if row.Expanded {
			marker = "▼ "
		} else {
			marker = "▶ "
		}
	}
	prefix := strings.Repeat("--", row.Depth) + marker + row.Label
	text := prefix
	if row.Summary != "" {
		text += "  " + row.Summary
	}
	text = runewidth.Truncate(text, width, "…")

	if m.noColor {
		if selected {
			return "\x1b[7m" + text + "\x1b[27m"
		}
		return text
	}
	if selected {
		return lipgloss.NewStyle().
			Foreground(m.theme.SelectedFG).
			Background(m.theme.SelectedBG).
			Width(width).
			Render(text)
	}
	// Dim the summary, unless truncation already ate into the label.
	if strings.HasPrefix(text, prefix) && len(text) > len(prefix) {
		summary := lipgloss.NewStyle().
			Foreground(m.theme.SummaryFG).
			Render(text[len(prefix):])
		return prefix + summary
	}
	return text
}

// renderPreview draws the bordered preview pane with line numbers.
func (m *Model) renderPreview(pv *core.PreviewFrame, width, height int) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Width(width - 2).
		Height(height - 2)
	if !m.noColor {
		border = border.BorderForeground(m.theme.BorderFG)
	}

	innerWidth := width - 2
	innerHeight := height - 2

	if pv.State.Unavailable() {
		notice := lipgloss.Place(innerWidth, innerHeight,
			lipgloss.Center, lipgloss.Center, "Preview not available")
		return border.Render(notice)
	}

	lines := pv.State.Lines()
	numDigits := len(fmt.Sprint(len(lines)))
	if numDigits < 3 {
		numDigits = 3
	}

	contentWidth := innerWidth - numDigits - 1
	pv.State.Clamp(contentWidth, innerHeight)
	yOff, xOff := pv.State.Offsets()

	numStyle := lipgloss.NewStyle()
	if !m.noColor {
		numStyle = numStyle.Foreground(m.theme.LineNumFG)
	}

	out := make([]string, 0, innerHeight)
	for i := 0; i < innerHeight && yOff+i < len(lines); i++ {
		num := fmt.Sprintf("%*d", numDigits, yOff+i+1)
		line := cutLine(lines[yOff+i], xOff, contentWidth)
		out = append(out, numStyle.Render(num)+" "+line)
	}
	return border.Render(strings.Join(out, "\n"))
}

// cutLine slices a line horizontally by display cells.
func cutLine(line string, xOff, width int) string {
	if xOff > 0 {
		trimmed := runewidth.TruncateLeft(line, xOff, "")
		line = trimmed
	}
	return runewidth.Truncate(line, width, "")
}

// renderEdit draws the tree with the edit prompt at the bottom.
func (m *Model) renderEdit(frame core.Frame, width, height int) string {
	label := "Edit value"
	if frame.Session == core.SessionEditingKey {
		label = "Rename key"
	}

	promptStyle := lipgloss.NewStyle()
	errStyle := lipgloss.NewStyle()
	if !m.noColor {
		promptStyle = promptStyle.Foreground(m.theme.PromptFG).Bold(true)
		errStyle = errStyle.Foreground(m.theme.ErrorFG)
	}

	promptLines := []string{promptStyle.Render(label), m.input.View()}
	if frame.EditErr != "" {
		promptLines = append(promptLines, errStyle.Render(frame.EditErr))
	}
	prompt := strings.Join(promptLines, "\n")
	promptHeight := len(promptLines)

	tree := m.renderTree(frame, width, height-promptHeight)
	return tree + "\n" + prompt
}

// renderDialog draws a centered yes/no box over an empty background.
func (m *Model) renderDialog(frame core.Frame, width, height int) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)
	if !m.noColor {
		boxStyle = boxStyle.BorderForeground(m.theme.TitleFG)
	}
	box := boxStyle.Render(frame.ConfirmPrompt + "\n\n[y]es  [n]o")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderStatusBar draws the bottom line: document path, dirty marker, and
// the last status message.
func (m *Model) renderStatusBar(frame core.Frame, width int) string {
	left := m.docPath
	if frame.Dirty {
		left += " [+]"
	}
	right := frame.Status

	gap := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	bar = runewidth.Truncate(bar, width, "")

	if m.noColor {
		return bar
	}
	style := lipgloss.NewStyle().Foreground(m.theme.StatusFG)
	if frame.Dirty {
		style = lipgloss.NewStyle().Foreground(m.theme.DirtyFG)
	}
	return style.Render(bar)
}
