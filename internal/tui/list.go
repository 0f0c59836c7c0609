package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Zuo-Peng/launcher-plugins/internal/item"
	"github.com/Zuo-Peng/launcher-plugins/internal/render"
)

// linesPerItem is the number of terminal lines each item occupies.
const linesPerItem = 2

// renderList renders the left panel: items with scrolling.
func (m model) renderList(width, height int) string {
	if len(m.items) == 0 {
		msg := "Type a trigger to start"
		if m.errText != "" {
			msg = "Query failed"
		} else if m.query != "" {
			msg = "No results"
		}
		return lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(msg)
	}

	var lines []string
	for i, it := range m.items {
		if i < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		lines = append(lines, formatItemLines(it, width, i == m.cursor)...)
	}

	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatItemLines formats a single item as two lines:
//
//	line 1: [>] text
//	line 2:    subtext (dimmed)
func formatItemLines(it item.Item, width int, selected bool) []string {
	text := truncate(render.Plain(it.Text), width-2)
	var line1 string
	if selected {
		line1 = styleListSelected.Render("> " + text)
	} else {
		line1 = "  " + styleListNormal.Render(text)
	}

	sub := truncate(render.Plain(it.Subtext), width-4)
	line2 := "    " + lipgloss.NewStyle().Foreground(colorDim).Render(sub)

	return []string{line1, line2}
}

func truncate(s string, limit int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	if limit < 0 {
		limit = 0
	}
	if runewidth.StringWidth(s) > limit {
		s = runewidth.Truncate(s, limit, "")
	}
	return s
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := listHeight / linesPerItem
	if visibleItems < 1 {
		visibleItems = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}
