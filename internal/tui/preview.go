package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/Zuo-Peng/launcher-plugins/internal/plugin"
	"github.com/Zuo-Peng/launcher-plugins/internal/render"
)

// loadCurrentPreview renders the selected item into the preview pane.
func (m *model) loadCurrentPreview() {
	it, ok := m.current()
	if !ok {
		return
	}
	key := previewCacheKey(m.query, m.cursor)
	if key == m.previewKey {
		return
	}
	m.preview.SetContent(render.Item(it, render.Options{
		Width: m.previewWidth(),
		Query: queryText(m.registry, m.query),
	}))
	m.preview.GotoTop()
	m.previewKey = key
}

// queryText is the part of the input a handler sees, used for highlighting.
func queryText(reg *plugin.Registry, raw string) string {
	_, q, _ := reg.Match(raw)
	return q.String
}

func previewCacheKey(query string, cursor int) string {
	return fmt.Sprintf("%s:%d", query, cursor)
}

// newViewport creates a new viewport model with the given dimensions.
func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.Style = stylePanelBorder
	return vp
}
