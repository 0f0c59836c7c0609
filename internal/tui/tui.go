package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"

	"github.com/Zuo-Peng/launcher-plugins/internal/item"
	"github.com/Zuo-Peng/launcher-plugins/internal/plugin"
)

const debounceDelay = 200 * time.Millisecond

// Recorder stores executed actions. *history.DB implements it.
type Recorder interface {
	Add(plugin, query string, it item.Item, a item.Action) error
}

// message types

type queryResultMsg struct {
	query string
	items []item.Item
	err   error
}

type debounceTickMsg struct {
	query string
}

// model

type model struct {
	registry   *plugin.Registry
	query      string
	items      []item.Item
	errText    string
	cursor     int
	listOffset int
	input      textinput.Model
	preview    viewport.Model
	previewKey string // "query:cursor" to avoid duplicate renders
	cancel     context.CancelFunc
	width      int
	height     int
	ready      bool
	quitting   bool
	chosen     *item.Item
}

func initialModel(reg *plugin.Registry, query string) model {
	ti := textinput.New()
	ti.Placeholder = "dict Hund, jb project..."
	ti.Focus()
	ti.SetValue(query)
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 256

	return model{
		registry: reg,
		query:    query,
		input:    ti,
		preview:  viewport.New(0, 0),
	}
}

// Run starts the launcher and blocks until it exits.
// If the user picks an item, its first action runs after the screen is restored.
func Run(reg *plugin.Registry, runner item.Runner, rec Recorder, log hclog.Logger, query string) error {
	m := initialModel(reg, query)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	fm := finalModel.(model)
	if fm.cancel != nil {
		fm.cancel()
	}
	if fm.chosen == nil {
		return nil
	}
	return runChosen(reg, runner, rec, log, fm.query, *fm.chosen)
}

func runChosen(reg *plugin.Registry, runner item.Runner, rec Recorder, log hclog.Logger, query string, it item.Item) error {
	a, err := runner.RunIndex(it, 0)
	if err != nil {
		return err
	}
	switch a.Kind {
	case item.ActionClip:
		fmt.Printf("Copied to clipboard: %s\n", a.Text)
	case item.ActionProc:
		fmt.Printf("Started: %s\n", a.Payload())
	}

	if rec == nil {
		return nil
	}
	name := ""
	if h, _, ok := reg.Match(query); ok {
		name = h.Name()
	}
	if err := rec.Add(name, query, it, a); err != nil {
		log.Warn("could not record action", "error", err)
	}
	return nil
}

// Init runs the initial query, if any.
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.query != "" {
		cmds = append(cmds, m.scheduleDebouncedQuery(m.query))
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.preview = newViewport(m.previewWidth(), m.panelHeight())
		m.previewKey = ""
		m.loadCurrentPreview()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Enter):
			if it, ok := m.current(); ok && len(it.Actions) > 0 {
				m.chosen = &it
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, keys.Complete):
			if it, ok := m.current(); ok && it.Completion != "" {
				m.input.SetValue(it.Completion)
				m.input.CursorEnd()
				m.query = it.Completion
				return m, m.scheduleDebouncedQuery(m.query)
			}
			return m, nil

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustListScroll(m.panelHeight())
				m.loadCurrentPreview()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
				m.adjustListScroll(m.panelHeight())
				m.loadCurrentPreview()
			}
			return m, nil

		case key.Matches(msg, keys.PreviewUp):
			m.preview.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PreviewDn):
			m.preview.LineDown(m.panelHeight() / 2)
			return m, nil
		}

		// Pass remaining keys to text input
		var tiCmd tea.Cmd
		m.input, tiCmd = m.input.Update(msg)
		cmds = append(cmds, tiCmd)

		if newQuery := m.input.Value(); newQuery != m.query {
			m.query = newQuery
			cmds = append(cmds, m.scheduleDebouncedQuery(newQuery))
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if !m.ready || len(m.items) == 0 {
			return m, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
			if idx, ok := m.hitTest(msg.X, msg.Y); ok && idx != m.cursor {
				m.cursor = idx
				m.adjustListScroll(m.panelHeight())
				m.loadCurrentPreview()
			}
			return m, nil
		}
		var vpCmd tea.Cmd
		m.preview, vpCmd = m.preview.Update(msg)
		return m, vpCmd

	case debounceTickMsg:
		// Only dispatch if the query hasn't changed since the tick was scheduled
		if msg.query != m.query {
			return m, nil
		}
		if m.cancel != nil {
			m.cancel()
		}
		ctx, cancel := context.WithCancel(context.Background())
		m.cancel = cancel
		return m, dispatchCmd(ctx, m.registry, msg.query)

	case queryResultMsg:
		if msg.query != m.query {
			return m, nil // stale
		}
		m.cursor = 0
		m.listOffset = 0
		m.previewKey = ""
		if msg.err != nil {
			m.items = nil
			m.errText = msg.err.Error()
			m.preview.SetContent("Error: " + m.errText)
			return m, nil
		}
		m.items = msg.items
		m.errText = ""
		if len(m.items) == 0 {
			m.preview.SetContent("")
		}
		m.loadCurrentPreview()
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

// View renders the full TUI.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	previewW := m.previewWidth()
	panelH := m.panelHeight()

	inputRow := m.input.View()

	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(m.renderList(listW, panelH))

	m.preview.Width = previewW
	m.preview.Height = panelH
	previewPanel := styleActiveBorder.
		Width(previewW).
		Height(panelH).
		Render(m.preview.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)

	return lipgloss.JoinVertical(lipgloss.Left, inputRow, panels, m.statusBar())
}

// helper methods

func (m model) current() (item.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return item.Item{}, false
	}
	return m.items[m.cursor], true
}

func (m model) listWidth() int {
	if m.width <= 0 {
		return 40
	}
	w := m.width*45/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) previewWidth() int {
	if m.width <= 0 {
		return 60
	}
	w := m.width*55/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// input row (1) + status bar (1) + borders (4)
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

// hitTest maps a click to a list item index.
func (m model) hitTest(x, y int) (int, bool) {
	contentYStart := 2 // input row (1) + top border (1)
	if y < contentYStart || y >= contentYStart+m.panelHeight() {
		return -1, false
	}
	if x < 1 || x > m.listWidth() {
		return -1, false
	}
	idx := m.listOffset + (y-contentYStart)/linesPerItem
	if idx >= len(m.items) {
		return -1, false
	}
	return idx, true
}

func (m model) statusBar() string {
	parts := []string{
		fmt.Sprintf("%d items", len(m.items)),
		"up/dn navigate",
		"Tab complete",
		"Enter run",
		"Esc quit",
	}
	if h, _, ok := m.registry.Match(m.query); ok {
		parts = append([]string{h.Name()}, parts...)
	}
	return styleStatusBar.Render(strings.Join(parts, " | "))
}

func (m model) scheduleDebouncedQuery(query string) tea.Cmd {
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return debounceTickMsg{query: query}
	})
}

func dispatchCmd(ctx context.Context, reg *plugin.Registry, query string) tea.Cmd {
	return func() tea.Msg {
		items, err := reg.Dispatch(ctx, query)
		return queryResultMsg{query: query, items: items, err: err}
	}
}
