// Package app is the terminal preview of the grid selector widget.
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/Vansh-Raja/create-grid-selector/internal/grid"
	"github.com/Vansh-Raja/create-grid-selector/internal/ui"
	"github.com/Vansh-Raja/create-grid-selector/internal/widget"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Model represents the preview state
type Model struct {
	props      widget.Props
	grid       *grid.Model
	cursor     grid.Cell
	showCursor bool

	keys   keyMap
	help   help.Model
	zone   *zone.Manager
	styles *ui.Styles

	width  int
	height int

	// status uses the "✓"/"⚠" prefixes to pick its style.
	status    string
	statusSeq int

	copyText func(string) error
}

type clearStatusMsg struct {
	seq int
}

// NewModel creates a preview for a grid of the given size.
func NewModel(props widget.Props, vimKeys bool) Model {
	return Model{
		props:    props,
		grid:     grid.New(props.Dimensions()),
		keys:     newKeyMap(vimKeys),
		help:     help.New(),
		zone:     zone.New(),
		styles:   ui.NewStyles(),
		copyText: clipboard.WriteAll,
	}
}

// Selection exposes the model driving the preview.
func (m Model) Selection() *grid.Model {
	return m.grid
}

// Init initializes the preview
func (m Model) Init() tea.Cmd {
	return tea.HideCursor
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if c, ok := m.cellAt(msg); ok {
			m.showCursor = false
			m.click(c)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.zone != nil {
			m.zone.Close()
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Click):
		m.showCursor = true
		m.click(m.cursor)
	case key.Matches(msg, m.keys.Reset):
		m.grid.Reset()
		return m.setStatus("✓ Selection cleared")
	case key.Matches(msg, m.keys.Copy):
		return m.copyBounds()
	}
	return m, nil
}

func (m *Model) moveCursor(dx, dy int) {
	m.showCursor = true
	next := grid.Cell{X: m.cursor.X + dx, Y: m.cursor.Y + dy}
	if m.grid.Contains(next) {
		m.cursor = next
	}
}

// click dispatches a cell click; cells outside the grid are ignored.
func (m *Model) click(c grid.Cell) {
	if !m.grid.Contains(c) {
		return
	}
	m.grid.Click(c)
	m.cursor = c
}

func (m Model) cellAt(msg tea.MouseMsg) (grid.Cell, bool) {
	if m.zone == nil {
		return grid.Cell{}, false
	}
	for _, c := range m.grid.Cells() {
		if z := m.zone.Get(c.Key()); z != nil && z.InBounds(msg) {
			return c, true
		}
	}
	return grid.Cell{}, false
}

func (m Model) boundsText() string {
	if b, ok := m.grid.Bounds(); ok {
		return b.String()
	}
	return widget.NoSelectionLabel
}

func (m Model) copyBounds() (tea.Model, tea.Cmd) {
	text := m.boundsText()
	if err := m.copyText(text); err != nil {
		return m.setStatus(fmt.Sprintf("⚠ clipboard: %v", err))
	}
	return m.setStatus("✓ Copied " + text)
}

func (m Model) setStatus(s string) (tea.Model, tea.Cmd) {
	m.status = s
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(statusDuration(s), func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func statusDuration(msg string) time.Duration {
	if strings.HasPrefix(strings.TrimSpace(msg), "✓") {
		return 3 * time.Second
	}
	return 8 * time.Second
}

// View renders the preview
func (m Model) View() string {
	opts := ui.GridRender{Columns: m.grid.Dimensions().Columns, Zone: m.zone}
	if m.showCursor {
		cursor := m.cursor
		opts.Cursor = &cursor
	}
	view := widget.GridSelector{}.Render(m.props, &widget.Context{Model: m.grid})

	parts := []string{m.styles.RenderGridSelector(view, opts)}
	switch {
	case strings.HasPrefix(m.status, "✓"):
		parts = append(parts, m.styles.Success.Render(m.status))
	case m.status != "":
		parts = append(parts, m.styles.Error.Render(m.status))
	}
	parts = append(parts, m.styles.Help.Render(m.help.View(m.keys)))

	content := m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	if m.zone == nil {
		return content
	}
	return m.zone.Scan(content)
}
