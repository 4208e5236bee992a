package ui

import (
	"strings"

	"github.com/Vansh-Raja/create-grid-selector/internal/grid"
	"github.com/Vansh-Raja/create-grid-selector/internal/widget"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	cellFace   = "  "
	cursorFace = "[]"
	cellGap    = " "
)

// GridRender holds per-frame options for RenderGridSelector.
type GridRender struct {
	Columns int
	Cursor  *grid.Cell    // nil hides the keyboard cursor
	Zone    *zone.Manager // nil disables click targets
}

// RenderGridSelector draws the widget view tree produced by
// widget.GridSelector.
func (s *Styles) RenderGridSelector(v widget.View, opts GridRender) string {
	parts := make([]string, 0, 4)
	if title, ok := widget.Find(v, widget.KeyTitle); ok {
		parts = append(parts, s.Title.Render(title.Text))
	}

	cells := ""
	if g, ok := widget.Find(v, widget.KeyCellGrid); ok {
		cells = s.renderCells(g, opts)
		parts = append(parts, cells)
	}

	if footer, ok := widget.Find(v, widget.KeyFooter); ok {
		parts = append(parts, "", s.renderFooter(footer, lipgloss.Width(cells)))
	}

	return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (s *Styles) renderCells(g widget.View, opts GridRender) string {
	columns := opts.Columns
	if columns <= 0 {
		columns = 1
	}

	var rows []string
	var row []string
	for _, child := range g.Children {
		row = append(row, s.renderCell(child, opts))
		if len(row) == columns {
			rows = append(rows, strings.Join(row, cellGap))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, cellGap))
	}
	return strings.Join(rows, "\n")
}

func (s *Styles) renderCell(v widget.View, opts GridRender) string {
	style := s.Cell
	face := cellFace
	if opts.Cursor != nil {
		if c, err := grid.ParseKey(v.Key); err == nil && c == *opts.Cursor {
			style = s.CursorMark
			face = cursorFace
		}
	}
	if bg := v.StyleValue("backgroundColor"); bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}

	out := style.Render(face)
	if opts.Zone != nil {
		out = opts.Zone.Mark(v.Key, out)
	}
	return out
}

func (s *Styles) renderFooter(footer widget.View, width int) string {
	texts := make([]string, 0, len(footer.Children))
	for _, child := range footer.Children {
		value := ""
		if span, ok := widget.Find(child, widget.KeyFooterValue); ok {
			value = span.Text
		}
		texts = append(texts, s.FooterLabel.Render(child.Text)+s.FooterValue.Render(value))
	}
	if len(texts) != 2 {
		return lipgloss.JoinVertical(lipgloss.Left, texts...)
	}

	// justify-content: space-between, or stacked when the grid is too narrow.
	spacing := width - lipgloss.Width(texts[0]) - lipgloss.Width(texts[1])
	if spacing < 2 {
		return lipgloss.JoinVertical(lipgloss.Left, texts...)
	}
	return texts[0] + strings.Repeat(" ", spacing) + texts[1]
}
