package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	// Widget colors
	ColorCellUnselected = lipgloss.Color("#E8F1FF") // Pale blue
	ColorCursor         = lipgloss.Color("#F59E0B") // Amber

	// Status colors
	ColorAccent = lipgloss.Color("#10B981") // Green
	ColorDanger = lipgloss.Color("#EF4444") // Red

	// Neutral colors
	ColorText    = lipgloss.Color("#E5E7EB") // Light gray
	ColorTextDim = lipgloss.Color("#9CA3AF") // Medium gray
	ColorBorder  = lipgloss.Color("#4B5563") // Dark gray
)

// Styles defines all UI styles
type Styles struct {
	// Layout
	App   lipgloss.Style
	Panel lipgloss.Style

	// Widget
	Title       lipgloss.Style
	Cell        lipgloss.Style
	CursorMark  lipgloss.Style
	FooterLabel lipgloss.Style
	FooterValue lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style

	// Help
	Help lipgloss.Style
}

// NewStyles creates a new Styles instance with default styling
func NewStyles() *Styles {
	s := &Styles{}

	s.App = lipgloss.NewStyle().
		Padding(1, 2)

	// The widget card: 20px 26px padding and a 26px radius on the web.
	s.Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(1, 3)

	s.Title = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true).
		MarginBottom(1)

	s.Cell = lipgloss.NewStyle().
		Background(ColorCellUnselected)

	s.CursorMark = lipgloss.NewStyle().
		Background(ColorCellUnselected).
		Foreground(ColorCursor).
		Bold(true)

	s.FooterLabel = lipgloss.NewStyle().
		Foreground(ColorTextDim)

	s.FooterValue = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)

	s.Success = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)

	s.Error = lipgloss.NewStyle().
		Foreground(ColorDanger).
		Bold(true)

	s.Help = lipgloss.NewStyle().
		MarginTop(1)

	return s
}
