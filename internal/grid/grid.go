// Package grid holds the selection state of the grid selector widget.
//
// A selection is always the rectangle spanning from the origin to the most
// recently clicked cell. Clicking replaces the selection; it never toggles
// or extends it.
package grid

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const keyPrefix = "cell"

// Dimensions is the size of a grid. Both values are expected to be positive;
// the CLI validates them before a model is built.
type Dimensions struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// Size returns the number of cells in the grid.
func (d Dimensions) Size() int {
	if d.Rows <= 0 || d.Columns <= 0 {
		return 0
	}
	return d.Rows * d.Columns
}

// Cell identifies one grid cell by its column (X) and row (Y).
type Cell struct {
	X int
	Y int
}

// String returns the "x,y" form used in selection readouts.
func (c Cell) String() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// Key returns the element key of the cell, e.g. "cell3,2".
func (c Cell) Key() string {
	return keyPrefix + c.String()
}

// ParseKey parses an element key ("cell3,2") or a bare coordinate ("3,2").
func ParseKey(key string) (Cell, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(key), keyPrefix)
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return Cell{}, fmt.Errorf("invalid cell key: %q", key)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Cell{}, fmt.Errorf("invalid cell key %q: %w", key, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Cell{}, fmt.Errorf("invalid cell key %q: %w", key, err)
	}
	return Cell{X: x, Y: y}, nil
}

// Model is the selection state of one widget instance.
type Model struct {
	dims     Dimensions
	selected map[Cell]struct{} // nil until the first click
}

// New creates a model with no selection.
func New(dims Dimensions) *Model {
	return &Model{dims: dims}
}

// Dimensions returns the grid size the model was created with.
func (m *Model) Dimensions() Dimensions {
	return m.dims
}

// Cells enumerates every cell in row-major order.
func (m *Model) Cells() []Cell {
	cells := make([]Cell, 0, m.dims.Size())
	for y := 0; y < m.dims.Rows; y++ {
		for x := 0; x < m.dims.Columns; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

// Contains reports whether c lies inside the grid.
func (m *Model) Contains(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < m.dims.Columns && c.Y < m.dims.Rows
}

// Click replaces the selection with every cell whose coordinates are both
// less than or equal to c's.
func (m *Model) Click(c Cell) {
	next := make(map[Cell]struct{}, (c.X+1)*(c.Y+1))
	for i := 0; i <= c.X; i++ {
		for j := 0; j <= c.Y; j++ {
			next[Cell{X: i, Y: j}] = struct{}{}
		}
	}
	m.selected = next
}

// Reset drops the selection.
func (m *Model) Reset() {
	m.selected = nil
}

// IsSelected reports whether c is part of the current selection.
func (m *Model) IsSelected(c Cell) bool {
	_, ok := m.selected[c]
	return ok
}

// Count returns the number of selected cells.
func (m *Model) Count() int {
	return len(m.selected)
}

// Bounds returns the largest X and Y across the selection. ok is false
// when nothing is selected.
func (m *Model) Bounds() (b Cell, ok bool) {
	if len(m.selected) == 0 {
		return Cell{}, false
	}
	b = Cell{X: -1, Y: -1}
	for c := range m.selected {
		if c.X > b.X {
			b.X = c.X
		}
		if c.Y > b.Y {
			b.Y = c.Y
		}
	}
	return b, true
}

// Selection returns the selected cells in row-major order.
func (m *Model) Selection() []Cell {
	out := make([]Cell, 0, len(m.selected))
	for c := range m.selected {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
