package widget

import (
	"fmt"
	"strconv"

	"github.com/Vansh-Raja/create-grid-selector/internal/grid"
)

// Colors used by the widget.
const (
	ColorSelected   = "#3D7BD9"
	ColorUnselected = "#E8F1FF"
	ColorLabel      = "#00000080"
	ColorValue      = "#000000"
)

// Element keys of the fixed parts of the widget.
const (
	KeyRoot          = "GridSelector"
	KeyTitle         = "Title"
	KeyCellGrid      = "CellGrid"
	KeyFooter        = "Footer"
	KeySelectedInfo  = "SelectedInfo"
	KeyTotalCells    = "TotalCells"
	KeyFooterValue   = "span"
	NoSelectionLabel = "None"
)

// Props are the inputs a parent passes to the grid selector.
type Props struct {
	Rows    int
	Columns int
}

// DefaultProps matches the defaults baked into the generated component.
func DefaultProps() Props {
	return Props{Rows: 8, Columns: 16}
}

// Dimensions converts props into grid dimensions.
func (p Props) Dimensions() grid.Dimensions {
	return grid.Dimensions{Rows: p.Rows, Columns: p.Columns}
}

// Context is the state threaded through the component tree.
type Context struct {
	Model *grid.Model
}

func (c *Context) selected(cell grid.Cell) bool {
	return c != nil && c.Model != nil && c.Model.IsSelected(cell)
}

// Component renders a view from props and the current state.
type Component interface {
	Render(props Props, ctx *Context) View
}

// CellButton is one clickable grid cell.
type CellButton struct {
	Cell grid.Cell
}

// Render implements Component.
func (b CellButton) Render(_ Props, ctx *Context) View {
	bg := ColorUnselected
	if ctx.selected(b.Cell) {
		bg = ColorSelected
	}
	return Merge(Button, View{
		Key: b.Cell.Key(),
		Style: map[string]string{
			"width":           "26px",
			"height":          "26px",
			"borderRadius":    "2px",
			"padding":         "0",
			"display":         "block",
			"backgroundColor": bg,
		},
	})
}

// FooterText is a dimmed label followed by a value span.
type FooterText struct {
	Key   string
	Label string
	Value string
}

// Render implements Component.
func (f FooterText) Render(_ Props, _ *Context) View {
	return Merge(P, View{
		Key:   f.Key,
		Text:  f.Label,
		Style: map[string]string{"color": ColorLabel},
		Children: []View{{
			Tag:   "span",
			Key:   KeyFooterValue,
			Text:  f.Value,
			Style: map[string]string{"color": ColorValue},
		}},
	})
}

// GridSelector is the whole widget: title, cell grid and footer.
type GridSelector struct{}

// Render implements Component.
func (GridSelector) Render(props Props, ctx *Context) View {
	root := Merge(Flex, View{
		Key: KeyRoot,
		Style: map[string]string{
			"flexDirection":   "column",
			"gap":             "26px",
			"backgroundColor": "white",
			"color":           "black",
			"padding":         "20px 26px",
			"borderRadius":    "26px",
			"boxShadow":       "0px 5px 35px -10px #00000059",
		},
	})
	root.Children = []View{
		{Tag: "h1", Key: KeyTitle, Text: "Grid Selection", Style: map[string]string{"fontSize": "A"}},
		renderCellGrid(props, ctx),
		renderFooter(props, ctx),
	}
	return root
}

func renderCellGrid(props Props, ctx *Context) View {
	v := Merge(Grid, View{
		Key: KeyCellGrid,
		Style: map[string]string{
			"width":           "auto",
			"height":          "auto",
			"templateColumns": fmt.Sprintf("repeat(%d, 1fr)", props.Columns),
			"aspectRatio":     fmt.Sprintf("%d/%d", props.Columns, props.Rows),
			"gap":             "4px",
			"padding":         "10px 6px",
			"boxShadow":       "0px 0px 50px 0px #0000000D",
		},
	})
	cells := grid.New(props.Dimensions()).Cells()
	v.Children = make([]View, 0, len(cells))
	for _, c := range cells {
		v.Children = append(v.Children, CellButton{Cell: c}.Render(props, ctx))
	}
	return v
}

func renderFooter(props Props, ctx *Context) View {
	bounds := NoSelectionLabel
	count := 0
	if ctx != nil && ctx.Model != nil {
		if b, ok := ctx.Model.Bounds(); ok {
			bounds = b.String()
		}
		count = ctx.Model.Count()
	}
	return Merge(Flex, View{
		Key: KeyFooter,
		Style: map[string]string{
			"justifyContent": "space-between",
			"padding":        "0",
			"fontSize":       "12px",
		},
		Children: []View{
			FooterText{Key: KeySelectedInfo, Label: "Selection coordinates: ", Value: bounds}.Render(props, ctx),
			FooterText{Key: KeyTotalCells, Label: "Total cells selected: ", Value: strconv.Itoa(count)}.Render(props, ctx),
		},
	})
}
