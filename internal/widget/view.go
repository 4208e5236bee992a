// Package widget describes the grid selector as a tree of views.
//
// Components render from immutable props plus an explicit Context carrying
// the selection model. What the Symbols framework expresses with `extend` is
// expressed here with Merge: a base view combined with overrides.
package widget

// View is an immutable description of one element and its children.
type View struct {
	Tag      string
	Key      string
	Text     string
	Style    map[string]string
	Children []View
}

// Merge returns base with override applied on top. Non-empty scalar fields of
// override win, styles merge key by key and override children follow the
// base children.
func Merge(base, override View) View {
	out := View{
		Tag:  base.Tag,
		Key:  base.Key,
		Text: base.Text,
	}
	if override.Tag != "" {
		out.Tag = override.Tag
	}
	if override.Key != "" {
		out.Key = override.Key
	}
	if override.Text != "" {
		out.Text = override.Text
	}

	if len(base.Style)+len(override.Style) > 0 {
		out.Style = make(map[string]string, len(base.Style)+len(override.Style))
		for k, v := range base.Style {
			out.Style[k] = v
		}
		for k, v := range override.Style {
			out.Style[k] = v
		}
	}

	if len(base.Children)+len(override.Children) > 0 {
		out.Children = make([]View, 0, len(base.Children)+len(override.Children))
		out.Children = append(out.Children, base.Children...)
		out.Children = append(out.Children, override.Children...)
	}
	return out
}

// Find returns the first view in the tree (depth first) carrying key.
func Find(v View, key string) (View, bool) {
	if v.Key == key {
		return v, true
	}
	for _, c := range v.Children {
		if found, ok := Find(c, key); ok {
			return found, true
		}
	}
	return View{}, false
}

// StyleValue returns the style property or "" when unset.
func (v View) StyleValue(name string) string {
	return v.Style[name]
}

// Base elements of the component library the widget builds on.
var (
	Button = View{Tag: "button"}
	Flex   = View{Tag: "div", Style: map[string]string{"display": "flex"}}
	Grid   = View{Tag: "div", Style: map[string]string{"display": "grid"}}
	P      = View{Tag: "p", Style: map[string]string{"margin": "0px"}}
)
