package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Click key.Binding
	Reset key.Binding
	Copy  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func newKeyMap(vim bool) keyMap {
	up, down, left, right := []string{"up"}, []string{"down"}, []string{"left"}, []string{"right"}
	if vim {
		up, down, left, right = append(up, "k"), append(down, "j"), append(left, "h"), append(right, "l")
	}
	return keyMap{
		Up:    key.NewBinding(key.WithKeys(up...), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys(down...), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys(left...), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys(right...), key.WithHelp("→", "right")),
		Click: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "clear")),
		Copy:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy coords")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Click, k.Reset, k.Copy},
		{k.Help, k.Quit},
	}
}
