package ui

import "github.com/charmbracelet/bubbles/key"

// libraryKeyMap holds the bindings for the library (tree) view.
type libraryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Edit   key.Binding
	Reload key.Binding
	Filter key.Binding
	Quit   key.Binding
}

func newLibraryKeyMap() libraryKeyMap {
	return libraryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit file"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k libraryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Edit, k.Reload, k.Filter, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k libraryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.Edit, k.Reload, k.Filter, k.Quit},
	}
}

// fillKeyMap holds the bindings for the fill (placeholder editing) view.
// Plain characters go to the focused input, so every action needs a
// modifier or a navigation key.
type fillKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Reroll   key.Binding
	Copy     key.Binding
	Markdown key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func newFillKeyMap() fillKeyMap {
	return fillKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Reroll: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reroll"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		Markdown: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "markdown"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k fillKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Reroll, k.Copy, k.Markdown, k.Back}
}

// FullHelp implements help.KeyMap.
func (k fillKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Reroll, k.Copy, k.Markdown, k.Back, k.Quit},
	}
}
