// Package keymap declares the TUI key bindings. The bindings satisfy the
// bubbles help.KeyMap interface so the help view renders straight from the
// declarations.
package keymap

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the player responds to.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	TogglePlay key.Binding
	SeekBack   key.Binding
	SeekFwd    key.Binding
	TagPrev    key.Binding
	TagNext    key.Binding
	ToggleTags key.Binding
	Search     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// Default returns the standard bindings.
func Default() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous track"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next track"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play selected"),
		),
		TogglePlay: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "play/pause"),
		),
		SeekBack: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "seek back"),
		),
		SeekFwd: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "seek forward"),
		),
		TagPrev: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous tag"),
		),
		TagNext: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next tag"),
		),
		ToggleTags: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "expand/collapse tags"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the collapsed help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TogglePlay, k.Select, k.ToggleTags, k.Search, k.Help, k.Quit}
}

// FullHelp returns the bindings grouped into help view columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Search},
		{k.TogglePlay, k.SeekBack, k.SeekFwd},
		{k.ToggleTags, k.TagPrev, k.TagNext},
		{k.Help, k.Quit},
	}
}
