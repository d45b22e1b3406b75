package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the review and edit screens
type KeyMap struct {
	// Review
	Correct key.Binding
	Wrong   key.Binding
	Reveal  key.Binding
	Restart key.Binding
	Edit    key.Binding
	Suspend key.Binding
	Help    key.Binding
	Quit    key.Binding

	// Edit
	NextField key.Binding
	Add       key.Binding
	Up        key.Binding
	Down      key.Binding
	Delete    key.Binding
	Close     key.Binding
	Interrupt key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Correct: key.NewBinding(
			key.WithKeys("right", "l", "c"),
			key.WithHelp("→/c", "correct"),
		),
		Wrong: key.NewBinding(
			key.WithKeys("left", "h", "x"),
			key.WithHelp("←/x", "wrong"),
		),
		Reveal: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "reveal"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "start again"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "+"),
			key.WithHelp("e", "edit cards"),
		),
		Suspend: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "suspend"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch field"),
		),
		Add: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add card"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Delete: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete card"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "done"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns a short help string
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Wrong, k.Correct, k.Reveal, k.Help, k.Quit}
}

// FullHelp returns the full help string
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Wrong, k.Correct, k.Reveal},
		{k.Restart, k.Edit, k.Suspend},
		{k.Help, k.Quit},
	}
}

// editKeys is the help.KeyMap shown on the edit screen
type editKeys struct {
	KeyMap
}

func (k editKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Add, k.Up, k.Down, k.Delete, k.Close}
}

func (k editKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
