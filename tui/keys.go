package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	Wall  key.Binding
	Start key.Binding
	Goal  key.Binding

	NextAlgo key.Binding
	Algo     key.Binding
	Run      key.Binding
	Cancel   key.Binding

	Randomize key.Binding
	Clear     key.Binding
	Reset     key.Binding
	Faster    key.Binding
	Slower    key.Binding

	Help key.Binding
	Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),

		Wall:  key.NewBinding(key.WithKeys(" ", "space", "w"), key.WithHelp("space", "toggle wall")),
		Start: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "set start")),
		Goal:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "set goal")),

		NextAlgo: key.NewBinding(key.WithKeys("tab", "a"), key.WithHelp("tab", "next algorithm")),
		Algo:     key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "pick algorithm")),

		Run:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "visualize")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop run")),

		Randomize: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "random walls")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear visited")),
		Reset:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset grid")),

		Faster: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.NextAlgo, k.Wall, k.Randomize, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Wall, k.Start, k.Goal},
		{k.Run, k.Cancel, k.NextAlgo, k.Algo},
		{k.Randomize, k.Clear, k.Reset},
		{k.Faster, k.Slower, k.Help, k.Quit},
	}
}
