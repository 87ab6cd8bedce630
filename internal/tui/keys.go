package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	left       key.Binding
	right      key.Binding
	toggle     key.Binding
	tab        key.Binding
	regenerate key.Binding
	copy       key.Binding
	save       key.Binding
	delete     key.Binding
	clear      key.Binding
	export     key.Binding
	theme      key.Binding
	help       key.Binding
	quit       key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "shorter")),
	right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "longer")),
	toggle:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "toggle")),
	tab:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	regenerate: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "regenerate")),
	copy:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
	save:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
	delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete entry")),
	clear:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear history")),
	export:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export csv")),
	theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.regenerate, k.copy, k.save, k.tab, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.left, k.right, k.toggle},
		{k.regenerate, k.copy, k.save, k.tab},
		{k.delete, k.clear, k.export},
		{k.theme, k.help, k.quit},
	}
}
