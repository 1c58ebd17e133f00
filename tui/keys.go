package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the table viewer.
// It implements the help.KeyMap interface for bubbles/help integration.
type keyMap struct {
	Quit        key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	GoTop       key.Binding
	GoBottom    key.Binding
	CycleBorder key.Binding
	ToggleColor key.Binding
	Reload      key.Binding
	Help        key.Binding
}

// ShortHelp returns the compact set of keybindings shown by default in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.ScrollDown, k.Reload, k.Quit}
}

// FullHelp returns the expanded keybinding groups shown when help is toggled.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown, k.GoTop, k.GoBottom},
		{k.CycleBorder, k.ToggleColor, k.Reload},
		{k.Help, k.Quit},
	}
}

// Bindings returns every viewer key binding in display order. The man page
// generator reads these so documentation stays in sync with the actual keys.
func Bindings() []key.Binding {
	return []key.Binding{
		keys.ScrollUp,
		keys.ScrollDown,
		keys.PageUp,
		keys.PageDown,
		keys.GoTop,
		keys.GoBottom,
		keys.CycleBorder,
		keys.ToggleColor,
		keys.Reload,
		keys.Help,
		keys.Quit,
	}
}

// keys holds the default key bindings used by the viewer.
var keys = keyMap{
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	ScrollUp:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/up", "scroll up")),
	ScrollDown:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/dn", "scroll down")),
	PageUp:      key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown:    key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	GoTop:       key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	GoBottom:    key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	CycleBorder: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "cycle border")),
	ToggleColor: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "toggle color")),
	Reload:      key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "reload")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}
