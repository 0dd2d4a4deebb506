package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up           key.Binding
	down         key.Binding
	enter        key.Binding
	esc          key.Binding
	tab          key.Binding
	backtab      key.Binding
	quit         key.Binding
	copy         key.Binding
	version      key.Binding
	refresh      key.Binding
	resetHistory key.Binding
	resetBundles key.Binding
	yes          key.Binding
	no           key.Binding
}

var keys = keyMap{
	up:           key.NewBinding(key.WithKeys("up", "k")),
	down:         key.NewBinding(key.WithKeys("down", "j")),
	enter:        key.NewBinding(key.WithKeys("enter")),
	esc:          key.NewBinding(key.WithKeys("esc")),
	tab:          key.NewBinding(key.WithKeys("tab")),
	backtab:      key.NewBinding(key.WithKeys("shift+tab")),
	quit:         key.NewBinding(key.WithKeys("ctrl+c")),
	copy:         key.NewBinding(key.WithKeys("c")),
	version:      key.NewBinding(key.WithKeys("v")),
	refresh:      key.NewBinding(key.WithKeys("r")),
	resetHistory: key.NewBinding(key.WithKeys("ctrl+r")),
	resetBundles: key.NewBinding(key.WithKeys("ctrl+b")),
	yes:          key.NewBinding(key.WithKeys("y")),
	no:           key.NewBinding(key.WithKeys("n", "esc")),
}
