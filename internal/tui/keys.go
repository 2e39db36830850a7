package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up           key.Binding
	down         key.Binding
	enter        key.Binding
	esc          key.Binding
	tab          key.Binding
	backtab      key.Binding
	search       key.Binding
	stop         key.Binding
	favorite     key.Binding
	copy         key.Binding
	buildInfo    key.Binding
	clearHistory key.Binding
	quit         key.Binding
	forceQuit    key.Binding
}

var keys = keyMap{
	up:           key.NewBinding(key.WithKeys("up", "k")),
	down:         key.NewBinding(key.WithKeys("down", "j")),
	enter:        key.NewBinding(key.WithKeys("enter")),
	esc:          key.NewBinding(key.WithKeys("esc")),
	tab:          key.NewBinding(key.WithKeys("tab")),
	backtab:      key.NewBinding(key.WithKeys("shift+tab")),
	search:       key.NewBinding(key.WithKeys("/")),
	stop:         key.NewBinding(key.WithKeys("s")),
	favorite:     key.NewBinding(key.WithKeys("f")),
	copy:         key.NewBinding(key.WithKeys("c")),
	buildInfo:    key.NewBinding(key.WithKeys("v")),
	clearHistory: key.NewBinding(key.WithKeys("x")),
	quit:         key.NewBinding(key.WithKeys("q")),
	forceQuit:    key.NewBinding(key.WithKeys("ctrl+c")),
}

const (
	helpBrowse = "enter play  s stop  f favorite  c copy  / search  tab view  v info  q quit"
	helpSearch = "enter search  esc/tab lists  ctrl+c quit"
)
