// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	search    key.Binding
	reload    key.Binding
	addRest   key.Binding
	signUp    key.Binding
	login     key.Binding
	mine      key.Binding
	version   key.Binding
	favorite  key.Binding
	delete    key.Binding
	copy      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	search:    key.NewBinding(key.WithKeys("/")),
	reload:    key.NewBinding(key.WithKeys("r")),
	addRest:   key.NewBinding(key.WithKeys("a")),
	signUp:    key.NewBinding(key.WithKeys("s")),
	login:     key.NewBinding(key.WithKeys("l")),
	mine:      key.NewBinding(key.WithKeys("m")),
	version:   key.NewBinding(key.WithKeys("v")),
	favorite:  key.NewBinding(key.WithKeys("f")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
