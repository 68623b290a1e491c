// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	copy     key.Binding
	copyID   key.Binding
	wait     key.Binding
	download key.Binding
	reload   key.Binding
	version  key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	copy:     key.NewBinding(key.WithKeys("c")),
	copyID:   key.NewBinding(key.WithKeys("ctrl+y")),
	wait:     key.NewBinding(key.WithKeys("w")),
	download: key.NewBinding(key.WithKeys("d")),
	reload:   key.NewBinding(key.WithKeys("r")),
	version:  key.NewBinding(key.WithKeys("v")),
}
