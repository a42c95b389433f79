// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	push    key.Binding
	pull    key.Binding
	sync    key.Binding
	upgrade key.Binding
	cancel  key.Binding
	refresh key.Binding
	info    key.Binding
	esc     key.Binding
	quit    key.Binding
}

var keys = keyMap{
	push:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "push")),
	pull:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "pull")),
	sync:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync")),
	upgrade: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upgrade")),
	cancel:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cancel")),
	refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	info:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "daemon info")),
	esc:     key.NewBinding(key.WithKeys("esc", "enter")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) hotKeys() string {
	return joinHelp(k.push, k.pull, k.sync, k.upgrade, k.cancel, k.refresh, k.info, k.quit)
}
