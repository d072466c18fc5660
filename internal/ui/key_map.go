package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	back   key.Binding
	tab    key.Binding
	reveal key.Binding
	quiz   key.Binding
	search key.Binding
	home   key.Binding
	login  key.Binding
	lists  key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		reveal: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reveal")),
		quiz:   key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "quiz")),
		search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		home:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		login:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "login")),
		lists:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "my library")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.back, k.search, k.home},
		{k.reveal, k.quiz, k.lists},
		{k.login, k.quit},
	}
}
