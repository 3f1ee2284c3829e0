package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Enter   key.Binding
	Submit  key.Binding
	Delete  key.Binding
	Dismiss key.Binding
	Quit    key.Binding
	ForceQ  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next / checar")),
		Submit:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "checar")),
		Delete:  key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("⌫", "delete")),
		Dismiss: key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "fechar")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp lists the bindings shown in the footer while editing.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Enter, k.Submit, k.ForceQ}
}

// OverlayHelp lists the bindings shown while a notice or the modal is up.
func (k keyMap) OverlayHelp() []key.Binding {
	return []key.Binding{k.Dismiss, k.Quit}
}
