package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds all TUI key bindings.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Write  key.Binding
	Rewalk key.Binding
	Search key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "read"),
	),
	Write: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "write"),
	),
	Rewalk: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "re-read space"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// keyBarText renders the key hint line for the current input mode.
func keyBarText(entering bool) string {
	if entering {
		return keyStyle.Render("Enter") + keyDescStyle.Render(":submit") + "  " +
			keyStyle.Render("Esc") + keyDescStyle.Render(":cancel")
	}
	return keyStyle.Render("↑↓") + keyDescStyle.Render(":browse") + "  " +
		keyStyle.Render("enter") + keyDescStyle.Render(":read") + "  " +
		keyStyle.Render("w") + keyDescStyle.Render(":write") + "  " +
		keyStyle.Render("/") + keyDescStyle.Render(":filter") + "  " +
		keyStyle.Render("r") + keyDescStyle.Render(":re-read") + "  " +
		keyStyle.Render("q") + keyDescStyle.Render(":quit")
}
