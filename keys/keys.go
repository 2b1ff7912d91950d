// Package keys defines the global key bindings for the viewer.
package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyName names one bindable action.
type KeyName int

const (
	KeyPrevPage KeyName = iota
	KeyNextPage
	KeyFocusNext
	KeyCopyIdentity
	KeyTogglePlaceholders
	KeyHelp
	KeyQuit
)

// GlobalKeyBindings maps every action to its binding. The help text doubles
// as the menu entry.
var GlobalKeyBindings = map[KeyName]key.Binding{
	KeyPrevPage: key.NewBinding(
		key.WithKeys("left", "h", "p"),
		key.WithHelp("←/h", "prev page"),
	),
	KeyNextPage: key.NewBinding(
		key.WithKeys("right", "l", "n"),
		key.WithHelp("→/l", "next page"),
	),
	KeyFocusNext: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "focus"),
	),
	KeyCopyIdentity: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy identity"),
	),
	KeyTogglePlaceholders: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "placeholders"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
