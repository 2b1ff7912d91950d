package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"roomgrid/keys"
)

var keyHintStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var keyDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var menuSepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

const menuSeparator = " • "

var menuOptions = []keys.KeyName{
	keys.KeyPrevPage,
	keys.KeyNextPage,
	keys.KeyFocusNext,
	keys.KeyCopyIdentity,
	keys.KeyTogglePlaceholders,
	keys.KeyHelp,
	keys.KeyQuit,
}

// Menu is the bottom key-hint bar.
type Menu struct {
	width  int
	height int
}

// NewMenu creates the menu.
func NewMenu() *Menu {
	return &Menu{}
}

// SetSize sets the width the menu centers itself within.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Menu) String() string {
	var s strings.Builder
	for i, name := range menuOptions {
		binding := keys.GlobalKeyBindings[name]
		s.WriteString(keyHintStyle.Render(binding.Help().Key))
		s.WriteString(" ")
		s.WriteString(keyDescStyle.Render(binding.Help().Desc))
		if i != len(menuOptions)-1 {
			s.WriteString(menuSepStyle.Render(menuSeparator))
		}
	}

	centered := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s.String())
	return lipgloss.PlaceVertical(m.height, lipgloss.Center, centered)
}
