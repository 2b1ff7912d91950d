package ui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette. Each tile kind gets a distinct border color plus
// an icon, so state reads without color too.

var (
	// CameraColor marks live camera tiles.
	CameraColor = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}

	// ShareColor marks screen-share tiles.
	ShareColor = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

	// PlaceholderColor marks tiles reserved for participants without video.
	PlaceholderColor = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#4B5563"}

	// Primary is the accent/focus color.
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// TextPrimary is the main text color.
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextMuted is for hints and subtle text.
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// ErrColor is for the error box.
	ErrColor = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}
)

// Tile icons (shape + color for accessibility).
const (
	IconCamera      = "●"
	IconShare       = "⇱"
	IconPlaceholder = "○"
	IconMuted       = "🔇"
)

// Pagination dot glyphs.
const (
	DotActive   = "●"
	DotInactive = "○"
)

var (
	tileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Align(lipgloss.Center, lipgloss.Center)

	tileNameStyle = lipgloss.NewStyle().
			Foreground(TextPrimary)

	tileMetaStyle = lipgloss.NewStyle().
			Foreground(TextMuted)

	dotsStyle = lipgloss.NewStyle().
			Foreground(TextMuted)

	errStyle = lipgloss.NewStyle().
			Foreground(ErrColor)
)
