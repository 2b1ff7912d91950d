package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"roomgrid/track"
)

// TileRenderer draws one track reference into a fixed-size cell.
type TileRenderer struct {
	width  int
	height int
}

// SetSize sets the outer cell size, border included.
func (r *TileRenderer) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// Render draws the tile for ref. Preview is the screen-share preview text,
// empty for other sources. Focused tiles get the accent border.
func (r *TileRenderer) Render(ref track.Reference, preview string, focused bool) string {
	// Border eats two cells each way; never go below a 1x1 interior.
	innerW := max(r.width-2, 1)
	innerH := max(r.height-2, 1)

	style := tileStyle.
		Width(innerW).
		Height(innerH).
		BorderForeground(r.borderColor(ref, focused))

	return style.Render(r.content(ref, preview, innerW, innerH))
}

func (r *TileRenderer) borderColor(ref track.Reference, focused bool) lipgloss.TerminalColor {
	if focused {
		return Primary
	}
	switch ref.Source {
	case track.SourceScreenShare:
		return ShareColor
	case track.SourceCamera:
		return CameraColor
	default:
		return PlaceholderColor
	}
}

func (r *TileRenderer) content(ref track.Reference, preview string, innerW, innerH int) string {
	label := r.label(ref, innerW)

	if ref.Source == track.SourceScreenShare && preview != "" && innerH > 1 {
		body := wordwrap.String(sanitize(preview), innerW)
		lines := strings.Split(body, "\n")
		if len(lines) > innerH-1 {
			lines = lines[:innerH-1]
		}
		return strings.Join(lines, "\n") + "\n" + tileMetaStyle.Render(label)
	}
	return tileNameStyle.Render(label)
}

// label fits icon, name and mute marker into one line.
func (r *TileRenderer) label(ref track.Reference, width int) string {
	icon := IconPlaceholder
	switch ref.Source {
	case track.SourceCamera:
		icon = IconCamera
	case track.SourceScreenShare:
		icon = IconShare
	}

	suffix := ""
	if ref.Muted {
		suffix = " " + IconMuted
	}

	name := sanitize(ref.DisplayName())
	budget := width - runewidth.StringWidth(icon) - runewidth.StringWidth(suffix) - 1
	if budget < 1 {
		budget = 1
	}
	return icon + " " + runewidth.Truncate(name, budget, "…") + suffix
}

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// sanitize strips ANSI escapes from scenario-provided text so it cannot
// corrupt the rendered frame.
func sanitize(s string) string {
	s = ansiEscape.ReplaceAllString(s, "")
	return strings.ReplaceAll(s, "\r", "")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
