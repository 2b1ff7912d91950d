package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"roomgrid/grid"
	"roomgrid/log"
)

// PreviewFunc resolves screen-share preview text for a participant
// identity. Implemented by the room layer.
type PreviewFunc func(identity string) (string, bool)

// GridPane renders one arrangement as a grid of tiles with a pagination
// dots row underneath.
type GridPane struct {
	width  int
	height int

	renderer TileRenderer
	preview  PreviewFunc
}

// NewGridPane creates a grid pane. preview may be nil.
func NewGridPane(preview PreviewFunc) *GridPane {
	return &GridPane{preview: preview}
}

// SetSize sets the pane size in cells.
func (g *GridPane) SetSize(width, height int) {
	g.width = width
	g.height = height
}

// Render draws the current page of tiles in the arrangement's shape.
// focusedSID selects the tile drawn with the accent border.
func (g *GridPane) Render(arr grid.Arrangement, focusedSID string) string {
	defer log.GetProfiler().Start()()

	if g.width < 4 || g.height < 3 {
		return ""
	}

	cols := arr.Layout.Columns
	rows := arr.Layout.Rows
	if cols < 1 || rows < 1 {
		// Zero-value arrangement before the first measurement.
		return ""
	}

	gridHeight := g.height
	showDots := arr.Page.TotalPageCount > 1
	if showDots {
		gridHeight--
	}

	tileW := g.width / cols
	tileH := gridHeight / rows
	g.renderer.SetSize(tileW, tileH)

	tracks := arr.Page.TracksOnPage
	rendered := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		cells := make([]string, 0, cols)
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(tracks) {
				break
			}
			ref := tracks[i]
			previewText := ""
			if g.preview != nil {
				if p, ok := g.preview(ref.Identity); ok {
					previewText = p
				}
			}
			cells = append(cells, g.renderer.Render(ref, previewText, ref.SID == focusedSID))
		}
		if len(cells) == 0 {
			break
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rendered...)
	body = lipgloss.PlaceHorizontal(g.width, lipgloss.Center, body)

	if !showDots {
		return body
	}
	return body + "\n" + lipgloss.PlaceHorizontal(g.width, lipgloss.Center,
		dotsStyle.Render(paginationDots(arr.Page)))
}

// paginationDots builds the ●○○ page indicator.
func paginationDots(page grid.PaginationState) string {
	var sb strings.Builder
	for i := 0; i < page.TotalPageCount; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		if i == page.CurrentPage {
			sb.WriteString(DotActive)
		} else {
			sb.WriteString(DotInactive)
		}
	}
	return sb.String()
}
