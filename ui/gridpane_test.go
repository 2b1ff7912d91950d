package ui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomgrid/grid"
	"roomgrid/testing/snapshot"
	"roomgrid/track"
)

func cameraTracks(n int) []track.Reference {
	tracks := make([]track.Reference, n)
	for i := range tracks {
		tracks[i] = track.Reference{
			SID:        fmt.Sprintf("TR_%03d", i),
			Identity:   fmt.Sprintf("user-%d", i),
			Name:       fmt.Sprintf("User %d", i),
			Source:     track.SourceCamera,
			Subscribed: true,
		}
	}
	return tracks
}

func arrange(t *testing.T, tracks []track.Reference, w, h int) grid.Arrangement {
	t.Helper()
	a, err := grid.NewArranger(grid.DefaultCatalog())
	require.NoError(t, err)
	arr, err := a.Arrange(tracks, w*10, h*20)
	require.NoError(t, err)
	return arr
}

func TestGridPaneRendersAllTilesOnPage(t *testing.T) {
	snap := snapshot.New(t)

	pane := NewGridPane(nil)
	pane.SetSize(120, 40)

	arr := arrange(t, cameraTracks(4), 120, 40)
	require.Equal(t, "2x2", arr.Layout.DisplayName())

	out := pane.Render(arr, "")
	for i := 0; i < 4; i++ {
		snap.AssertContains(out, fmt.Sprintf("User %d", i))
	}
	// A single page renders no dots.
	snap.AssertNotContains(out, DotInactive)
}

func TestGridPaneShowsPaginationDots(t *testing.T) {
	snap := snapshot.New(t)

	pane := NewGridPane(nil)
	pane.SetSize(120, 40)

	// 30 tracks on a 5x5 layout -> two pages.
	arr := arrange(t, cameraTracks(30), 120, 40)
	require.Equal(t, 2, arr.Page.TotalPageCount)

	out := pane.Render(arr, "")
	snap.AssertContains(out, DotActive+" "+DotInactive)
}

func TestGridPaneFitsBounds(t *testing.T) {
	pane := NewGridPane(nil)
	pane.SetSize(100, 30)

	arr := arrange(t, cameraTracks(9), 100, 30)
	out := pane.Render(arr, "")

	assert.LessOrEqual(t, snapshot.Width(out), 100)
	assert.LessOrEqual(t, snapshot.Lines(out), 30)
}

func TestGridPaneTinyViewport(t *testing.T) {
	pane := NewGridPane(nil)
	pane.SetSize(2, 1)

	arr := arrange(t, cameraTracks(3), 2, 1)
	assert.Empty(t, pane.Render(arr, ""))
}

func TestGridPaneSharePreview(t *testing.T) {
	snap := snapshot.New(t)

	preview := func(identity string) (string, bool) {
		if identity == "carol" {
			return "quarterly numbers", true
		}
		return "", false
	}

	pane := NewGridPane(preview)
	pane.SetSize(120, 40)

	tracks := []track.Reference{
		{SID: "SH_1", Identity: "carol", Name: "Carol", Source: track.SourceScreenShare, Subscribed: true},
	}
	arr := arrange(t, tracks, 120, 40)

	out := pane.Render(arr, "")
	snap.AssertContains(out, "quarterly numbers")
	snap.AssertContains(out, "Carol")
}

func TestTileRendererMuteMarker(t *testing.T) {
	snap := snapshot.New(t)

	var r TileRenderer
	r.SetSize(30, 8)

	muted := track.Reference{SID: "a", Name: "Alice", Source: track.SourceCamera, Muted: true}
	out := r.Render(muted, "", false)
	snap.AssertContains(out, IconMuted)
	snap.AssertContains(out, "Alice")
}

func TestTileRendererTruncatesLongNames(t *testing.T) {
	var r TileRenderer
	r.SetSize(16, 5)

	long := track.Reference{SID: "a", Name: "An Exceedingly Long Participant Name", Source: track.SourceCamera}
	out := r.Render(long, "", false)

	assert.LessOrEqual(t, snapshot.Width(out), 16)
	assert.Contains(t, snapshot.StripANSI(out), "…")
}

func TestTileRendererSanitizesPreview(t *testing.T) {
	snap := snapshot.New(t)

	var r TileRenderer
	r.SetSize(40, 10)

	share := track.Reference{SID: "a", Name: "Carol", Source: track.SourceScreenShare}
	out := r.Render(share, "safe\x1b[31mcolored\x1b[0m text", false)

	// The escape bytes themselves must not survive into the frame.
	snap.AssertContains(out, "safecolored")
}

func TestMenuRendersBindings(t *testing.T) {
	snap := snapshot.New(t)

	m := NewMenu()
	m.SetSize(120, 2)

	out := m.String()
	snap.AssertContains(out, "next page")
	snap.AssertContains(out, "prev page")
	snap.AssertContains(out, "quit")
}

func TestErrBox(t *testing.T) {
	snap := snapshot.New(t)

	e := NewErrBox()
	e.SetSize(80, 1)
	e.SetError(fmt.Errorf("scenario parse failed"))
	snap.AssertContains(e.String(), "scenario parse failed")

	e.Clear()
	assert.NotContains(t, snapshot.StripANSI(e.String()), "scenario")
}
