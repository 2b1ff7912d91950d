package grid

import (
	"fmt"

	"roomgrid/track"
)

// ErrInvalidPageSize is returned when pagination is requested with a
// non-positive page capacity.
var ErrInvalidPageSize = fmt.Errorf("page capacity must be >= 1")

// PaginationState is one computed page of the track list plus the metadata
// navigation controls need. It is a value: recomputing with the same inputs
// yields an identical state.
type PaginationState struct {
	// CurrentPage is the zero-based page index, always within
	// [0, TotalPageCount-1].
	CurrentPage int

	// TotalPageCount is at least 1, even for an empty track list.
	TotalPageCount int

	// TracksOnPage is the order-preserving slice of tracks on the
	// current page. At most maxTiles entries.
	TracksOnPage []track.Reference
}

// Paginate splits tracks into pages of at most maxTiles entries and returns
// the state for currentPage. The page index is clamped into the valid range,
// so a stale index (e.g. after tracks were removed) degrades to the nearest
// existing page rather than failing. maxTiles <= 0 is invalid input.
func Paginate(maxTiles int, tracks []track.Reference, currentPage int) (PaginationState, error) {
	if maxTiles <= 0 {
		return PaginationState{}, fmt.Errorf("paginate: %w (got %d)", ErrInvalidPageSize, maxTiles)
	}

	total := (len(tracks) + maxTiles - 1) / maxTiles
	if total < 1 {
		total = 1
	}

	page := clampPage(currentPage, total)

	start := page * maxTiles
	end := start + maxTiles
	if start > len(tracks) {
		start = len(tracks)
	}
	if end > len(tracks) {
		end = len(tracks)
	}

	return PaginationState{
		CurrentPage:    page,
		TotalPageCount: total,
		TracksOnPage:   tracks[start:end],
	}, nil
}

// NextPage returns the page index one past the current page, clamped at the
// last page. Moving past the end is a no-op, there is no wraparound.
func (s PaginationState) NextPage() int {
	return clampPage(s.CurrentPage+1, s.TotalPageCount)
}

// PrevPage returns the page index one before the current page, clamped at
// page zero.
func (s PaginationState) PrevPage() int {
	return clampPage(s.CurrentPage-1, s.TotalPageCount)
}

// OnFirstPage reports whether backward navigation would be a no-op.
func (s PaginationState) OnFirstPage() bool {
	return s.CurrentPage == 0
}

// OnLastPage reports whether forward navigation would be a no-op.
func (s PaginationState) OnLastPage() bool {
	return s.CurrentPage >= s.TotalPageCount-1
}

func clampPage(page, total int) int {
	if page < 0 {
		return 0
	}
	if page > total-1 {
		return total - 1
	}
	return page
}
