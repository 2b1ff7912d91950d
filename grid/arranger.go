package grid

import (
	"fmt"

	"roomgrid/track"
)

// Arrangement is one complete derivation of the grid: the selected layout
// shape plus the page of tracks to render. Columns and Rows on the layout
// are the presentation hints the consuming UI lays tiles out with.
type Arrangement struct {
	Layout LayoutDefinition
	Page   PaginationState
}

// Arranger composes layout selection and pagination. It owns the only
// piece of state in the pipeline, the current page index; everything else
// is recomputed from the latest inputs on every call to Arrange.
type Arranger struct {
	catalog Catalog
	page    int
}

// NewArranger validates the catalog and returns an arranger positioned on
// page zero.
func NewArranger(catalog Catalog) (*Arranger, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("arranger: %w", err)
	}
	return &Arranger{catalog: catalog}, nil
}

// Arrange selects a layout for the given tracks and viewport, paginates the
// tracks by the layout's capacity and returns the result. The retained page
// index is re-clamped on every call, so shrinking track lists or layout
// capacity changes degrade to the nearest existing page.
func (a *Arranger) Arrange(tracks []track.Reference, width, height int) (Arrangement, error) {
	layout := SelectLayout(a.catalog, len(tracks), width, height)

	page, err := Paginate(layout.MaxTiles, tracks, a.page)
	if err != nil {
		return Arrangement{}, err
	}
	a.page = page.CurrentPage

	return Arrangement{Layout: layout, Page: page}, nil
}

// NextPage advances the page index. The move is clamped; the new tile set
// takes effect on the next Arrange.
func (a *Arranger) NextPage(current PaginationState) {
	a.page = current.NextPage()
}

// PrevPage moves the page index back, clamped at zero.
func (a *Arranger) PrevPage(current PaginationState) {
	a.page = current.PrevPage()
}

// Catalog returns the catalog the arranger selects from.
func (a *Arranger) Catalog() Catalog {
	return a.catalog
}
