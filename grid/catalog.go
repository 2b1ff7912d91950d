// Package grid provides the layout-selection and pagination core for the
// tile grid. Everything in this package is a pure computation over the
// latest observed inputs; it knows nothing about rendering.
package grid

import (
	"fmt"
)

// Orientation restricts a layout to viewports of a matching shape.
// The zero value applies to any viewport.
type Orientation int

const (
	OrientationAny Orientation = iota
	OrientationLandscape
	OrientationPortrait
)

// String returns the string representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationLandscape:
		return "landscape"
	case OrientationPortrait:
		return "portrait"
	default:
		return "any"
	}
}

// LayoutDefinition describes one candidate grid shape together with its
// applicability constraints.
type LayoutDefinition struct {
	// Name identifies the layout, e.g. "3x2". Derived from the shape
	// when left empty in a custom catalog.
	Name string `json:"name,omitempty"`

	Columns int `json:"columns"`
	Rows    int `json:"rows"`

	// MinTiles and MaxTiles bound the tile counts this layout is meant
	// for. MaxTiles is also the page capacity when this layout is chosen.
	MinTiles int `json:"min_tiles"`
	MaxTiles int `json:"max_tiles"`

	// MinWidth and MinHeight are viewport thresholds below which the
	// layout does not qualify. Zero means no threshold.
	MinWidth  int `json:"min_width"`
	MinHeight int `json:"min_height"`

	// Orientation, when set, restricts the layout to viewports of the
	// matching shape. Used to pick between 1x2 and 2x1 for two tiles.
	Orientation Orientation `json:"orientation,omitempty"`
}

// DisplayName returns the explicit name or one derived from the shape.
func (l LayoutDefinition) DisplayName() string {
	if l.Name != "" {
		return l.Name
	}
	return fmt.Sprintf("%dx%d", l.Columns, l.Rows)
}

// Catalog is an ordered list of candidate layouts. Order matters twice:
// entries must be sorted by ascending capacity, and among entries of equal
// capacity the earlier one wins selection ties.
type Catalog []LayoutDefinition

// Validate checks the structural invariants the selector relies on.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	prevMax := 0
	for i, l := range c {
		if l.Columns < 1 || l.Rows < 1 {
			return fmt.Errorf("layout %q: columns and rows must be >= 1", l.DisplayName())
		}
		if l.MinTiles < 1 {
			return fmt.Errorf("layout %q: min tiles must be >= 1", l.DisplayName())
		}
		if l.MaxTiles < l.MinTiles {
			return fmt.Errorf("layout %q: max tiles %d below min tiles %d", l.DisplayName(), l.MaxTiles, l.MinTiles)
		}
		if l.MinWidth < 0 || l.MinHeight < 0 {
			return fmt.Errorf("layout %q: size thresholds must be >= 0", l.DisplayName())
		}
		if l.MaxTiles < prevMax {
			return fmt.Errorf("catalog not ordered by capacity at entry %d (%q)", i, l.DisplayName())
		}
		prevMax = l.MaxTiles
	}
	return nil
}

// MaxCapacity returns the largest MaxTiles in the catalog.
func (c Catalog) MaxCapacity() int {
	capacity := 0
	for _, l := range c {
		if l.MaxTiles > capacity {
			capacity = l.MaxTiles
		}
	}
	return capacity
}

// Size thresholds for the default catalog, in the same pixel-style units
// the viewport reports. The TUI scales terminal cells into these units.
const (
	twoByTwoMinWidth     = 560
	threeByTwoMinWidth   = 460
	threeByThreeMinWidth = 700
	fourByFourMinWidth   = 960
	fiveByFiveMinWidth   = 1100
)

// DefaultCatalog returns the built-in layout catalog, ordered from smallest
// to largest capacity. The threshold-free small layouts act as fallbacks so
// any viewport gets a usable shape.
func DefaultCatalog() Catalog {
	return Catalog{
		{Columns: 1, Rows: 1, MinTiles: 1, MaxTiles: 1},
		{Columns: 1, Rows: 2, MinTiles: 2, MaxTiles: 2, Orientation: OrientationPortrait},
		{Columns: 2, Rows: 1, MinTiles: 2, MaxTiles: 2, Orientation: OrientationLandscape},
		{Columns: 2, Rows: 2, MinTiles: 3, MaxTiles: 4, MinWidth: twoByTwoMinWidth},
		{Columns: 3, Rows: 2, MinTiles: 5, MaxTiles: 6, MinWidth: threeByTwoMinWidth},
		{Columns: 3, Rows: 3, MinTiles: 7, MaxTiles: 9, MinWidth: threeByThreeMinWidth},
		{Columns: 4, Rows: 4, MinTiles: 10, MaxTiles: 16, MinWidth: fourByFourMinWidth},
		{Columns: 5, Rows: 5, MinTiles: 17, MaxTiles: 25, MinWidth: fiveByFiveMinWidth},
	}
}
