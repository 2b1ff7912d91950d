package grid

// SelectLayout picks the best-fitting layout from the catalog for the given
// tile count and viewport. It is a pure function: identical inputs always
// produce the identical layout.
//
// Selection rules, in order:
//  1. Only entries whose MinWidth/MinHeight fit the viewport (and whose
//     orientation matches, if set) qualify. Zero thresholds always qualify.
//  2. Among qualifying entries, the smallest-capacity layout with
//     MaxTiles >= tileCount wins. If the tile count exceeds every
//     qualifying capacity, the largest qualifying capacity wins and the
//     overflow is deferred to pagination.
//  3. If nothing qualifies at all, the first catalog entry is the fallback
//     so even a tiny viewport gets a usable shape.
//  4. Equal effective capacity resolves to the entry appearing first in
//     catalog order.
//
// A tile count of zero still returns a valid layout so the first render
// before any tracks arrive has a defined shape.
func SelectLayout(catalog Catalog, tileCount, width, height int) LayoutDefinition {
	if len(catalog) == 0 {
		return LayoutDefinition{Columns: 1, Rows: 1, MinTiles: 1, MaxTiles: 1}
	}

	var best, largest *LayoutDefinition
	for i := range catalog {
		l := &catalog[i]
		if !fitsViewport(*l, width, height) {
			continue
		}
		if largest == nil || l.MaxTiles > largest.MaxTiles {
			largest = l
		}
		// Catalog is ordered ascending, so the first hit is the smallest
		// capacity; later equal capacities never replace it.
		if l.MaxTiles >= tileCount && (best == nil || l.MaxTiles < best.MaxTiles) {
			best = l
		}
	}

	if best != nil {
		return *best
	}
	if largest != nil {
		// Every qualifying layout is too small for the tile count.
		// Overflow tiles become extra pages, they are never dropped.
		return *largest
	}
	// Viewport is below every threshold. Degrade to the smallest shape.
	return catalog[0]
}

func fitsViewport(l LayoutDefinition, width, height int) bool {
	if l.MinWidth > 0 && width < l.MinWidth {
		return false
	}
	if l.MinHeight > 0 && height < l.MinHeight {
		return false
	}
	switch l.Orientation {
	case OrientationLandscape:
		return width >= height
	case OrientationPortrait:
		return height > width
	default:
		return true
	}
}
