package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectLayout(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name      string
		tileCount int
		width     int
		height    int
		wantName  string
	}{
		{
			name:      "zero tiles still yields a shape",
			tileCount: 0,
			width:     1200,
			height:    800,
			wantName:  "1x1",
		},
		{
			name:      "single tile",
			tileCount: 1,
			width:     1200,
			height:    800,
			wantName:  "1x1",
		},
		{
			name:      "two tiles landscape viewport",
			tileCount: 2,
			width:     1200,
			height:    800,
			wantName:  "2x1",
		},
		{
			name:      "two tiles portrait viewport",
			tileCount: 2,
			width:     400,
			height:    800,
			wantName:  "1x2",
		},
		{
			name:      "five tiles at 500x400 fit a 3x2",
			tileCount: 5,
			width:     500,
			height:    400,
			wantName:  "3x2",
		},
		{
			name:      "four tiles on a wide viewport",
			tileCount: 4,
			width:     1200,
			height:    800,
			wantName:  "2x2",
		},
		{
			name:      "nine tiles",
			tileCount: 9,
			width:     1200,
			height:    800,
			wantName:  "3x3",
		},
		{
			name:      "overflow defers to pagination",
			tileCount: 30,
			width:     1200,
			height:    800,
			wantName:  "5x5",
		},
		{
			name:      "narrow viewport caps capacity",
			tileCount: 30,
			width:     800,
			height:    600,
			wantName:  "3x3",
		},
		{
			name:      "tiny viewport falls back to first entry",
			tileCount: 12,
			width:     0,
			height:    0,
			wantName:  "1x1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectLayout(catalog, tt.tileCount, tt.width, tt.height)
			assert.Equal(t, tt.wantName, got.DisplayName(),
				"SelectLayout(%d tiles, %dx%d)", tt.tileCount, tt.width, tt.height)
		})
	}
}

// Tiny viewports never filter out threshold-free entries.
func TestSelectLayoutZeroThresholdsAlwaysQualify(t *testing.T) {
	catalog := Catalog{
		{Columns: 1, Rows: 1, MinTiles: 1, MaxTiles: 1},
		{Columns: 2, Rows: 2, MinTiles: 2, MaxTiles: 4, MinWidth: 560},
	}

	got := SelectLayout(catalog, 4, 100, 100)
	assert.Equal(t, "1x1", got.DisplayName())
}

func TestSelectLayoutTieBreakPrefersCatalogOrder(t *testing.T) {
	catalog := Catalog{
		{Name: "wide", Columns: 2, Rows: 1, MinTiles: 1, MaxTiles: 2},
		{Name: "tall", Columns: 1, Rows: 2, MinTiles: 1, MaxTiles: 2},
	}

	got := SelectLayout(catalog, 2, 1000, 1000)
	assert.Equal(t, "wide", got.Name)
}

func TestSelectLayoutPure(t *testing.T) {
	catalog := DefaultCatalog()

	first := SelectLayout(catalog, 7, 900, 500)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, SelectLayout(catalog, 7, 900, 500))
	}
}

// Increasing the tile count at a fixed viewport never shrinks the chosen
// capacity.
func TestSelectLayoutMonotonicCapacity(t *testing.T) {
	catalog := DefaultCatalog()
	require.NoError(t, catalog.Validate())

	const width, height = 1200, 800
	prev := 0
	for tiles := 1; tiles <= 40; tiles++ {
		got := SelectLayout(catalog, tiles, width, height)
		assert.GreaterOrEqual(t, got.MaxTiles, prev,
			"capacity shrank at %d tiles", tiles)
		prev = got.MaxTiles
	}
}

func TestSelectLayoutEmptyCatalog(t *testing.T) {
	got := SelectLayout(nil, 5, 1200, 800)
	assert.Equal(t, 1, got.Columns)
	assert.Equal(t, 1, got.Rows)
}

func TestCatalogValidate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		wantErr string
	}{
		{
			name:    "default catalog is valid",
			catalog: DefaultCatalog(),
		},
		{
			name:    "empty catalog",
			catalog: Catalog{},
			wantErr: "empty",
		},
		{
			name: "zero columns",
			catalog: Catalog{
				{Columns: 0, Rows: 1, MinTiles: 1, MaxTiles: 1},
			},
			wantErr: "columns and rows",
		},
		{
			name: "max below min",
			catalog: Catalog{
				{Columns: 2, Rows: 2, MinTiles: 4, MaxTiles: 2},
			},
			wantErr: "below min tiles",
		},
		{
			name: "capacity out of order",
			catalog: Catalog{
				{Columns: 3, Rows: 3, MinTiles: 1, MaxTiles: 9},
				{Columns: 1, Rows: 1, MinTiles: 1, MaxTiles: 1},
			},
			wantErr: "not ordered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCatalogMaxCapacity(t *testing.T) {
	assert.Equal(t, 25, DefaultCatalog().MaxCapacity())
	assert.Equal(t, 0, Catalog{}.MaxCapacity())
}
