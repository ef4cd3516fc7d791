package analytics

import (
	"testing"

	"editions-app/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryArtworkMatrix(t *testing.T) {
	mk := func(distID, printID uint, number int, soldFlag bool) catalog.Edition {
		e := stockEdition(printID, number)
		e.DistributorID = up(distID)
		e.IsSold = soldFlag
		return e
	}

	editions := []catalog.Edition{
		mk(1, 10, 1, true),
		mk(1, 10, 2, false),
		mk(1, 20, 3, true),
		mk(2, 10, 4, false),
	}
	// excluded rows: proof, unprinted, no gallery
	proof := mk(1, 10, 0, true)
	unprinted := catalog.Edition{PrintID: 10, EditionNumber: ip(9), DistributorID: up(1)}
	homeless := stockEdition(10, 8)
	editions = append(editions, proof, unprinted, homeless)

	cells := GalleryArtworkMatrix(editions)
	require.Len(t, cells, 3)

	cell := cells[MatrixKey(1, 10)]
	assert.Equal(t, 2, cell.Allocated)
	assert.Equal(t, 1, cell.Sold)
	assert.Equal(t, 1, cell.InStock)
	assert.Equal(t, 50.0, cell.ConversionRate)

	assert.Equal(t, 100.0, cells[MatrixKey(1, 20)].ConversionRate)
	assert.Equal(t, 0.0, cells[MatrixKey(2, 10)].ConversionRate)

	for key, cell := range cells {
		assert.Equal(t, cell.Allocated, cell.Sold+cell.InStock, "cell %s", key)
		assert.Equal(t, key, MatrixKey(cell.DistributorID, cell.PrintID))
	}
}

func TestGalleryArtworkMatrixEmpty(t *testing.T) {
	cells := GalleryArtworkMatrix(nil)
	assert.Empty(t, cells)
}
