package analytics

import (
	"fmt"

	"editions-app/internal/domain/catalog"
)

// MatrixCell is one populated cell of the gallery x artwork cross-tab.
// Invariant: Sold + InStock == Allocated.
type MatrixCell struct {
	DistributorID  uint    `json:"distributor_id"`
	PrintID        uint    `json:"print_id"`
	Allocated      int     `json:"allocated"`
	Sold           int     `json:"sold"`
	InStock        int     `json:"in_stock"`
	ConversionRate float64 `json:"conversion_rate"`
}

// MatrixKey builds the sparse map key for a (gallery, artwork) pair.
func MatrixKey(distributorID, printID uint) string {
	return fmt.Sprintf("%d-%d", distributorID, printID)
}

// GalleryArtworkMatrix cross-tabulates printed, non-proof editions into a
// sparse map keyed by "{distributorId}-{printId}". Conversion is computed
// per cell after the full accumulation pass.
func GalleryArtworkMatrix(editions []catalog.Edition) map[string]MatrixCell {
	cells := make(map[string]MatrixCell)

	for i := range editions {
		e := &editions[i]
		if e.IsProof() || !e.IsPrinted || e.DistributorID == nil {
			continue
		}
		key := MatrixKey(*e.DistributorID, e.PrintID)
		cell, ok := cells[key]
		if !ok {
			cell = MatrixCell{DistributorID: *e.DistributorID, PrintID: e.PrintID}
		}
		cell.Allocated++
		if e.IsSold {
			cell.Sold++
		}
		cells[key] = cell
	}

	for key, cell := range cells {
		cell.InStock = cell.Allocated - cell.Sold
		if cell.Allocated > 0 {
			cell.ConversionRate = float64(cell.Sold) / float64(cell.Allocated) * 100
		}
		cells[key] = cell
	}

	return cells
}
