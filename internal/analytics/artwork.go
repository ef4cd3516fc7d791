package analytics

import (
	"math"
	"sort"
	"time"

	"editions-app/internal/domain/catalog"
)

// ArtworkStat is the per-print rollup shown on the artworks dashboard.
type ArtworkStat struct {
	PrintID   uint   `json:"print_id"`
	PrintName string `json:"print_name"`

	TotalEditions int `json:"total_editions"`
	Sold          int `json:"sold"`
	Remaining     int `json:"remaining"`

	SellThroughRate float64 `json:"sell_through_rate"` // 0-100
	TotalRevenue    float64 `json:"total_revenue"`     // gross, sold editions with a price
	AveragePrice    float64 `json:"average_price"`

	SalesVelocity      int     `json:"sales_velocity"` // sales in the trailing 12 months
	VelocityPercentage float64 `json:"velocity_percentage"`

	// EstimatedMonthsToSellout is nil when there is no velocity or nothing
	// left to sell. Sold out is Remaining == 0, not a nil estimate.
	EstimatedMonthsToSellout *int `json:"estimated_months_to_sellout,omitempty"`

	TopGalleryID   *uint  `json:"top_gallery_id,omitempty"`
	TopGalleryName string `json:"top_gallery_name,omitempty"`
}

// ArtworkStats aggregates every non-proof edition into one stat per print,
// sorted by sell-through rate (descending, 0.01 tolerance) then sold count.
func ArtworkStats(editions []catalog.Edition, prints []catalog.Print, distributors []catalog.Distributor, now time.Time) []ArtworkStat {
	distName := distributorNames(distributors)
	yearAgo := now.AddDate(-1, 0, 0)

	type accum struct {
		editionCount int
		sold         int
		revenue      float64
		salePrices   []float64
		velocity     int
		gallerySold  []gallerySold // insertion-ordered so ties resolve first-seen
	}
	byPrint := make(map[uint]*accum, len(prints))
	for _, p := range prints {
		byPrint[p.ID] = &accum{}
	}

	for i := range editions {
		e := &editions[i]
		if e.IsProof() {
			continue
		}
		acc := byPrint[e.PrintID]
		if acc == nil {
			continue // edition pointing at an unknown print
		}
		acc.editionCount++
		if !e.IsSold {
			continue
		}
		acc.sold++
		if e.RetailPrice != nil && *e.RetailPrice > 0 {
			acc.revenue += *e.RetailPrice
			acc.salePrices = append(acc.salePrices, *e.RetailPrice)
		}
		if e.DateSold != nil && e.DateSold.After(yearAgo) && !e.DateSold.After(now) {
			acc.velocity++
		}
		if e.DistributorID != nil {
			acc.gallerySold = bumpGallery(acc.gallerySold, *e.DistributorID)
		}
	}

	stats := make([]ArtworkStat, 0, len(prints))
	for _, p := range prints {
		acc := byPrint[p.ID]

		total := p.TotalEditions
		if total == 0 {
			total = acc.editionCount
		}
		remaining := total - acc.sold
		if remaining < 0 {
			remaining = 0
		}

		st := ArtworkStat{
			PrintID:       p.ID,
			PrintName:     p.Name,
			TotalEditions: total,
			Sold:          acc.sold,
			Remaining:     remaining,
			TotalRevenue:  acc.revenue,
			SalesVelocity: acc.velocity,
		}

		if total > 0 {
			st.SellThroughRate = float64(acc.sold) / float64(total) * 100
		}
		if len(acc.salePrices) > 0 {
			sum := 0.0
			for _, price := range acc.salePrices {
				sum += price
			}
			st.AveragePrice = sum / float64(len(acc.salePrices))
		}

		switch {
		case remaining > 0:
			st.VelocityPercentage = float64(acc.velocity) / float64(remaining) * 100
		case acc.velocity > 0:
			st.VelocityPercentage = 100
		}

		if acc.velocity > 0 && remaining > 0 {
			months := int(math.Ceil(float64(remaining) / (float64(acc.velocity) / 12)))
			st.EstimatedMonthsToSellout = &months
		}

		if top := topGallery(acc.gallerySold); top != nil {
			id := top.distributorID
			st.TopGalleryID = &id
			st.TopGalleryName = distName[id]
		}

		stats = append(stats, st)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		diff := stats[i].SellThroughRate - stats[j].SellThroughRate
		if diff > 0.01 {
			return true
		}
		if diff < -0.01 {
			return false
		}
		return stats[i].Sold > stats[j].Sold
	})

	return stats
}

type gallerySold struct {
	distributorID uint
	sold          int
}

func bumpGallery(list []gallerySold, distributorID uint) []gallerySold {
	for i := range list {
		if list[i].distributorID == distributorID {
			list[i].sold++
			return list
		}
	}
	return append(list, gallerySold{distributorID: distributorID, sold: 1})
}

// topGallery returns the first-seen gallery with the highest sold count.
// A strictly-greater comparison keeps earlier galleries on ties.
func topGallery(list []gallerySold) *gallerySold {
	var best *gallerySold
	for i := range list {
		if best == nil || list[i].sold > best.sold {
			best = &list[i]
		}
	}
	return best
}

func distributorNames(distributors []catalog.Distributor) map[uint]string {
	names := make(map[uint]string, len(distributors))
	for _, d := range distributors {
		names[d.ID] = d.Name
	}
	return names
}
