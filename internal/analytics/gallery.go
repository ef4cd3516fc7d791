package analytics

import (
	"sort"

	"editions-app/internal/domain/catalog"
)

// GalleryArtworkPerf is one gallery's performance on one print, used both in
// the gallery detail view and as input to the matrix host view.
type GalleryArtworkPerf struct {
	Allocated      int     `json:"allocated"`
	Sold           int     `json:"sold"`
	ConversionRate float64 `json:"conversion_rate"`
}

// GalleryStat is the per-distributor rollup. Allocation counts printed
// editions only: an unprinted edition assigned to a gallery is a plan, not
// stock.
type GalleryStat struct {
	DistributorID        uint     `json:"distributor_id"`
	Name                 string   `json:"name"`
	CommissionPercentage *float64 `json:"commission_percentage,omitempty"`

	Allocated      int     `json:"allocated"`
	Sold           int     `json:"sold"`
	InStock        int     `json:"in_stock"`
	ConversionRate float64 `json:"conversion_rate"` // 0-100

	GrossRevenue float64 `json:"gross_revenue"`
	NetRevenue   float64 `json:"net_revenue"`

	UnsettledCount int     `json:"unsettled_count"`
	UnsettledNet   float64 `json:"unsettled_net"`

	// AverageDaysToSell is nil when no sale has both gallery and sale dates
	// with a non-negative gap.
	AverageDaysToSell *float64 `json:"average_days_to_sell,omitempty"`

	Artworks map[uint]GalleryArtworkPerf `json:"artworks"`
}

// GalleryStats aggregates printed, non-proof editions per distributor.
// Galleries with no allocation and no sales are dropped; output is sorted by
// conversion rate (descending, 0.01 tolerance) then sold count.
func GalleryStats(editions []catalog.Edition, distributors []catalog.Distributor) []GalleryStat {
	byDist := make(map[uint]*GalleryStat, len(distributors))
	daysToSell := make(map[uint][]float64)

	for _, d := range distributors {
		byDist[d.ID] = &GalleryStat{
			DistributorID:        d.ID,
			Name:                 d.Name,
			CommissionPercentage: d.CommissionPercentage,
			Artworks:             make(map[uint]GalleryArtworkPerf),
		}
	}

	for i := range editions {
		e := &editions[i]
		if e.IsProof() || !e.IsPrinted || e.DistributorID == nil {
			continue
		}
		st := byDist[*e.DistributorID]
		if st == nil {
			continue
		}

		st.Allocated++
		perf := st.Artworks[e.PrintID]
		perf.Allocated++

		if e.IsSold {
			st.Sold++
			perf.Sold++

			if e.RetailPrice != nil && *e.RetailPrice > 0 {
				st.GrossRevenue += *e.RetailPrice
			}
			net := editionNet(e.RetailPrice, e.CommissionPercentage, st.CommissionPercentage)
			st.NetRevenue += net

			if !e.IsSettled {
				st.UnsettledCount++
				st.UnsettledNet += net
			}

			if e.DateSold != nil && e.DateInGallery != nil {
				days := e.DateSold.Sub(*e.DateInGallery).Hours() / 24
				if days >= 0 {
					daysToSell[st.DistributorID] = append(daysToSell[st.DistributorID], days)
				}
			}
		}

		st.Artworks[e.PrintID] = perf
	}

	stats := make([]GalleryStat, 0, len(distributors))
	for _, d := range distributors {
		st := byDist[d.ID]
		if st.Allocated == 0 && st.Sold == 0 {
			continue
		}

		st.InStock = st.Allocated - st.Sold
		if st.Allocated > 0 {
			st.ConversionRate = float64(st.Sold) / float64(st.Allocated) * 100
		}

		for printID, perf := range st.Artworks {
			if perf.Allocated > 0 {
				perf.ConversionRate = float64(perf.Sold) / float64(perf.Allocated) * 100
				st.Artworks[printID] = perf
			}
		}

		if days := daysToSell[d.ID]; len(days) > 0 {
			sum := 0.0
			for _, v := range days {
				sum += v
			}
			avg := sum / float64(len(days))
			st.AverageDaysToSell = &avg
		}

		stats = append(stats, *st)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		diff := stats[i].ConversionRate - stats[j].ConversionRate
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
