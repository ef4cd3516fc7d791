package analytics

import (
	"time"

	"editions-app/internal/domain/catalog"
)

// PortfolioHealth is the whole-catalog rollup for the dashboard header.
// SoldOutCount and NearSelloutCount are mutually exclusive categories.
type PortfolioHealth struct {
	TotalPrints   int `json:"total_prints"`
	TotalEditions int `json:"total_editions"`
	TotalSold     int `json:"total_sold"`

	OverallSellThrough float64 `json:"overall_sell_through"` // 0-100

	GrossRevenue float64 `json:"gross_revenue"`
	NetRevenue   float64 `json:"net_revenue"`

	UnsettledCount int     `json:"unsettled_count"`
	UnsettledNet   float64 `json:"unsettled_net"`

	SoldOutCount      int `json:"sold_out_count"`
	NearSelloutCount  int `json:"near_sellout_count"` // >= 90% sold, not sold out
	SalesLast12Months int `json:"sales_last_12_months"`
}

// CalculatePortfolioHealth rolls up the artwork stats and takes its own pass
// over the editions for the financial totals. The commission fallback is
// recomputed here rather than shared with GalleryStats, so the portfolio
// figures stay correct for sold editions that have no gallery at all.
func CalculatePortfolioHealth(editions []catalog.Edition, prints []catalog.Print, distributors []catalog.Distributor, now time.Time) PortfolioHealth {
	stats := ArtworkStats(editions, prints, distributors, now)

	var health PortfolioHealth
	health.TotalPrints = len(stats)

	for _, st := range stats {
		health.TotalEditions += st.TotalEditions
		health.TotalSold += st.Sold
		health.SalesLast12Months += st.SalesVelocity
		if st.Remaining == 0 {
			health.SoldOutCount++
		} else if st.SellThroughRate >= 90 {
			health.NearSelloutCount++
		}
	}
	if health.TotalEditions > 0 {
		health.OverallSellThrough = float64(health.TotalSold) / float64(health.TotalEditions) * 100
	}

	defaultCommission := make(map[uint]*float64, len(distributors))
	for _, d := range distributors {
		defaultCommission[d.ID] = d.CommissionPercentage
	}

	for i := range editions {
		e := &editions[i]
		if e.IsProof() || !e.IsSold {
			continue
		}
		if e.RetailPrice != nil && *e.RetailPrice > 0 {
			health.GrossRevenue += *e.RetailPrice
		}
		var fallback *float64
		if e.DistributorID != nil {
			fallback = defaultCommission[*e.DistributorID]
		}
		net := editionNet(e.RetailPrice, e.CommissionPercentage, fallback)
		health.NetRevenue += net
		if !e.IsSettled {
			health.UnsettledCount++
			health.UnsettledNet += net
		}
	}

	return health
}
