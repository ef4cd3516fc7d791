package analytics

import (
	"time"

	"editions-app/internal/domain/catalog"
)

// YearOverYearComparison compares the current calendar year against the
// previous one and against a 3-year baseline.
type YearOverYearComparison struct {
	CurrentYear  int `json:"current_year"`
	PreviousYear int `json:"previous_year"`

	CurrentSales    int     `json:"current_sales"`
	PreviousSales   int     `json:"previous_sales"`
	CurrentRevenue  float64 `json:"current_revenue"`
	PreviousRevenue float64 `json:"previous_revenue"`

	SalesChange   float64 `json:"sales_change"`   // percent vs previous year
	RevenueChange float64 `json:"revenue_change"` // percent vs previous year

	ThreeYearAvgSales   float64 `json:"three_year_avg_sales"`
	ThreeYearAvgRevenue float64 `json:"three_year_avg_revenue"`

	SalesVsThreeYearAvg   float64 `json:"sales_vs_three_year_avg"`
	RevenueVsThreeYearAvg float64 `json:"revenue_vs_three_year_avg"`
}

// RollingMetrics is the exact-date sibling of YearOverYearComparison: the
// windows run from the same month/day a year back instead of calendar-year
// buckets, and the 3-year baseline is the trailing 36 months divided by a
// flat 3 rather than by populated years. The two calculators are kept
// deliberately distinct.
type RollingMetrics struct {
	CurrentSales    int     `json:"current_sales"` // trailing 12 months
	PreviousSales   int     `json:"previous_sales"`
	CurrentRevenue  float64 `json:"current_revenue"`
	PreviousRevenue float64 `json:"previous_revenue"`

	SalesChange   float64 `json:"sales_change"`
	RevenueChange float64 `json:"revenue_change"`

	ThreeYearAvgSales   float64 `json:"three_year_avg_sales"`
	ThreeYearAvgRevenue float64 `json:"three_year_avg_revenue"`

	SalesVsThreeYearAvg   float64 `json:"sales_vs_three_year_avg"`
	RevenueVsThreeYearAvg float64 `json:"revenue_vs_three_year_avg"`
}

// percentChange avoids division by zero: any growth from a zero baseline
// reads as +100%, flat zero reads as 0.
func percentChange(current, baseline float64) float64 {
	if baseline > 0 {
		return (current - baseline) / baseline * 100
	}
	if current > 0 {
		return 100
	}
	return 0
}

// countedSale reports whether the edition is a dated, non-proof sale that
// matches the optional gallery filter.
func countedSale(e *catalog.Edition, galleryID *uint) bool {
	if e.IsProof() || !e.IsSold || e.DateSold == nil {
		return false
	}
	if galleryID != nil && (e.DistributorID == nil || *e.DistributorID != *galleryID) {
		return false
	}
	return true
}

func saleRevenue(e *catalog.Edition) float64 {
	if e.RetailPrice != nil && *e.RetailPrice > 0 {
		return *e.RetailPrice
	}
	return 0
}

// YearOverYear buckets sales by calendar year of the sale date. The 3-year
// average spans the three years strictly before the current one, divided by
// the number of those years that actually have sales.
func YearOverYear(editions []catalog.Edition, now time.Time, galleryID *uint) YearOverYearComparison {
	type yearBucket struct {
		sales   int
		revenue float64
	}
	years := make(map[int]*yearBucket)

	for i := range editions {
		e := &editions[i]
		if !countedSale(e, galleryID) {
			continue
		}
		y := e.DateSold.Year()
		b := years[y]
		if b == nil {
			b = &yearBucket{}
			years[y] = b
		}
		b.sales++
		b.revenue += saleRevenue(e)
	}

	cmp := YearOverYearComparison{
		CurrentYear:  now.Year(),
		PreviousYear: now.Year() - 1,
	}
	if b := years[cmp.CurrentYear]; b != nil {
		cmp.CurrentSales = b.sales
		cmp.CurrentRevenue = b.revenue
	}
	if b := years[cmp.PreviousYear]; b != nil {
		cmp.PreviousSales = b.sales
		cmp.PreviousRevenue = b.revenue
	}

	var sumSales, sumRevenue float64
	populated := 0
	for y := cmp.CurrentYear - 3; y < cmp.CurrentYear; y++ {
		b := years[y]
		if b == nil {
			continue
		}
		populated++
		sumSales += float64(b.sales)
		sumRevenue += b.revenue
	}
	if populated > 0 {
		cmp.ThreeYearAvgSales = sumSales / float64(populated)
		cmp.ThreeYearAvgRevenue = sumRevenue / float64(populated)
	}

	cmp.SalesChange = percentChange(float64(cmp.CurrentSales), float64(cmp.PreviousSales))
	cmp.RevenueChange = percentChange(cmp.CurrentRevenue, cmp.PreviousRevenue)
	cmp.SalesVsThreeYearAvg = percentChange(float64(cmp.CurrentSales), cmp.ThreeYearAvgSales)
	cmp.RevenueVsThreeYearAvg = percentChange(cmp.CurrentRevenue, cmp.ThreeYearAvgRevenue)

	return cmp
}

// CalculateRollingMetrics computes the trailing-12-month comparison with
// exact date arithmetic (same month/day, year-1) and a flat trailing
// 36-month baseline.
func CalculateRollingMetrics(editions []catalog.Edition, now time.Time, galleryID *uint) RollingMetrics {
	oneYearAgo := now.AddDate(-1, 0, 0)
	twoYearsAgo := now.AddDate(-2, 0, 0)
	threeYearsAgo := now.AddDate(-3, 0, 0)

	var m RollingMetrics
	var windowSales36 int
	var windowRevenue36 float64

	for i := range editions {
		e := &editions[i]
		if !countedSale(e, galleryID) {
			continue
		}
		d := *e.DateSold
		if d.After(now) {
			continue
		}
		rev := saleRevenue(e)

		if d.After(oneYearAgo) {
			m.CurrentSales++
			m.CurrentRevenue += rev
		} else if d.After(twoYearsAgo) {
			m.PreviousSales++
			m.PreviousRevenue += rev
		}
		if d.After(threeYearsAgo) {
			windowSales36++
			windowRevenue36 += rev
		}
	}

	m.ThreeYearAvgSales = float64(windowSales36) / 3
	m.ThreeYearAvgRevenue = windowRevenue36 / 3

	m.SalesChange = percentChange(float64(m.CurrentSales), float64(m.PreviousSales))
	m.RevenueChange = percentChange(m.CurrentRevenue, m.PreviousRevenue)
	m.SalesVsThreeYearAvg = percentChange(float64(m.CurrentSales), m.ThreeYearAvgSales)
	m.RevenueVsThreeYearAvg = percentChange(m.CurrentRevenue, m.ThreeYearAvgRevenue)

	return m
}
