package analytics

import (
	"time"

	"editions-app/internal/domain/catalog"
)

// MonthSales is one month of the tax-year breakdown.
type MonthSales struct {
	Month   string  `json:"month"` // "2024-04"
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

// TaxYearReport summarises sales for one UK tax year (6 April through the
// following 5 April).
type TaxYearReport struct {
	Year  int       `json:"year"` // tax year beginning 6 April of Year
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	SalesCount     int     `json:"sales_count"`
	GrossRevenue   float64 `json:"gross_revenue"`
	NetRevenue     float64 `json:"net_revenue"`
	CommissionPaid float64 `json:"commission_paid"`

	SettledCount   int `json:"settled_count"`
	UnsettledCount int `json:"unsettled_count"`

	Monthly []MonthSales `json:"monthly"`
}

// CalculateTaxYearReport aggregates dated, non-proof sales falling inside
// the tax year beginning 6 April of the given year.
func CalculateTaxYearReport(editions []catalog.Edition, distributors []catalog.Distributor, year int) TaxYearReport {
	start := time.Date(year, time.April, 6, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.April, 5, 23, 59, 59, 0, time.UTC)

	report := TaxYearReport{
		Year:    year,
		Start:   start,
		End:     end,
		Monthly: make([]MonthSales, 0, 13),
	}

	// A tax year touches 13 calendar months: both Aprils are partial.
	monthIndex := make(map[string]int, 13)
	for m := 0; m < 13; m++ {
		label := start.AddDate(0, m, 0).Format("2006-01")
		monthIndex[label] = m
		report.Monthly = append(report.Monthly, MonthSales{Month: label})
	}

	defaultCommission := make(map[uint]*float64, len(distributors))
	for _, d := range distributors {
		defaultCommission[d.ID] = d.CommissionPercentage
	}

	for i := range editions {
		e := &editions[i]
		if e.IsProof() || !e.IsSold || e.DateSold == nil {
			continue
		}
		if e.DateSold.Before(start) || e.DateSold.After(end) {
			continue
		}

		report.SalesCount++
		gross := saleRevenue(e)
		report.GrossRevenue += gross

		var fallback *float64
		if e.DistributorID != nil {
			fallback = defaultCommission[*e.DistributorID]
		}
		net := editionNet(e.RetailPrice, e.CommissionPercentage, fallback)
		report.NetRevenue += net
		report.CommissionPaid += gross - net

		if e.IsSettled {
			report.SettledCount++
		} else {
			report.UnsettledCount++
		}

		if idx, ok := monthIndex[e.DateSold.Format("2006-01")]; ok {
			report.Monthly[idx].Sales++
			report.Monthly[idx].Revenue += gross
		}
	}

	return report
}
