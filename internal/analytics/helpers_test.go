package analytics

import (
	"time"

	"editions-app/internal/domain/catalog"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }
func up(v uint) *uint       { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dp(t time.Time) *time.Time { return &t }

// soldEdition builds a printed, sold edition with the given number.
func soldEdition(printID uint, number int, price *float64) catalog.Edition {
	return catalog.Edition{
		PrintID:       printID,
		EditionNumber: ip(number),
		IsPrinted:     true,
		IsSold:        true,
		RetailPrice:   price,
	}
}

// stockEdition builds a printed, unsold edition.
func stockEdition(printID uint, number int) catalog.Edition {
	return catalog.Edition{
		PrintID:       printID,
		EditionNumber: ip(number),
		IsPrinted:     true,
	}
}
