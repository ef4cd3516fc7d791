package analytics

import (
	"testing"
	"time"

	"editions-app/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
)

func TestPortfolioHealthRollup(t *testing.T) {
	now := date(2025, time.June, 15)
	prints := []catalog.Print{
		{ID: 1, Name: "SoldOut", TotalEditions: 2},
		{ID: 2, Name: "NearlyGone", TotalEditions: 10},
		{ID: 3, Name: "Fresh", TotalEditions: 10},
	}
	distributors := []catalog.Distributor{{ID: 1, Name: "North", CommissionPercentage: fp(20)}}

	var editions []catalog.Edition
	// print 1: fully sold
	for n := 1; n <= 2; n++ {
		e := soldEdition(1, n, fp(100))
		editions = append(editions, e)
	}
	// print 2: 9 of 10 sold -> 90% but not sold out
	for n := 1; n <= 9; n++ {
		editions = append(editions, soldEdition(2, n, fp(50)))
	}
	editions = append(editions, stockEdition(2, 10))
	// print 3: nothing sold
	editions = append(editions, stockEdition(3, 1))

	// one sale through the gallery, unsettled
	editions[0].DistributorID = up(1)

	health := CalculatePortfolioHealth(editions, prints, distributors, now)

	assert.Equal(t, 3, health.TotalPrints)
	assert.Equal(t, 22, health.TotalEditions)
	assert.Equal(t, 11, health.TotalSold)
	assert.Equal(t, 1, health.SoldOutCount)
	assert.Equal(t, 1, health.NearSelloutCount)
	assert.InDelta(t, 50.0, health.OverallSellThrough, 0.001)

	// gross: 2x100 + 9x50 = 650
	assert.Equal(t, 650.0, health.GrossRevenue)
	// net: the gallery sale keeps 80, everything else has no commission
	assert.Equal(t, 630.0, health.NetRevenue)
	// nothing is settled yet
	assert.Equal(t, 11, health.UnsettledCount)
	assert.Equal(t, 630.0, health.UnsettledNet)
}

func TestPortfolioHealthSoldOutAndNearSelloutAreDistinct(t *testing.T) {
	now := date(2025, time.June, 15)
	prints := []catalog.Print{{ID: 1, Name: "Gone", TotalEditions: 10}}

	var editions []catalog.Edition
	for n := 1; n <= 10; n++ {
		editions = append(editions, soldEdition(1, n, fp(10)))
	}

	health := CalculatePortfolioHealth(editions, prints, nil, now)
	assert.Equal(t, 1, health.SoldOutCount)
	assert.Equal(t, 0, health.NearSelloutCount)
}

func TestPortfolioHealthEmpty(t *testing.T) {
	health := CalculatePortfolioHealth(nil, nil, nil, date(2025, time.June, 15))
	assert.Equal(t, 0, health.TotalPrints)
	assert.Equal(t, 0.0, health.OverallSellThrough)
	assert.Equal(t, 0.0, health.NetRevenue)
}
