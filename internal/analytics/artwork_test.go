package analytics

import (
	"testing"
	"time"

	"editions-app/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtworkStatsBasicScenario(t *testing.T) {
	now := date(2025, time.June, 15)
	prints := []catalog.Print{{ID: 1, Name: "Harbour Dawn", TotalEditions: 2}}
	editions := []catalog.Edition{
		soldEdition(1, 1, fp(100)),
		stockEdition(1, 2),
	}
	editions[0].CommissionPercentage = fp(20)

	stats := ArtworkStats(editions, prints, nil, now)
	require.Len(t, stats, 1)

	st := stats[0]
	assert.Equal(t, 1, st.Sold)
	assert.Equal(t, 1, st.Remaining)
	assert.Equal(t, 50.0, st.SellThroughRate)
	assert.Equal(t, 100.0, st.TotalRevenue)
	assert.Equal(t, 100.0, st.AveragePrice)
}

func TestArtworkStatsExcludesProofs(t *testing.T) {
	now := date(2025, time.June, 15)
	prints := []catalog.Print{{ID: 1, Name: "Harbour Dawn"}}

	proof := soldEdition(1, 0, fp(500))
	unnumbered := soldEdition(1, 5, fp(100))
	unnumbered.EditionNumber = nil
	negative := soldEdition(1, -2, fp(250))

	stats := ArtworkStats([]catalog.Edition{proof, unnumbered, negative, soldEdition(1, 1, fp(100))}, prints, nil, now)
	require.Len(t, stats, 1)

	assert.Equal(t, 1, stats[0].Sold)
	assert.Equal(t, 100.0, stats[0].TotalRevenue)
	assert.Equal(t, 1, stats[0].TotalEditions) // proofs do not count toward the fallback total either
}

func TestArtworkStatsSoldSumMatchesEditions(t *testing.T) {
	now := date(2025, time.June, 15)
	prints := []catalog.Print{
		{ID: 1, Name: "One", TotalEditions: 10},
		{ID: 2, Name: "Two", TotalEditions: 5},
	}
	editions := []catalog.Edition{
		soldEdition(1, 1, fp(100)),
		soldEdition(1, 2, nil),
		soldEdition(2, 1, fp(80)),
		stockEdition(1, 3),
		stockEdition(2, 2),
		soldEdition(1, 0, fp(100)), // proof, excluded
	}

	wantSold := 0
	for _, e := range editions {
		if e.IsSold && e.EditionNumber != nil && *e.EditionNumber > 0 {
			wantSold++
		}
	}

	stats := ArtworkStats(editions, prints, nil, now)
	gotSold := 0
	for _, st := range stats {
		gotSold += st.Sold
		assert.GreaterOrEqual(t, st.SellThroughRate, 0.0)
		assert.LessOrEqual(t, st.SellThroughRate, 100.0)
	}
	assert.Equal(t, wantSold, gotSold)
}

func TestArtworkStatsTotalEditionsFallback(t *testing.T) {
	now := date(2025, time.June, 15)
	prints := []catalog.Print{{ID: 1, Name: "Undeclared"}} // TotalEditions 0

	stats := ArtworkStats([]catalog.Edition{
		soldEdition(1, 1, fp(100)),
		stockEdition(1, 2),
		stockEdition(1, 3),
	}, prints, nil, now)
	require.Len(t, stats, 1)

	assert.Equal(t, 3, stats[0].TotalEditions)
	assert.InDelta(t, 33.33, stats[0].SellThroughRate, 0.01)
}

func TestArtworkStatsSellThroughZeroWhenNoEditions(t *testing.T) {
	now := date(2025, time.June, 15)
	stats := ArtworkStats(nil, []catalog.Print{{ID: 1, Name: "Empty"}}, nil, now)
	require.Len(t, stats, 1)
	assert.Equal(t, 0.0, stats[0].SellThroughRate)
	assert.Equal(t, 0, stats[0].TotalEditions)
}

func TestArtworkStatsVelocityWindow(t *testing.T) {
	now := date(2025, time.June, 15)
	prints := []catalog.Print{{ID: 1, Name: "Windowed", TotalEditions: 10}}

	inside := soldEdition(1, 1, fp(100))
	inside.DateSold = dp(date(2024, time.July, 1))
	outside := soldEdition(1, 2, fp(100))
	outside.DateSold = dp(date(2024, time.May, 1))
	future := soldEdition(1, 3, fp(100))
	future.DateSold = dp(date(2025, time.July, 1))
	undated := soldEdition(1, 4, fp(100))

	stats := ArtworkStats([]catalog.Edition{inside, outside, future, undated}, prints, nil, now)
	require.Len(t, stats, 1)

	st := stats[0]
	assert.Equal(t, 1, st.SalesVelocity)
	// 1 sale against 6 remaining
	assert.InDelta(t, 16.67, st.VelocityPercentage, 0.01)
	require.NotNil(t, st.EstimatedMonthsToSellout)
	// ceil(6 / (1/12)) = 72 months
	assert.Equal(t, 72, *st.EstimatedMonthsToSellout)
}

func TestArtworkStatsSelloutEstimateRules(t *testing.T) {
	now := date(2025, time.June, 15)

	// no velocity -> nil estimate even with stock remaining
	prints := []catalog.Print{{ID: 1, Name: "Slow", TotalEditions: 5}}
	stats := ArtworkStats([]catalog.Edition{soldEdition(1, 1, fp(100))}, prints, nil, now)
	require.Len(t, stats, 1)
	assert.Nil(t, stats[0].EstimatedMonthsToSellout)

	// sold out -> nil estimate, velocity percentage pegged at 100
	prints = []catalog.Print{{ID: 2, Name: "Gone", TotalEditions: 1}}
	gone := soldEdition(2, 1, fp(100))
	gone.DateSold = dp(date(2025, time.May, 1))
	stats = ArtworkStats([]catalog.Edition{gone}, prints, nil, now)
	require.Len(t, stats, 1)
	assert.Equal(t, 0, stats[0].Remaining)
	assert.Nil(t, stats[0].EstimatedMonthsToSellout)
	assert.Equal(t, 100.0, stats[0].VelocityPercentage)
}

func TestArtworkStatsTopGalleryFirstSeenWins(t *testing.T) {
	now := date(2025, time.June, 15)
	prints := []catalog.Print{{ID: 1, Name: "Tied", TotalEditions: 4}}
	distributors := []catalog.Distributor{
		{ID: 7, Name: "North Gallery"},
		{ID: 9, Name: "South Gallery"},
	}

	first := soldEdition(1, 1, fp(100))
	first.DistributorID = up(9) // seen first in edition order
	second := soldEdition(1, 2, fp(100))
	second.DistributorID = up(7)

	stats := ArtworkStats([]catalog.Edition{first, second}, prints, distributors, now)
	require.Len(t, stats, 1)
	require.NotNil(t, stats[0].TopGalleryID)
	assert.Equal(t, uint(9), *stats[0].TopGalleryID)
	assert.Equal(t, "South Gallery", stats[0].TopGalleryName)
}

func TestArtworkStatsSortOrder(t *testing.T) {
	now := date(2025, time.June, 15)
	prints := []catalog.Print{
		{ID: 1, Name: "Half", TotalEditions: 2},
		{ID: 2, Name: "Full", TotalEditions: 1},
		{ID: 3, Name: "AlsoHalfMoreSold", TotalEditions: 4},
	}
	editions := []catalog.Edition{
		soldEdition(1, 1, fp(100)),
		soldEdition(2, 1, fp(100)),
		soldEdition(3, 1, fp(100)),
		soldEdition(3, 2, fp(100)),
	}

	stats := ArtworkStats(editions, prints, nil, now)
	require.Len(t, stats, 3)
	assert.Equal(t, "Full", stats[0].PrintName)
	// 50% vs 50%: higher sold count breaks the tie
	assert.Equal(t, "AlsoHalfMoreSold", stats[1].PrintName)
	assert.Equal(t, "Half", stats[2].PrintName)
}
