package analytics

import (
	"testing"
	"time"

	"editions-app/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryStatsAllocationAndConversion(t *testing.T) {
	distributors := []catalog.Distributor{{ID: 1, Name: "North", CommissionPercentage: fp(20)}}

	sold := soldEdition(10, 1, fp(100))
	sold.DistributorID = up(1)
	inStock := stockEdition(10, 2)
	inStock.DistributorID = up(1)
	unprinted := catalog.Edition{PrintID: 10, EditionNumber: ip(3), DistributorID: up(1)} // planned, not stock
	proof := soldEdition(10, 0, fp(100))
	proof.DistributorID = up(1)

	stats := GalleryStats([]catalog.Edition{sold, inStock, unprinted, proof}, distributors)
	require.Len(t, stats, 1)

	st := stats[0]
	assert.Equal(t, 2, st.Allocated)
	assert.Equal(t, 1, st.Sold)
	assert.Equal(t, 1, st.InStock)
	assert.Equal(t, 50.0, st.ConversionRate)
	assert.Equal(t, 100.0, st.GrossRevenue)
	assert.Equal(t, 80.0, st.NetRevenue) // default 20% commission
}

func TestGalleryStatsCommissionOverride(t *testing.T) {
	distributors := []catalog.Distributor{{ID: 1, Name: "North", CommissionPercentage: fp(40)}}

	override := soldEdition(10, 1, fp(100))
	override.DistributorID = up(1)
	override.CommissionPercentage = fp(10)
	fallback := soldEdition(10, 2, fp(100))
	fallback.DistributorID = up(1)

	stats := GalleryStats([]catalog.Edition{override, fallback}, distributors)
	require.Len(t, stats, 1)
	assert.Equal(t, 90.0+60.0, stats[0].NetRevenue)
}

func TestGalleryStatsUnsettledExposure(t *testing.T) {
	distributors := []catalog.Distributor{{ID: 1, Name: "North", CommissionPercentage: fp(20)}}

	settled := soldEdition(10, 1, fp(100))
	settled.DistributorID = up(1)
	settled.IsSettled = true
	owed := soldEdition(10, 2, fp(200))
	owed.DistributorID = up(1)

	stats := GalleryStats([]catalog.Edition{settled, owed}, distributors)
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].UnsettledCount)
	assert.Equal(t, 160.0, stats[0].UnsettledNet)
}

func TestGalleryStatsAverageDaysToSell(t *testing.T) {
	distributors := []catalog.Distributor{{ID: 1, Name: "North"}}

	quick := soldEdition(10, 1, fp(100))
	quick.DistributorID = up(1)
	quick.DateInGallery = dp(date(2025, time.January, 1))
	quick.DateSold = dp(date(2025, time.January, 11)) // 10 days

	slow := soldEdition(10, 2, fp(100))
	slow.DistributorID = up(1)
	slow.DateInGallery = dp(date(2025, time.January, 1))
	slow.DateSold = dp(date(2025, time.January, 31)) // 30 days

	// sold before it arrived: bad data, ignored
	bad := soldEdition(10, 3, fp(100))
	bad.DistributorID = up(1)
	bad.DateInGallery = dp(date(2025, time.March, 1))
	bad.DateSold = dp(date(2025, time.February, 1))

	// missing dates, ignored
	undated := soldEdition(10, 4, fp(100))
	undated.DistributorID = up(1)

	stats := GalleryStats([]catalog.Edition{quick, slow, bad, undated}, distributors)
	require.Len(t, stats, 1)
	require.NotNil(t, stats[0].AverageDaysToSell)
	assert.InDelta(t, 20.0, *stats[0].AverageDaysToSell, 0.001)
}

func TestGalleryStatsNilDaysToSellWithoutDatePairs(t *testing.T) {
	distributors := []catalog.Distributor{{ID: 1, Name: "North"}}
	sold := soldEdition(10, 1, fp(100))
	sold.DistributorID = up(1)

	stats := GalleryStats([]catalog.Edition{sold}, distributors)
	require.Len(t, stats, 1)
	assert.Nil(t, stats[0].AverageDaysToSell)
}

func TestGalleryStatsDropsIdleGalleries(t *testing.T) {
	distributors := []catalog.Distributor{
		{ID: 1, Name: "Active"},
		{ID: 2, Name: "Idle"},
	}
	sold := soldEdition(10, 1, fp(100))
	sold.DistributorID = up(1)

	stats := GalleryStats([]catalog.Edition{sold}, distributors)
	require.Len(t, stats, 1)
	assert.Equal(t, "Active", stats[0].Name)
}

func TestGalleryStatsPerArtworkPerformance(t *testing.T) {
	distributors := []catalog.Distributor{{ID: 1, Name: "North"}}

	a1 := soldEdition(10, 1, fp(100))
	a1.DistributorID = up(1)
	a2 := stockEdition(10, 2)
	a2.DistributorID = up(1)
	b1 := soldEdition(20, 1, fp(100))
	b1.DistributorID = up(1)

	stats := GalleryStats([]catalog.Edition{a1, a2, b1}, distributors)
	require.Len(t, stats, 1)

	perfA := stats[0].Artworks[10]
	assert.Equal(t, 2, perfA.Allocated)
	assert.Equal(t, 1, perfA.Sold)
	assert.Equal(t, 50.0, perfA.ConversionRate)

	perfB := stats[0].Artworks[20]
	assert.Equal(t, 1, perfB.Allocated)
	assert.Equal(t, 100.0, perfB.ConversionRate)
}

func TestGalleryStatsSortByConversionThenSold(t *testing.T) {
	distributors := []catalog.Distributor{
		{ID: 1, Name: "HalfOneSale"},
		{ID: 2, Name: "Full"},
		{ID: 3, Name: "HalfTwoSales"},
	}

	var editions []catalog.Edition
	add := func(distID uint, printID uint, number int, soldFlag bool) {
		e := stockEdition(printID, number)
		e.DistributorID = up(distID)
		if soldFlag {
			e.IsSold = true
			e.RetailPrice = fp(100)
		}
		editions = append(editions, e)
	}
	add(1, 10, 1, true)
	add(1, 10, 2, false)
	add(2, 10, 3, true)
	add(3, 10, 4, true)
	add(3, 10, 5, true)
	add(3, 10, 6, false)
	add(3, 10, 7, false)

	stats := GalleryStats(editions, distributors)
	require.Len(t, stats, 3)
	assert.Equal(t, "Full", stats[0].Name)
	assert.Equal(t, "HalfTwoSales", stats[1].Name)
	assert.Equal(t, "HalfOneSale", stats[2].Name)
}
