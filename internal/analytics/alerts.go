package analytics

import (
	"fmt"
	"sort"
	"time"

	"editions-app/internal/domain/catalog"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

const (
	AlertNearlySoldOut    = "nearly_sold_out"
	AlertSoldOut          = "sold_out"
	AlertHighVelocity     = "high_velocity"
	AlertLowStock         = "low_stock"
	AlertUnsettledBacklog = "unsettled_backlog"
	AlertStaleInventory   = "stale_inventory"
)

// InventoryAlert is one row of the dashboard alert feed.
type InventoryAlert struct {
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`

	PrintID       *uint `json:"print_id,omitempty"`
	DistributorID *uint `json:"distributor_id,omitempty"`
}

const staleInventoryDays = 180

// GenerateAlerts runs the alert rules over the precomputed aggregates plus
// one pass over the raw editions for stale stock. Output is ordered
// critical, warning, info; within a severity the insertion order holds.
func GenerateAlerts(artworks []ArtworkStat, galleries []GalleryStat, editions []catalog.Edition, now time.Time) []InventoryAlert {
	var alerts []InventoryAlert

	for i := range artworks {
		st := &artworks[i]
		id := st.PrintID
		switch {
		case st.Remaining >= 1 && st.Remaining <= 5 && st.SellThroughRate >= 90:
			alerts = append(alerts, InventoryAlert{
				Type:     AlertNearlySoldOut,
				Severity: SeverityWarning,
				Title:    fmt.Sprintf("%s nearly sold out", st.PrintName),
				Message:  fmt.Sprintf("Only %d of %d editions left", st.Remaining, st.TotalEditions),
				PrintID:  &id,
			})
		case st.Remaining == 0 && st.Sold > 0:
			alerts = append(alerts, InventoryAlert{
				Type:     AlertSoldOut,
				Severity: SeverityInfo,
				Title:    fmt.Sprintf("%s is sold out", st.PrintName),
				Message:  fmt.Sprintf("All %d editions sold", st.TotalEditions),
				PrintID:  &id,
			})
		}
		if st.VelocityPercentage >= 50 && st.Remaining > 5 {
			alerts = append(alerts, InventoryAlert{
				Type:     AlertHighVelocity,
				Severity: SeverityInfo,
				Title:    fmt.Sprintf("%s is selling fast", st.PrintName),
				Message:  fmt.Sprintf("%d sales in the last 12 months against %d remaining", st.SalesVelocity, st.Remaining),
				PrintID:  &id,
			})
		}
	}

	yearAgo := now.AddDate(-1, 0, 0)
	sales12mo := make(map[uint]int)
	for i := range editions {
		e := &editions[i]
		if e.IsProof() || !e.IsSold || e.DistributorID == nil || e.DateSold == nil {
			continue
		}
		if e.DateSold.After(yearAgo) && !e.DateSold.After(now) {
			sales12mo[*e.DistributorID]++
		}
	}

	for i := range galleries {
		st := &galleries[i]
		id := st.DistributorID
		if st.InStock > 0 && st.InStock <= 3 && sales12mo[id] > 0 {
			alerts = append(alerts, InventoryAlert{
				Type:          AlertLowStock,
				Severity:      SeverityWarning,
				Title:         fmt.Sprintf("%s is low on stock", st.Name),
				Message:       fmt.Sprintf("%d editions in stock, %d sales in the last 12 months", st.InStock, sales12mo[id]),
				DistributorID: &id,
			})
		}
		if st.UnsettledCount >= 3 {
			alerts = append(alerts, InventoryAlert{
				Type:          AlertUnsettledBacklog,
				Severity:      SeverityWarning,
				Title:         fmt.Sprintf("%s has unsettled sales", st.Name),
				Message:       fmt.Sprintf("%d sold editions awaiting settlement (£%.2f net)", st.UnsettledCount, st.UnsettledNet),
				DistributorID: &id,
			})
		}
	}

	alerts = append(alerts, staleInventoryAlerts(galleries, editions, now)...)

	sort.SliceStable(alerts, func(i, j int) bool {
		return severityRank(alerts[i].Severity) < severityRank(alerts[j].Severity)
	})

	return alerts
}

// staleInventoryAlerts flags galleries sitting on 3 or more printed, unsold
// editions that have been with them for 180 days or longer.
func staleInventoryAlerts(galleries []GalleryStat, editions []catalog.Edition, now time.Time) []InventoryAlert {
	names := make(map[uint]string, len(galleries))
	for _, g := range galleries {
		names[g.DistributorID] = g.Name
	}

	stale := make(map[uint]int)
	var order []uint
	for i := range editions {
		e := &editions[i]
		if e.IsProof() || !e.IsPrinted || e.IsSold || e.DistributorID == nil || e.DateInGallery == nil {
			continue
		}
		if now.Sub(*e.DateInGallery).Hours()/24 < staleInventoryDays {
			continue
		}
		if _, seen := stale[*e.DistributorID]; !seen {
			order = append(order, *e.DistributorID)
		}
		stale[*e.DistributorID]++
	}

	var alerts []InventoryAlert
	for _, distID := range order {
		count := stale[distID]
		if count < 3 {
			continue
		}
		id := distID
		name := names[distID]
		if name == "" {
			name = fmt.Sprintf("Gallery %d", distID)
		}
		alerts = append(alerts, InventoryAlert{
			Type:          AlertStaleInventory,
			Severity:      SeverityInfo,
			Title:         fmt.Sprintf("Stale stock at %s", name),
			Message:       fmt.Sprintf("%d editions have been in the gallery for over %d days", count, staleInventoryDays),
			DistributorID: &id,
		})
	}
	return alerts
}

func severityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}
