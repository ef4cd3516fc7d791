package catalog

import (
	"time"
)

// Distributor is a gallery or other sales channel holding allocated
// editions. Payouts to the artist are net of its commission unless an
// edition carries a per-sale override.
type Distributor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"type:varchar(100);not null;uniqueIndex:idx_distributors_name" json:"name"`

	// CommissionPercentage is the default commission (0-100). Nil means the
	// gallery has no agreed rate yet; net calculations treat it as 0.
	CommissionPercentage *float64 `gorm:"type:decimal(5,2)" json:"commission_percentage,omitempty"`

	ContactNumber string `gorm:"type:varchar(50)" json:"contact_number,omitempty"`
	WebAddress    string `gorm:"type:varchar(500)" json:"web_address,omitempty"`
	Notes         string `gorm:"type:text" json:"notes,omitempty"`

	Editions []Edition `gorm:"foreignKey:DistributorID;constraint:OnDelete:SET NULL;" json:"editions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
