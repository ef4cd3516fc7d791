package catalog

import (
	"time"
)

// Print is one artwork design in the master catalog. Each physical copy of
// it is an Edition.
type Print struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"type:varchar(100);not null;uniqueIndex:idx_prints_name" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// TotalEditions is the declared run size. Zero means undeclared; the
	// aggregators then fall back to counting actual editions.
	TotalEditions int `gorm:"not null;default:0" json:"total_editions"`

	WebLink string `gorm:"type:varchar(500)" json:"web_link,omitempty"`
	Notes   string `gorm:"type:text" json:"notes,omitempty"`

	Editions []Edition `gorm:"foreignKey:PrintID;constraint:OnDelete:CASCADE;" json:"editions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
