package catalog

import (
	"time"
)

const (
	SizeSmall      = "Small"
	SizeLarge      = "Large"
	SizeExtraLarge = "Extra Large"

	FrameFramed   = "Framed"
	FrameTubeOnly = "Tube only"
	FrameMounted  = "Mounted"
)

// Edition is one physical numbered copy of a Print.
//
// EditionNumber nil or <= 0 marks artist proofs and test prints; those are
// excluded from every statistic. Lifecycle flags are expected to be
// monotonic in well-formed data (settled implies sold implies printed) but
// the aggregators only assume it, they do not enforce it.
type Edition struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PrintID uint   `gorm:"not null;index;uniqueIndex:idx_editions_print_number,priority:1" json:"print_id"`
	Print   *Print `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"print,omitempty"`

	DistributorID *uint        `gorm:"index" json:"distributor_id,omitempty"`
	Distributor   *Distributor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"distributor,omitempty"`

	EditionNumber *int   `gorm:"uniqueIndex:idx_editions_print_number,priority:2" json:"edition_number,omitempty"`
	DisplayName   string `gorm:"type:varchar(100);not null" json:"display_name"`

	Size      string `gorm:"type:varchar(20)" json:"size,omitempty"`
	FrameType string `gorm:"type:varchar(20)" json:"frame_type,omitempty"`
	Variation string `gorm:"type:varchar(20)" json:"variation,omitempty"`

	IsPrinted bool `gorm:"not null;default:false" json:"is_printed"`
	IsSold    bool `gorm:"not null;default:false" json:"is_sold"`
	IsSettled bool `gorm:"not null;default:false" json:"is_settled"`

	RetailPrice *float64 `gorm:"type:decimal(10,2)" json:"retail_price,omitempty"`

	// CommissionPercentage overrides the distributor default for this sale.
	CommissionPercentage *float64 `gorm:"type:decimal(5,2)" json:"commission_percentage,omitempty"`

	DateSold      *time.Time `gorm:"type:date" json:"date_sold,omitempty"`
	DateInGallery *time.Time `gorm:"type:date" json:"date_in_gallery,omitempty"`

	Notes       string `gorm:"type:text" json:"notes,omitempty"`
	PaymentNote string `gorm:"type:text" json:"payment_note,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsProof reports whether the edition is a proof/test print that must never
// affect statistics.
func (e *Edition) IsProof() bool {
	return e.EditionNumber == nil || *e.EditionNumber <= 0
}
