package editions

import (
	"time"

	"editions-app/internal/store"
)

// ---------- requests

type UpdateEditionRequest struct {
	DistributorID *uint `json:"distributor_id"`

	IsPrinted *bool `json:"is_printed"`
	IsSold    *bool `json:"is_sold"`
	IsSettled *bool `json:"is_settled"`

	RetailPrice          *float64 `json:"retail_price"`
	CommissionPercentage *float64 `json:"commission_percentage"`

	DateSold      *time.Time `json:"date_sold"`
	DateInGallery *time.Time `json:"date_in_gallery"`

	Size      *string `json:"size"`
	FrameType *string `json:"frame_type"`

	Notes       *string `json:"notes"`
	PaymentNote *string `json:"payment_note"`
}

type BulkUpdateRequest struct {
	IDs []uint `json:"ids" binding:"required"`
	UpdateEditionRequest
}

func (r *UpdateEditionRequest) toPatch() store.EditionPatch {
	return store.EditionPatch{
		DistributorID:        r.DistributorID,
		IsPrinted:            r.IsPrinted,
		IsSold:               r.IsSold,
		IsSettled:            r.IsSettled,
		RetailPrice:          r.RetailPrice,
		CommissionPercentage: r.CommissionPercentage,
		DateSold:             r.DateSold,
		DateInGallery:        r.DateInGallery,
		Size:                 r.Size,
		FrameType:            r.FrameType,
		Notes:                r.Notes,
		PaymentNote:          r.PaymentNote,
	}
}
