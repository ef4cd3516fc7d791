package store

import (
	"time"

	"editions-app/internal/domain/catalog"
)

// EditionPatch is a partial update to one edition. Nil fields are left
// untouched, mirroring the update DTOs on the HTTP surface.
type EditionPatch struct {
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

// IsEmpty reports whether the patch changes nothing.
func (p *EditionPatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Fields returns the set column values keyed by database column name, the
// shape the remote's partial update expects.
func (p *EditionPatch) Fields() map[string]any {
	fields := make(map[string]any)
	if p.DistributorID != nil {
		fields["distributor_id"] = *p.DistributorID
	}
	if p.IsPrinted != nil {
		fields["is_printed"] = *p.IsPrinted
	}
	if p.IsSold != nil {
		fields["is_sold"] = *p.IsSold
	}
	if p.IsSettled != nil {
		fields["is_settled"] = *p.IsSettled
	}
	if p.RetailPrice != nil {
		fields["retail_price"] = *p.RetailPrice
	}
	if p.CommissionPercentage != nil {
		fields["commission_percentage"] = *p.CommissionPercentage
	}
	if p.DateSold != nil {
		fields["date_sold"] = *p.DateSold
	}
	if p.DateInGallery != nil {
		fields["date_in_gallery"] = *p.DateInGallery
	}
	if p.Size != nil {
		fields["size"] = *p.Size
	}
	if p.FrameType != nil {
		fields["frame_type"] = *p.FrameType
	}
	if p.Notes != nil {
		fields["notes"] = *p.Notes
	}
	if p.PaymentNote != nil {
		fields["payment_note"] = *p.PaymentNote
	}
	return fields
}

// FieldNames lists the changed columns in a stable order for the audit
// trail.
func (p *EditionPatch) FieldNames() []string {
	names := make([]string, 0, 4)
	for _, col := range patchColumns {
		if col.set(p) {
			names = append(names, col.name)
		}
	}
	return names
}

var patchColumns = []struct {
	name string
	set  func(*EditionPatch) bool
}{
	{"distributor_id", func(p *EditionPatch) bool { return p.DistributorID != nil }},
	{"is_printed", func(p *EditionPatch) bool { return p.IsPrinted != nil }},
	{"is_sold", func(p *EditionPatch) bool { return p.IsSold != nil }},
	{"is_settled", func(p *EditionPatch) bool { return p.IsSettled != nil }},
	{"retail_price", func(p *EditionPatch) bool { return p.RetailPrice != nil }},
	{"commission_percentage", func(p *EditionPatch) bool { return p.CommissionPercentage != nil }},
	{"date_sold", func(p *EditionPatch) bool { return p.DateSold != nil }},
	{"date_in_gallery", func(p *EditionPatch) bool { return p.DateInGallery != nil }},
	{"size", func(p *EditionPatch) bool { return p.Size != nil }},
	{"frame_type", func(p *EditionPatch) bool { return p.FrameType != nil }},
	{"notes", func(p *EditionPatch) bool { return p.Notes != nil }},
	{"payment_note", func(p *EditionPatch) bool { return p.PaymentNote != nil }},
}

// apply writes the set fields onto the edition.
func (p *EditionPatch) apply(e *catalog.Edition) {
	if p.DistributorID != nil {
		id := *p.DistributorID
		e.DistributorID = &id
	}
	if p.IsPrinted != nil {
		e.IsPrinted = *p.IsPrinted
	}
	if p.IsSold != nil {
		e.IsSold = *p.IsSold
	}
	if p.IsSettled != nil {
		e.IsSettled = *p.IsSettled
	}
	if p.RetailPrice != nil {
		v := *p.RetailPrice
		e.RetailPrice = &v
	}
	if p.CommissionPercentage != nil {
		v := *p.CommissionPercentage
		e.CommissionPercentage = &v
	}
	if p.DateSold != nil {
		v := *p.DateSold
		e.DateSold = &v
	}
	if p.DateInGallery != nil {
		v := *p.DateInGallery
		e.DateInGallery = &v
	}
	if p.Size != nil {
		e.Size = *p.Size
	}
	if p.FrameType != nil {
		e.FrameType = *p.FrameType
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.PaymentNote != nil {
		e.PaymentNote = *p.PaymentNote
	}
}

// Describe classifies the mutation for the audit trail. Priority is fixed:
// a sale outranks a settlement outranks a gallery move outranks printing;
// anything else is a generic field update.
func (p *EditionPatch) Describe() string {
	switch {
	case p.IsSold != nil && *p.IsSold:
		return "Marked as sold"
	case p.IsSettled != nil && *p.IsSettled:
		return "Marked as settled"
	case p.DistributorID != nil:
		return "Moved to gallery"
	case p.IsPrinted != nil && *p.IsPrinted:
		return "Marked as printed"
	default:
		return "Updated edition details"
	}
}
