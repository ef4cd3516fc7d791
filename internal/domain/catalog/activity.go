package catalog

import (
	"time"
)

const (
	ActivityActionInsert = "INSERT"
	ActivityActionUpdate = "UPDATE"
)

// ActivityEntry is one row of the append-only change log. Written
// fire-and-forget after successful mutations; a failed write is logged and
// dropped, it never fails the mutation itself.
type ActivityEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MutationID string `gorm:"type:varchar(50);not null;index" json:"mutation_id"`
	Table      string `gorm:"column:table_name;type:varchar(50);not null;index:idx_activity_table_record,priority:1" json:"table_name"`
	RecordID   uint   `gorm:"not null;index:idx_activity_table_record,priority:2" json:"record_id"`
	Action     string `gorm:"type:varchar(10);not null" json:"action"`

	// Description is the human-readable classification of the change
	// (sale, settlement, gallery move, printed, generic update).
	Description string `gorm:"type:varchar(100)" json:"description"`

	ChangedFields string `gorm:"type:text" json:"changed_fields,omitempty"` // comma-separated
	OldValues     string `gorm:"type:jsonb" json:"old_values,omitempty"`
	NewValues     string `gorm:"type:jsonb" json:"new_values,omitempty"`

	CreatedAt time.Time `gorm:"index:,sort:desc" json:"created_at"`
}

func (ActivityEntry) TableName() string { return "activity_log" }
