package prints

// CreatePrintRequest creates a print plus its numbered editions in one go.
// EditionCount editions are created as 1..N, unprinted and unsold, sharing
// the given defaults.
type CreatePrintRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	TotalEditions int    `json:"total_editions"`
	WebLink       string `json:"web_link"`
	Notes         string `json:"notes"`

	EditionCount int      `json:"edition_count"`
	Size         string   `json:"size"`
	FrameType    string   `json:"frame_type"`
	RetailPrice  *float64 `json:"retail_price"`
}
