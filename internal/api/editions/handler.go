package editions

import (
	"net/http"
	"strconv"

	"editions-app/internal/domain/catalog"
	"editions-app/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{Store: s}
}

// GET /editions?print_id=&distributor_id=&status=
// status: printed | unprinted | sold | unsold | settled | unsettled | proofs
func (h *Handler) ListEditions(c *gin.Context) {
	all := h.Store.Editions()

	printID, hasPrint := parseUintQuery(c, "print_id")
	distributorID, hasDist := parseUintQuery(c, "distributor_id")
	status := c.Query("status")

	out := make([]catalog.Edition, 0, len(all))
	for i := range all {
		e := all[i]
		if hasPrint && e.PrintID != printID {
			continue
		}
		if hasDist && (e.DistributorID == nil || *e.DistributorID != distributorID) {
			continue
		}
		if !matchStatus(&e, status) {
			continue
		}
		out = append(out, e)
	}

	c.JSON(http.StatusOK, gin.H{
		"editions":   out,
		"saving_ids": h.Store.SavingIDs(),
		"load_error": h.Store.LoadError(),
	})
}

// PUT /editions/:id
func (h *Handler) UpdateEdition(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid edition id"})
		return
	}

	var req UpdateEditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	result := h.Store.UpdateEdition(c.Request.Context(), uint(id), req.toPatch())
	if !result.OK {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Update failed and was rolled back"})
		return
	}

	updated, ok := h.Store.Edition(uint(id))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Edition not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// PUT /editions/bulk
func (h *Handler) BulkUpdateEditions(c *gin.Context) {
	var req BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	if len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No edition ids given"})
		return
	}

	result := h.Store.UpdateEditions(c.Request.Context(), req.IDs, req.toPatch())
	if !result.OK {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Bulk update failed and was rolled back"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": len(req.IDs)})
}

// POST /refresh
func (h *Handler) Refresh(c *gin.Context) {
	if err := h.Store.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": h.Store.LoadError()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func matchStatus(e *catalog.Edition, status string) bool {
	switch status {
	case "":
		return true
	case "printed":
		return e.IsPrinted
	case "unprinted":
		return !e.IsPrinted
	case "sold":
		return e.IsSold
	case "unsold":
		return !e.IsSold
	case "settled":
		return e.IsSettled
	case "unsettled":
		return e.IsSold && !e.IsSettled
	case "proofs":
		return e.IsProof()
	default:
		return true
	}
}

func parseUintQuery(c *gin.Context, key string) (uint, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
