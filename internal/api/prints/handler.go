package prints

import (
	"fmt"
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

// GET /prints
func (h *Handler) ListPrints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"prints": h.Store.Prints()})
}

// GET /prints/:id
func (h *Handler) GetPrint(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid print id"})
		return
	}

	for _, p := range h.Store.Prints() {
		if p.ID == uint(id) {
			c.JSON(http.StatusOK, p)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Print not found"})
}

// POST /prints
func (h *Handler) CreatePrint(c *gin.Context) {
	var req CreatePrintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	count := req.EditionCount
	if count == 0 {
		count = req.TotalEditions
	}
	if count < 0 || count > 1000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid edition count"})
		return
	}

	newPrint := catalog.Print{
		Name:          req.Name,
		Description:   req.Description,
		TotalEditions: req.TotalEditions,
		WebLink:       req.WebLink,
		Notes:         req.Notes,
	}

	denom := req.TotalEditions
	if denom == 0 {
		denom = count
	}
	editions := make([]catalog.Edition, 0, count)
	for n := 1; n <= count; n++ {
		num := n
		editions = append(editions, catalog.Edition{
			EditionNumber: &num,
			DisplayName:   fmt.Sprintf("%s %d/%d", req.Name, n, denom),
			Size:          req.Size,
			FrameType:     req.FrameType,
			RetailPrice:   req.RetailPrice,
		})
	}

	if err := h.Store.CreatePrintWithEditions(c.Request.Context(), &newPrint, editions); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create print"})
		return
	}

	c.JSON(http.StatusCreated, newPrint)
}
