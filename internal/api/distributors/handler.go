package distributors

import (
	"net/http"

	"editions-app/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{Store: s}
}

// GET /distributors
func (h *Handler) ListDistributors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"distributors": h.Store.Distributors()})
}
