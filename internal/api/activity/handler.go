package activity

import (
	"net/http"
	"strconv"
	"time"

	"editions-app/database"
	"editions-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// GET /activity?hours=24
func RecentActivity(c *gin.Context) {
	hours := 24
	if raw := c.Query("hours"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hours"})
			return
		}
		hours = v
	}

	since := time.Now().Add(-time.Duration(hours) * time.Hour)

	var entries []catalog.ActivityEntry
	err := database.DB.
		Where("created_at > ?", since).
		Order("created_at DESC").
		Limit(500).
		Find(&entries).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GET /activity/:table/:id — full change history of one record.
func RecordHistory(c *gin.Context) {
	table := c.Param("table")
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record id"})
		return
	}

	var entries []catalog.ActivityEntry
	err = database.DB.
		Where("table_name = ? AND record_id = ?", table, uint(id)).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
