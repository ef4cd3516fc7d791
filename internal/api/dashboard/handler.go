package dashboard

import (
	"net/http"
	"strconv"
	"time"

	"editions-app/internal/analytics"
	"editions-app/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{Store: s}
}

// GET /dashboard/artworks
func (h *Handler) ArtworkStats(c *gin.Context) {
	stats := analytics.ArtworkStats(h.Store.Editions(), h.Store.Prints(), h.Store.Distributors(), time.Now())
	c.JSON(http.StatusOK, gin.H{"artworks": stats})
}

// GET /dashboard/galleries
func (h *Handler) GalleryStats(c *gin.Context) {
	stats := analytics.GalleryStats(h.Store.Editions(), h.Store.Distributors())
	c.JSON(http.StatusOK, gin.H{"galleries": stats})
}

// GET /dashboard/matrix
func (h *Handler) Matrix(c *gin.Context) {
	cells := analytics.GalleryArtworkMatrix(h.Store.Editions())
	c.JSON(http.StatusOK, gin.H{"cells": cells})
}

// GET /dashboard/health
func (h *Handler) PortfolioHealth(c *gin.Context) {
	health := analytics.CalculatePortfolioHealth(h.Store.Editions(), h.Store.Prints(), h.Store.Distributors(), time.Now())
	c.JSON(http.StatusOK, health)
}

// GET /dashboard/trends?gallery_id=
// Returns both the calendar-year and the rolling-12-month comparison; the
// two calculators are intentionally separate.
func (h *Handler) Trends(c *gin.Context) {
	galleryID := optionalUintQuery(c, "gallery_id")
	now := time.Now()
	editions := h.Store.Editions()

	c.JSON(http.StatusOK, gin.H{
		"year_over_year": analytics.YearOverYear(editions, now, galleryID),
		"rolling":        analytics.CalculateRollingMetrics(editions, now, galleryID),
	})
}

// GET /dashboard/alerts
func (h *Handler) Alerts(c *gin.Context) {
	now := time.Now()
	editions := h.Store.Editions()
	distributors := h.Store.Distributors()

	artworks := analytics.ArtworkStats(editions, h.Store.Prints(), distributors, now)
	galleries := analytics.GalleryStats(editions, distributors)
	alerts := analytics.GenerateAlerts(artworks, galleries, editions, now)

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// GET /dashboard/tax-year?year=2024
// Defaults to the tax year containing today (UK tax years begin 6 April).
func (h *Handler) TaxYear(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	if now.Before(time.Date(year, time.April, 6, 0, 0, 0, 0, now.Location())) {
		year--
	}
	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}
		year = v
	}

	report := analytics.CalculateTaxYearReport(h.Store.Editions(), h.Store.Distributors(), year)
	c.JSON(http.StatusOK, report)
}

func optionalUintQuery(c *gin.Context, key string) *uint {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	id := uint(v)
	return &id
}
