package routes

import (
	"editions-app/internal/api/activity"
	"editions-app/internal/api/dashboard"
	distributorsapi "editions-app/internal/api/distributors"
	editionsapi "editions-app/internal/api/editions"
	printsapi "editions-app/internal/api/prints"
	"editions-app/internal/app/http/middleware"
	"editions-app/internal/store"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, inventory *store.Store) {
	editionsHandler := editionsapi.NewHandler(inventory)
	printsHandler := printsapi.NewHandler(inventory)
	distributorsHandler := distributorsapi.NewHandler(inventory)
	dashboardHandler := dashboard.NewHandler(inventory)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/editions", editionsHandler.ListEditions)
	r.GET("/prints", printsHandler.ListPrints)
	r.GET("/prints/:id", printsHandler.GetPrint)
	r.GET("/distributors", distributorsHandler.ListDistributors)

	r.GET("/dashboard/artworks", dashboardHandler.ArtworkStats)
	r.GET("/dashboard/galleries", dashboardHandler.GalleryStats)
	r.GET("/dashboard/matrix", dashboardHandler.Matrix)
	r.GET("/dashboard/health", dashboardHandler.PortfolioHealth)
	r.GET("/dashboard/trends", dashboardHandler.Trends)
	r.GET("/dashboard/alerts", dashboardHandler.Alerts)
	r.GET("/dashboard/tax-year", dashboardHandler.TaxYear)

	r.GET("/activity", activity.RecentActivity)
	r.GET("/activity/:table/:id", activity.RecordHistory)

	// Mutating routes go through input sanitization
	writes := r.Group("/")
	writes.Use(middleware.SanitizeAndCleanInputMiddleware())

	writes.PUT("/editions/bulk", editionsHandler.BulkUpdateEditions)
	writes.PUT("/editions/:id", editionsHandler.UpdateEdition)
	writes.POST("/prints", printsHandler.CreatePrint)
	writes.POST("/refresh", editionsHandler.Refresh)
}
