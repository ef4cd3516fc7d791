package main

import (
	"context"
	"log"
	"time"

	"editions-app/config"
	"editions-app/database"
	routes "editions-app/internal/app/http"
	"editions-app/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	inventory := store.New(store.NewGormRemote(database.DB), logger)
	if err := inventory.Load(context.Background()); err != nil {
		// Keep serving; the dashboard shows the load error and the
		// refresh endpoint retries.
		logger.Error("initial inventory load failed", zap.Error(err))
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, inventory)

	r.Run(":" + config.PORT)
}
