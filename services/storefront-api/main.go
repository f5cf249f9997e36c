package main

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/storelane/store-backend/pkg/apihelpers"
	"github.com/storelane/store-backend/services/storefront-api/apihandlers"
)

func main() {

	// Start webserver
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     conf.GinConfig.AllowOrigins,
		AllowMethods:     []string{"POST", "GET"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length"},
		ExposeHeaders:    []string{"Content-Type", "Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Add handlers
	router.GET("/", apihandlers.HealthCheckHandle)
	v1Root := router.Group("/v1")

	v1APIHandlers := apihandlers.NewHTTPHandler(
		catalogDBService,
		orderDBService,
		reviewDBService,
		settingsDBService,
	)
	v1APIHandlers.AddStoreInfoAPI(v1Root)
	v1APIHandlers.AddCatalogAPI(v1Root)
	v1APIHandlers.AddOrderAPI(v1Root)
	v1APIHandlers.AddReviewAPI(v1Root)

	if conf.FilestorePath != "" {
		router.Static("/files", conf.FilestorePath)
	}

	if conf.GinConfig.DebugMode {
		apihelpers.WriteRoutesToFile(router, "storefront-api-routes.txt")
	}

	// Start the server
	slog.Info("Starting Storefront API", slog.String("port", conf.GinConfig.Port))
	err := router.Run(":" + conf.GinConfig.Port)
	if err != nil {
		slog.Error("Exited Storefront API", slog.String("error", err.Error()))
		return
	}
}
