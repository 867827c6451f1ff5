// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maryrojas/rentabilidad-go/internal/api"
	"github.com/maryrojas/rentabilidad-go/internal/cache"
	"github.com/maryrojas/rentabilidad-go/internal/config"
	"github.com/maryrojas/rentabilidad-go/internal/dataset"
	"github.com/maryrojas/rentabilidad-go/internal/service"
	"github.com/maryrojas/rentabilidad-go/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	if cfg.Server.Mode == "debug" {
		logger.SetLevel("debug")
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// The dataset is loaded once per source revision and shared across
	// requests; a failed load keeps the server up with data endpoints
	// answering 503 until the file is fixed.
	datasetCache := cache.NewDatasetCache(dataset.Load)
	profitabilityService := service.NewProfitabilityService(
		datasetCache,
		cfg.Data.File,
		cfg.Analysis.Channels,
		cfg.Analysis.AlertThreshold,
	)

	router := api.NewRouter(
		&api.Services{Profitability: profitabilityService},
		api.Options{
			AllowedOrigins:  cfg.Server.AllowedOrigins,
			DefaultQuantity: cfg.Analysis.DefaultQuantity,
			MinQuantity:     cfg.Analysis.MinQuantity,
		},
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().
			Str("port", cfg.Server.Port).
			Str("data_file", cfg.Data.File).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
