// ABOUTME: Main entry point for the Memoria API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"memoria-app-api/api"
	"memoria-app-api/core/content"
	"memoria-app-api/core/interfaces"
	"memoria-app-api/core/photos"
	"memoria-app-api/core/reader"
	"memoria-app-api/core/services"
	"memoria-app-api/infrastructure/http/standard"
	kvmemory "memoria-app-api/infrastructure/keyvalue/memory"
	kvredis "memoria-app-api/infrastructure/keyvalue/redis"
	kvsqlite "memoria-app-api/infrastructure/keyvalue/sqlite"
	logruslogger "memoria-app-api/infrastructure/logger/logrus"
	stdlogger "memoria-app-api/infrastructure/logger/standard"
	"memoria-app-api/infrastructure/share/download"
	"memoria-app-api/infrastructure/share/link"
	"memoria-app-api/infrastructure/storage/filesystem"
	"memoria-app-api/pkg/config"
	"memoria-app-api/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	var logger interfaces.Logger
	if cfg.LogFormat == "json" {
		logger = logruslogger.NewLogger()
	} else {
		logger = stdlogger.NewLogger()
	}
	flags := featureflags.NewEnvManager("")
	logger.Info("Starting Memoria API", map[string]interface{}{
		"port":     cfg.Server.Port,
		"kv_store": cfg.KV.Store,
		"runtime":  cfg.Photos.Runtime,
		"features": flags.GetAllFlags(),
	})

	// Create key-value store
	var kv interfaces.KeyValueStore
	switch cfg.KV.Store {
	case "redis":
		redisStore, err := kvredis.NewStore(cfg.KV.Redis)
		if err != nil {
			logger.Error("Failed to connect to Redis, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			kv = kvmemory.NewStore()
		} else {
			kv = redisStore
			logger.Info("Using Redis key-value store", map[string]interface{}{
				"address": cfg.KV.Redis.Address,
			})
		}
	case "sqlite":
		sqliteStore, err := kvsqlite.NewStore(cfg.KV.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open SQLite store: %v", err)
		}
		kv = sqliteStore
		logger.Info("Using SQLite key-value store", map[string]interface{}{
			"path": cfg.KV.SQLitePath,
		})
	default:
		kv = kvmemory.NewStore()
		logger.Info("Using in-memory key-value store", nil)
	}

	// Create HTTP client
	httpClient := standard.NewClient(30 * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		KV:         kv,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create photo storage and the environment strategy
	storage, err := filesystem.NewStorage(cfg.Photos.Dir)
	if err != nil {
		log.Fatalf("Failed to create photo storage: %v", err)
	}

	var env photos.Environment
	if cfg.Photos.Runtime == config.RuntimeHybrid {
		serveBase := fmt.Sprintf("http://localhost:%s/photos", cfg.Server.Port)
		env = photos.NewNativeEnvironment(serveBase)
	} else {
		env = photos.NewWebEnvironment(httpClient)
	}

	// Create photo service with share surface and download fallback
	photoService := photos.NewService(deps, storage, env)

	var shareSurface *link.Surface
	if flags.IsEnabled(featureflags.ShareLinks) {
		shareSurface = link.NewSurface(kv, 0)
		photoService.SetShareSurface(shareSurface)
	}

	downloadDir, err := download.NewDirectory(cfg.Photos.DownloadsDir)
	if err != nil {
		log.Fatalf("Failed to create downloads directory: %v", err)
	}
	photoService.SetDownloader(downloadDir)

	// Create content service with metadata and color enrichment
	var contentService *content.Service
	if cfg.Content.ArticlesURL != "" || cfg.Content.PlacesURL != "" {
		contentService = content.NewService(deps, content.Config{
			ArticlesURL: cfg.Content.ArticlesURL,
			PlacesURL:   cfg.Content.PlacesURL,
			WordLimit:   cfg.Content.PreviewWordLimit,
		})
		if flags.IsEnabled(featureflags.ContentEnrichment) {
			contentService.SetMetadataService(services.NewMetadataService(deps))
			contentService.SetThumbnailColorService(services.NewThumbnailColorService(deps))
		}
	}

	// Create reader service
	readerService := reader.NewService(kv, logger)

	// Build the API handler with middleware
	svcs := api.Services{
		Photos: photoService,
		Reader: readerService,
		Shares: shareSurface,
	}
	if contentService != nil {
		svcs.Content = contentService
	}

	apiConfig := api.Config{Logger: logger}
	if flags.IsEnabled(featureflags.RateLimitEnabled) {
		apiConfig.RateLimitRPS = 10
		apiConfig.RateLimitBurst = 30
	}
	apiHandler := api.NewHandler(apiConfig, svcs)

	// Serve stored photos next to the API so the native-shell display
	// layer can render them by URL
	mux := http.NewServeMux()
	mux.Handle("/photos/", http.StripPrefix("/photos/", http.FileServer(http.Dir(cfg.Photos.Dir))))
	mux.Handle("/", apiHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
