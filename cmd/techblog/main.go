// Package main is the entry point for the techblog server. It loads
// configuration, opens the JSON document store, connects optional
// services, sets up routing, and starts the HTTP server with graceful
// shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"techblog/internal/cache"
	"techblog/internal/config"
	"techblog/internal/database"
	"techblog/internal/handlers"
	"techblog/internal/memstore"
	"techblog/internal/router"
	"techblog/internal/storage"
	"techblog/internal/store"
)

func main() {
	// Local development reads a .env file; absence is fine.
	_ = godotenv.Load()

	// Structured logger — text output, debug level.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"dataDir", cfg.DataDir,
	)

	// Open the JSON document store, seeding default content on first run.
	db, err := database.Open(cfg.DataDir)
	if err != nil {
		slog.Error("failed to open data directory", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey if configured (optional — app works without it).
	var responseCache *cache.ResponseCache
	if cfg.CacheEnabled() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		responseCache = cache.NewResponseCache(valkeyClient, cache.DefaultResponseTTL)
	} else {
		slog.Warn("valkey not configured — response caching disabled")
	}

	// Connect to S3-compatible object storage (optional too).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured — media uploads disabled")
	}

	// Initialize data stores over the shared document store.
	postStore := store.NewPostStore(db)
	commentStore := store.NewCommentStore(db)
	categoryStore := store.NewCategoryStore(db)
	settingStore := store.NewSettingStore(db)
	analyticsStore := store.NewAnalyticsStore(db)

	// The in-memory demo mirror reseeds on every start.
	mirror := memstore.New()

	// Create handler groups with their dependencies.
	api := handlers.NewAPI(postStore, commentStore, categoryStore, settingStore, analyticsStore, mirror, responseCache, storageClient)
	public := handlers.NewPublic(postStore, commentStore, settingStore)

	// Set up the Chi router with all middleware and routes.
	r := router.New(api, public)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
