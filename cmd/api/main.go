package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kirana/internal/config"
	"kirana/internal/database"
	"kirana/internal/handler"
	"kirana/internal/repository"
	"kirana/internal/router"
	"kirana/internal/seed"
	"kirana/internal/service"
	"kirana/internal/static"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("env", cfg.Env).Msg("starting kirana API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Seed empty tables before accepting traffic
	dataset, err := seed.Default()
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}
	seeder := service.NewSeedService(repository.NewSeedRepository(pool, logger), dataset, logger)
	if err := seeder.Seed(ctx); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(pool, logger)
	productRepo := repository.NewProductRepository(pool, logger)
	showcaseRepo := repository.NewShowcaseRepository(pool, logger)

	// Initialize services
	catalogService := service.NewCatalogService(categoryRepo, productRepo, logger)
	showcaseService := service.NewShowcaseService(showcaseRepo, logger)

	// Initialize HTTP handlers
	categoryHandler := handler.NewCategoryHandler(catalogService, logger)
	productHandler := handler.NewProductHandler(catalogService, logger)
	showcaseHandler := handler.NewShowcaseHandler(showcaseService, logger)
	staticHandler := handler.NewStaticHandler(newStaticSource(ctx, cfg, logger), logger)

	// Initialize router
	mux := router.New(categoryHandler, productHandler, showcaseHandler, staticHandler, cfg.Server.CORSAllowedOrigin, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newStaticSource serves SEO files from the local directory, preferring S3 when enabled.
func newStaticSource(ctx context.Context, cfg *config.Config, logger zerolog.Logger) static.Source {
	fileSource := static.NewFileSource(cfg.Static.Dir, logger)

	if !cfg.S3.Enabled {
		logger.Info().Str("dir", cfg.Static.Dir).Msg("using local file system for SEO files (S3 disabled)")
		return fileSource
	}

	s3Source, err := static.NewS3Source(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Prefix, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 source, falling back to local file system only")
		return fileSource
	}

	return static.NewFallbackSource(s3Source, fileSource, logger)
}
