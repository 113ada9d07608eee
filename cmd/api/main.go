package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gourmet-order/internal/catalog"
	"gourmet-order/internal/config"
	"gourmet-order/internal/handler"
	"gourmet-order/internal/notifier"
	"gourmet-order/internal/router"
	"gourmet-order/internal/service"
	"gourmet-order/internal/session"

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
	logger.Info().Msg("starting gourmet-order API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the menu catalog: S3 if enabled, then local file, then the
	// built-in menu.
	cat, err := loadCatalog(ctx, cfg.Catalog, logger)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info().Int("items", cat.Size()).Msg("menu catalog ready")

	// Select notifier: telegram if configured, then webhook, then none.
	notif := buildNotifier(cfg.Notifier, logger)

	// Initialize session store with demo seeding
	store := session.NewStore(session.Seeder(cat, cfg.Demo.SeedOrders), logger)

	// Initialize services
	cartService := service.NewCartService(cat, notif, cfg.Notifier.Timeout, logger)
	ratingService := service.NewRatingService(logger)
	dashboardService := service.NewDashboardService(logger)

	// Initialize HTTP handlers
	menuHandler := handler.NewMenuHandler(cat, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	ratingHandler := handler.NewRatingHandler(ratingService, logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)

	// Initialize router
	mux := router.New(menuHandler, cartHandler, ratingHandler, dashboardHandler, store, cfg.Auth.APIKey, logger)

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

// loadCatalog builds the menu catalog from the configured source, falling
// back to the built-in menu when no source is configured or loading fails.
func loadCatalog(ctx context.Context, cfg config.CatalogConfig, logger zerolog.Logger) (*catalog.Catalog, error) {
	if cfg.Path == "" && !cfg.S3Enabled {
		logger.Info().Msg("no catalog source configured, using built-in menu")
		return catalog.Default(), nil
	}

	fileLoader := catalog.NewFileLoader(logger)
	loader := fileLoader

	if cfg.S3Enabled {
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3Bucket, cfg.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			loader = catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3Key, true, logger)
		}
	}

	items, err := loader.Load(ctx, cfg.Path)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load configured catalog, using built-in menu")
		return catalog.Default(), nil
	}

	return catalog.New(items)
}

// buildNotifier selects the notifier implementation from configuration.
// Telegram wins over webhook; with neither set, notifications are skipped.
func buildNotifier(cfg config.NotifierConfig, logger zerolog.Logger) notifier.Notifier {
	if cfg.TelegramToken != "" {
		notif, err := notifier.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID, cfg.Timeout, logger)
		if err == nil {
			return notif
		}
		logger.Warn().Err(err).Msg("failed to initialise telegram notifier")
		if cfg.WebhookURL == "" {
			return notifier.NewNoop()
		}
	}

	if cfg.WebhookURL != "" {
		return notifier.NewWebhook(cfg.WebhookURL, cfg.Timeout, logger)
	}

	logger.Info().Msg("no notification endpoint configured, order notifications disabled")
	return notifier.NewNoop()
}
