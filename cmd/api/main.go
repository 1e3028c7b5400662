package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/primelogicsol/artstay-booking/internal/adapters/cache"
	"github.com/primelogicsol/artstay-booking/internal/adapters/selection"
	"github.com/primelogicsol/artstay-booking/internal/api/handlers"
	"github.com/primelogicsol/artstay-booking/internal/api/middleware"
	"github.com/primelogicsol/artstay-booking/internal/api/routes"
	"github.com/primelogicsol/artstay-booking/internal/application/services"
	"github.com/primelogicsol/artstay-booking/internal/domain/providers"
	"github.com/primelogicsol/artstay-booking/internal/infrastructure/clients/artstayapi"
	redisclient "github.com/primelogicsol/artstay-booking/internal/infrastructure/clients/redis"
	"github.com/primelogicsol/artstay-booking/internal/infrastructure/observability"
	"github.com/primelogicsol/artstay-booking/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)
	logger := log.Logger

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Initialize Redis client
	redisClient, err := redisclient.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable; running with in-memory selections and no response cache")
		redisClient = nil
	} else {
		defer redisClient.Close()
		logger.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Redis client initialized")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Selections live in Redis when available so sessions survive restarts;
	// the in-memory store is the single-instance fallback.
	var selectionStore providers.SelectionStore
	if redisClient != nil {
		selectionStore = selection.NewRedisStore(redisClient, time.Duration(cfg.Session.TTLMinutes)*time.Minute)
	} else {
		selectionStore = selection.NewMemoryStore()
	}

	// Initialize the upstream catalog/booking API client
	apiClient := artstayapi.NewClient(cfg.CatalogAPI.BaseURL, time.Duration(cfg.CatalogAPI.TimeoutSeconds)*time.Second)
	apiClient.SetMetrics(metrics)

	// Initialize services
	catalogService := services.NewCatalogService(apiClient, cacheProvider)
	selectionService := services.NewSelectionService(apiClient, selectionStore)
	calendarService := services.NewCalendarService(selectionStore, nil)
	bookingService := services.NewBookingService(selectionStore, apiClient)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	selectionHandler := handlers.NewSelectionHandler(selectionService)
	calendarHandler := handlers.NewCalendarHandler(calendarService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Initialize cache middleware
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
		logger.Info().Msg("response cache middleware initialized")
	}

	// Set up router
	router := routes.NewRouter(
		catalogHandler,
		selectionHandler,
		calendarHandler,
		bookingHandler,
		cacheMiddleware,
		metrics,
	)
	handler := router.SetupRoutes()

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.ListenAddr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server stopped")
}
