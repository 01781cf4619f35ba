package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carewise/carehome-directory/internal/adapters/cache"
	"github.com/carewise/carehome-directory/internal/adapters/memstore"
	"github.com/carewise/carehome-directory/internal/api/handlers"
	"github.com/carewise/carehome-directory/internal/api/routes"
	appservices "github.com/carewise/carehome-directory/internal/application/services"
	"github.com/carewise/carehome-directory/internal/domain/repositories"
	redisclient "github.com/carewise/carehome-directory/internal/infrastructure/clients/redis"
	"github.com/carewise/carehome-directory/internal/infrastructure/observability"
	query "github.com/carewise/carehome-directory/internal/query/services"
	"github.com/carewise/carehome-directory/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("carehome-directory", cfg.Environment)
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
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

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Record stores: the care home catalog is seeded once and read-only
	// afterwards; inquiries are append-only.
	careHomeStore, err := memstore.NewSeededCareHomeStore()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed care home catalog")
	}
	inquiryStore := memstore.NewInquiryStore()
	logger.Info().Int("care_homes", len(memstore.DefaultCareHomes())).Msg("catalog seeded")

	var careHomeRepo repositories.CareHomeRepository = careHomeStore
	if cfg.Redis.Enabled {
		redisClient, err := redisclient.NewClient(&cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("Redis unavailable, running without cache")
		} else {
			defer redisClient.Close()
			cacheProvider := cache.NewRedisAdapter(redisClient)
			careHomeRepo = memstore.NewCachedCareHomeStore(careHomeStore, cacheProvider, metrics)
			logger.Info().Msg("care home store wrapped with caching layer")
		}
	}

	queryService := query.NewCareHomeQueryService(careHomeRepo)
	inquiryService := appservices.NewInquiryService(inquiryStore, careHomeRepo)

	careHomeHandler := handlers.NewCareHomeHandler(queryService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)

	router := routes.NewRouter(careHomeHandler, inquiryHandler, metrics)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server stopped")
}
