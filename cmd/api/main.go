package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/zenithankit/dhankavach/internal/api"
	"github.com/zenithankit/dhankavach/internal/api/handlers"
	"github.com/zenithankit/dhankavach/internal/config"
	"github.com/zenithankit/dhankavach/internal/domain/services"
	"github.com/zenithankit/dhankavach/internal/infrastructure/cache"
	"github.com/zenithankit/dhankavach/internal/streaming"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var log *logger.Logger
	if cfg.App.Environment == "production" {
		log = logger.New(logger.Config{
			Level:  cfg.Logger.Level,
			Format: "json",
		})
	} else {
		log = logger.NewDevelopment()
	}
	logger.SetGlobal(log)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("starting DhanKavach")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to Redis (optional, service degrades to uncached operation)
	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		redisCache, err = cache.NewRedis(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, continuing without cache and rate limiting")
			redisCache = nil
		}
	}
	defer func() {
		if redisCache != nil {
			redisCache.Close()
		}
	}()

	// Initialize streaming infrastructure
	var natsPublisher *streaming.NATSPublisher
	if cfg.NATS.Enabled {
		natsPublisher, err = streaming.NewNATSPublisher(ctx, cfg.NATS, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to NATS, continuing without distributed alerts")
		} else {
			log.Info().Str("url", cfg.NATS.URL).Msg("connected to NATS")
		}
	}

	// Create event bus for real-time alerts
	eventBus := streaming.NewEventBus(natsPublisher, log)
	log.Info().Bool("nats_enabled", natsPublisher != nil).Msg("event bus initialized")

	// Create WebSocket hub for guardian app real-time alerts
	wsHub := streaming.NewWebSocketHub(log)
	go wsHub.Run(ctx)

	// Initialize scoring services
	matchPolicy := services.ParseMatchPolicy(cfg.Risk.MatchPolicy)

	deps := handlers.Dependencies{
		MessageScorer:     services.NewMessageScorer(log),
		URLChecker:        services.NewURLChecker(log),
		PhoneClassifier:   services.NewPhoneClassifier(log),
		PhoneReputation:   services.NewPhoneReputationService(log),
		EntityRegistry:    services.NewEntityRegistry(log),
		DocumentScorer:    services.NewDocumentScorer(log),
		TransactionScorer: services.NewTransactionScorer(log),
		RecipientTrust:    services.NewRecipientTrust(log),
		RiskRegistry:      services.NewRiskProfileRegistry(matchPolicy, log),
		SignalReasoner:    services.NewSignalReasoner(log),
		Notifier:          services.NewNotifier(cfg.Notification.DefaultNominee, log),
		Advisor:           services.NewAdvisor(log),

		Cache:    redisCache,
		NATS:     natsPublisher,
		EventBus: eventBus,
		WSHub:    wsHub,
		Config:   cfg,
		Logger:   log,
	}
	h := handlers.NewHandlers(deps)
	log.Info().Str("match_policy", string(matchPolicy)).Msg("scoring services initialized")

	// Create router
	router := api.NewRouter(*cfg, h, redisCache, wsHub, log)
	httpHandler := router.Setup()

	// Start HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().
			Str("addr", httpServer.Addr).
			Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")

	// Cancel context to stop background services
	cancel()

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	eventBus.Close()

	log.Info().Msg("shutdown complete")
}
