package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/zenithankit/dhankavach/internal/api/handlers"
	apimiddleware "github.com/zenithankit/dhankavach/internal/api/middleware"
	"github.com/zenithankit/dhankavach/internal/config"
	"github.com/zenithankit/dhankavach/internal/infrastructure/cache"
	"github.com/zenithankit/dhankavach/internal/streaming"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

// Router holds dependencies for the API router
type Router struct {
	config   config.Config
	handlers *handlers.Handlers
	cache    *cache.RedisCache
	wsHub    *streaming.WebSocketHub
	logger   *logger.Logger
}

// NewRouter creates a new Router instance
func NewRouter(cfg config.Config, h *handlers.Handlers, c *cache.RedisCache, wsHub *streaming.WebSocketHub, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		handlers: h,
		cache:    c,
		wsHub:    wsHub,
		logger:   log.WithComponent("router"),
	}
}

// Setup sets up the Chi router with all routes and middleware
func (r *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Core middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(apimiddleware.Logger(r.logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.config.CORS.AllowedOrigins,
		AllowedMethods:   r.config.CORS.AllowedMethods,
		AllowedHeaders:   r.config.CORS.AllowedHeaders,
		AllowCredentials: r.config.CORS.AllowCredentials,
		MaxAge:           r.config.CORS.MaxAge,
	}))

	// Rate limiting
	if r.config.RateLimit.Enabled && r.cache != nil {
		router.Use(apimiddleware.RateLimiter(r.cache, r.config.RateLimit))
	}

	// Public routes
	router.Group(func(pub chi.Router) {
		pub.Get("/health", r.handlers.Health.Check)
		pub.Get("/ready", r.handlers.Health.Ready)
	})

	// API v1 routes (authenticated)
	router.Route("/api/v1", func(api chi.Router) {
		api.Use(apimiddleware.APIKeyAuth(r.config.Server.APIKey))

		// Message and caller screening
		api.Post("/message/analyze", r.handlers.Scam.AnalyzeMessage)
		api.Post("/url/check", r.handlers.Scam.CheckURL)
		api.Post("/phone/check", r.handlers.Scam.CheckPhone)
		api.Post("/phone/reputation", r.handlers.Scam.PhoneReputation)
		api.Post("/entity/verify", r.handlers.Scam.VerifyEntity)

		// Document screening
		api.Post("/document/analyze", r.handlers.Document.Analyze)
		api.Post("/document/flag", r.handlers.Document.Flag)

		// Transaction screening
		api.Post("/transaction/analyze", r.handlers.Transaction.Analyze)
		api.Post("/transaction/recipient", r.handlers.Transaction.Recipient)
		api.Post("/transaction/notify", r.handlers.Transaction.Notify)

		// Risk profile (connected intelligence)
		api.Post("/profile/check", r.handlers.Profile.Check)
		api.Get("/profile/summary", r.handlers.Profile.Summary)

		// Advisory
		api.Post("/signals/analyze", r.handlers.Advisory.AnalyzeSignals)
		api.Get("/tips/{topic}", r.handlers.Advisory.Tips)
	})

	// WebSocket streaming endpoint (real-time alerts for guardian apps)
	router.Get("/ws/alerts", r.wsHub.ServeWebSocket)

	return router
}
