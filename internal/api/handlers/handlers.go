package handlers

import (
	"context"

	"github.com/zenithankit/dhankavach/internal/config"
	"github.com/zenithankit/dhankavach/internal/domain/services"
	"github.com/zenithankit/dhankavach/internal/infrastructure/cache"
	"github.com/zenithankit/dhankavach/internal/streaming"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

// Handlers holds all API handlers
type Handlers struct {
	Health      *HealthHandler
	Scam        *ScamHandler
	Document    *DocumentHandler
	Transaction *TransactionHandler
	Profile     *ProfileHandler
	Advisory    *AdvisoryHandler
}

// Dependencies holds dependencies for handlers
type Dependencies struct {
	MessageScorer     *services.MessageScorer
	URLChecker        *services.URLChecker
	PhoneClassifier   *services.PhoneClassifier
	PhoneReputation   *services.PhoneReputationService
	EntityRegistry    *services.EntityRegistry
	DocumentScorer    *services.DocumentScorer
	TransactionScorer *services.TransactionScorer
	RecipientTrust    *services.RecipientTrust
	RiskRegistry      *services.RiskProfileRegistry
	SignalReasoner    *services.SignalReasoner
	Notifier          *services.Notifier
	Advisor           *services.Advisor

	Cache    *cache.RedisCache
	NATS     *streaming.NATSPublisher
	EventBus *streaming.EventBus
	WSHub    *streaming.WebSocketHub
	Config   *config.Config
	Logger   *logger.Logger
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	sink := newAlertSink(deps.EventBus, deps.WSHub)

	return &Handlers{
		Health:      NewHealthHandler(deps.Cache, deps.NATS, deps.WSHub, deps.Config.App.Version, deps.Logger),
		Scam:        NewScamHandler(deps),
		Document:    NewDocumentHandler(deps.DocumentScorer, deps.RiskRegistry, sink, deps.Logger),
		Transaction: NewTransactionHandler(deps.TransactionScorer, deps.RecipientTrust, deps.Notifier, sink, deps.Logger),
		Profile:     NewProfileHandler(deps.RiskRegistry, sink, deps.Logger),
		Advisory:    NewAdvisoryHandler(deps.SignalReasoner, deps.Advisor, deps.Logger),
	}
}

// alertSink fans protection alerts out to the event bus (NATS + local
// subscribers) and the WebSocket hub. Both legs are best effort.
type alertSink struct {
	bus   *streaming.EventBus
	wsHub *streaming.WebSocketHub
}

func newAlertSink(bus *streaming.EventBus, wsHub *streaming.WebSocketHub) *alertSink {
	return &alertSink{bus: bus, wsHub: wsHub}
}

func (s *alertSink) publish(ctx context.Context, event *streaming.AlertEvent) {
	if s == nil || event == nil {
		return
	}
	if s.bus != nil {
		s.bus.Publish(ctx, event)
	}
	if s.wsHub != nil {
		s.wsHub.BroadcastEvent(event)
	}
}
