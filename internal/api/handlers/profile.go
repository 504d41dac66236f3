package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/zenithankit/dhankavach/internal/domain/models"
	"github.com/zenithankit/dhankavach/internal/domain/services"
	"github.com/zenithankit/dhankavach/internal/streaming"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

// ProfileHandler handles risk profile endpoints.
type ProfileHandler struct {
	registry *services.RiskProfileRegistry
	alerts   *alertSink
	logger   *logger.Logger
}

// NewProfileHandler creates a new risk profile handler
func NewProfileHandler(registry *services.RiskProfileRegistry, alerts *alertSink, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		registry: registry,
		alerts:   alerts,
		logger:   log.WithComponent("profile-handler"),
	}
}

// Check handles POST /api/v1/profile/check - cross-references a pending
// transaction against previously flagged intelligence.
func (h *ProfileHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Recipient string `json:"recipient"`
		Purpose   string `json:"purpose"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result := h.registry.Check(req.Recipient, req.Purpose)

	if result.ConnectedIntelligenceTriggered {
		h.alerts.publish(r.Context(), streaming.NewAlertEvent(
			streaming.AlertTypeIntelligenceMatch,
			matchSeverity(result.Matches),
			"Connected intelligence match",
			result.Recommendation,
			matchedValues(result.Matches),
		))
	}

	h.logger.Info().
		Bool("has_matches", result.HasMatches).
		Int("match_count", result.MatchCount).
		Str("recommendation", result.Recommendation).
		Msg("profile checked")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Summary handles GET /api/v1/profile/summary
func (h *ProfileHandler) Summary(w http.ResponseWriter, r *http.Request) {
	result := h.registry.Summary()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// matchSeverity maps the worst profile match to an alert severity.
func matchSeverity(matches []models.ProfileMatch) models.RiskLevel {
	for _, m := range matches {
		if m.Severity == models.SeverityCritical {
			return models.RiskLevelCritical
		}
	}
	return models.RiskLevelHigh
}

func matchedValues(matches []models.ProfileMatch) []string {
	values := make([]string, 0, len(matches))
	for _, m := range matches {
		values = append(values, m.MatchedValue)
	}
	return values
}
