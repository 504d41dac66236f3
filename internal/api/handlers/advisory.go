package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zenithankit/dhankavach/internal/domain/services"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

// AdvisoryHandler handles signal reasoning and safety tips endpoints.
type AdvisoryHandler struct {
	reasoner *services.SignalReasoner
	advisor  *services.Advisor
	logger   *logger.Logger
}

// NewAdvisoryHandler creates a new advisory handler
func NewAdvisoryHandler(reasoner *services.SignalReasoner, advisor *services.Advisor, log *logger.Logger) *AdvisoryHandler {
	return &AdvisoryHandler{
		reasoner: reasoner,
		advisor:  advisor,
		logger:   log.WithComponent("advisory-handler"),
	}
}

// AnalyzeSignals handles POST /api/v1/signals/analyze - weighs conflicting
// positive and negative signals into a final recommendation.
func (h *AdvisoryHandler) AnalyzeSignals(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PositiveSignals []string `json:"positive_signals"`
		NegativeSignals []string `json:"negative_signals"`
		Context         string   `json:"context,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result := h.reasoner.Analyze(req.PositiveSignals, req.NegativeSignals, req.Context)

	h.logger.Info().
		Int("positive", result.PositiveCount).
		Int("negative", result.NegativeCount).
		Str("recommendation", string(result.Recommendation)).
		Msg("signals analyzed")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Tips handles GET /api/v1/tips/{topic}
func (h *AdvisoryHandler) Tips(w http.ResponseWriter, r *http.Request) {
	topic := chi.URLParam(r, "topic")

	result := h.advisor.Tips(topic)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
