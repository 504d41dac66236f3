package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/zenithankit/dhankavach/internal/domain/services"
	"github.com/zenithankit/dhankavach/internal/streaming"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

// DocumentHandler handles document screening endpoints.
type DocumentHandler struct {
	scorer   *services.DocumentScorer
	registry *services.RiskProfileRegistry
	alerts   *alertSink
	logger   *logger.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(scorer *services.DocumentScorer, registry *services.RiskProfileRegistry, alerts *alertSink, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{
		scorer:   scorer,
		registry: registry,
		alerts:   alerts,
		logger:   log.WithComponent("document-handler"),
	}
}

// Analyze handles POST /api/v1/document/analyze
func (h *DocumentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "Document text is required", http.StatusBadRequest)
		return
	}

	result := h.scorer.Analyze(req.Text)

	h.logger.Info().
		Str("document_type", string(result.DocumentType)).
		Int("risk_score", result.RiskScore).
		Str("legitimacy", string(result.Legitimacy)).
		Msg("document analyzed")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Flag handles POST /api/v1/document/flag - analyzes a document and, when
// risky enough, stores its identifiers in the risk profile.
func (h *DocumentHandler) Flag(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "Document text is required", http.StatusBadRequest)
		return
	}

	analysis := h.scorer.Analyze(req.Text)
	result := h.registry.FlagDocument(analysis)

	if result.Flagged {
		h.alerts.publish(r.Context(), streaming.NewAlertEvent(
			streaming.AlertTypeDocumentFlagged,
			analysis.RiskLevel,
			"Fraudulent document flagged",
			analysis.Verdict,
			flaggedIdentifiers(analysis.ExtractedIdentifiers.PhoneNumbers, analysis.ExtractedIdentifiers.UPIIDs),
		))
	}

	h.logger.Info().
		Bool("flagged", result.Flagged).
		Int("risk_score", analysis.RiskScore).
		Msg("document flag processed")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// flaggedIdentifiers merges identifier lists for alert payloads.
func flaggedIdentifiers(lists ...[]string) []string {
	var merged []string
	for _, list := range lists {
		merged = append(merged, list...)
	}
	return merged
}
