package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zenithankit/dhankavach/internal/domain/services"
	"github.com/zenithankit/dhankavach/internal/streaming"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

// TransactionHandler handles transaction screening endpoints.
type TransactionHandler struct {
	scorer   *services.TransactionScorer
	trust    *services.RecipientTrust
	notifier *services.Notifier
	alerts   *alertSink
	logger   *logger.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(scorer *services.TransactionScorer, trust *services.RecipientTrust, notifier *services.Notifier, alerts *alertSink, log *logger.Logger) *TransactionHandler {
	return &TransactionHandler{
		scorer:   scorer,
		trust:    trust,
		notifier: notifier,
		alerts:   alerts,
		logger:   log.WithComponent("transaction-handler"),
	}
}

// TransactionRequest is the request body for transaction analysis
type TransactionRequest struct {
	Amount    float64 `json:"amount"`
	Recipient string  `json:"recipient"`
	Purpose   string  `json:"purpose"`
}

// Analyze handles POST /api/v1/transaction/analyze
func (h *TransactionHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.scorer.Analyze(req.Amount, req.Recipient, req.Purpose)
	if err != nil {
		if errors.Is(err, services.ErrNegativeAmount) {
			http.Error(w, "Amount must not be negative", http.StatusBadRequest)
			return
		}
		h.logger.Error().Err(err).Msg("failed to analyze transaction")
		http.Error(w, "Analysis failed", http.StatusInternalServerError)
		return
	}

	h.logger.Info().
		Int("risk_score", result.RiskScore).
		Str("risk_level", string(result.RiskLevel)).
		Bool("needs_family_approval", result.NeedsFamilyApproval).
		Msg("transaction analyzed")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Recipient handles POST /api/v1/transaction/recipient
func (h *TransactionHandler) Recipient(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Recipient string `json:"recipient"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Recipient == "" {
		http.Error(w, "Recipient is required", http.StatusBadRequest)
		return
	}

	result := h.trust.Check(req.Recipient)

	h.logger.Info().
		Bool("is_known", result.IsKnown).
		Str("trust_level", string(result.TrustLevel)).
		Msg("recipient checked")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// NotifyRequest is the request body for family notification
type NotifyRequest struct {
	Amount      float64 `json:"amount"`
	Recipient   string  `json:"recipient"`
	Purpose     string  `json:"purpose"`
	NomineeName string  `json:"nominee_name,omitempty"`
}

// Notify handles POST /api/v1/transaction/notify - scores the transaction
// and simulates the family approval request.
func (h *TransactionHandler) Notify(w http.ResponseWriter, r *http.Request) {
	var req NotifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	assessment, err := h.scorer.Analyze(req.Amount, req.Recipient, req.Purpose)
	if err != nil {
		if errors.Is(err, services.ErrNegativeAmount) {
			http.Error(w, "Amount must not be negative", http.StatusBadRequest)
			return
		}
		h.logger.Error().Err(err).Msg("failed to analyze transaction")
		http.Error(w, "Analysis failed", http.StatusInternalServerError)
		return
	}

	result := h.notifier.Notify(assessment, req.NomineeName)

	if result.NotificationSent {
		h.alerts.publish(r.Context(), streaming.NewAlertEvent(
			streaming.AlertTypeFamilyNotification,
			assessment.RiskLevel,
			"Family approval requested",
			result.NotificationMessage,
			[]string{assessment.Transaction.Recipient},
		))
	}

	h.logger.Info().
		Str("nominee", result.NomineeName).
		Bool("sent", result.NotificationSent).
		Msg("family notification processed")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
