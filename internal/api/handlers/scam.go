package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/zenithankit/dhankavach/internal/domain/models"
	"github.com/zenithankit/dhankavach/internal/domain/services"
	"github.com/zenithankit/dhankavach/internal/infrastructure/cache"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

// ScamHandler handles message, URL, phone and entity screening endpoints.
type ScamHandler struct {
	messageScorer   *services.MessageScorer
	urlChecker      *services.URLChecker
	phoneClassifier *services.PhoneClassifier
	phoneReputation *services.PhoneReputationService
	entityRegistry  *services.EntityRegistry
	cache           *cache.RedisCache
	cacheTTL        time.Duration
	logger          *logger.Logger
}

// NewScamHandler creates a new scam screening handler
func NewScamHandler(deps Dependencies) *ScamHandler {
	ttl := 5 * time.Minute
	if deps.Config != nil && deps.Config.Redis.CacheTTL > 0 {
		ttl = deps.Config.Redis.CacheTTL
	}

	return &ScamHandler{
		messageScorer:   deps.MessageScorer,
		urlChecker:      deps.URLChecker,
		phoneClassifier: deps.PhoneClassifier,
		phoneReputation: deps.PhoneReputation,
		entityRegistry:  deps.EntityRegistry,
		cache:           deps.Cache,
		cacheTTL:        ttl,
		logger:          deps.Logger.WithComponent("scam-handler"),
	}
}

// AnalyzeMessage handles POST /api/v1/message/analyze
func (h *ScamHandler) AnalyzeMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result := h.messageScorer.Analyze(req.Message)

	h.logger.Info().
		Int("risk_score", result.RiskScore).
		Str("risk_level", string(result.RiskLevel)).
		Int("red_flags", result.TotalRedFlags).
		Msg("message analyzed")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// CheckURL handles POST /api/v1/url/check. Verdicts are deterministic for
// a given URL, so results are cached in Redis when available.
func (h *ScamHandler) CheckURL(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		http.Error(w, "URL is required", http.StatusBadRequest)
		return
	}

	hash := inputHash(req.URL)
	if h.cache != nil {
		var cached models.URLCheck
		if err := h.cache.GetCachedURLCheck(r.Context(), hash, &cached); err == nil {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(cached)
			return
		}
	}

	result := h.urlChecker.Check(req.URL)

	if h.cache != nil {
		if err := h.cache.CacheURLCheck(r.Context(), hash, result, h.cacheTTL); err != nil {
			h.logger.Debug().Err(err).Msg("failed to cache URL check")
		}
	}

	h.logger.Info().
		Str("verdict", string(result.SafetyVerdict)).
		Int("indicators", len(result.Indicators)).
		Msg("URL checked")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// CheckPhone handles POST /api/v1/phone/check
func (h *ScamHandler) CheckPhone(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Phone == "" {
		http.Error(w, "Phone number is required", http.StatusBadRequest)
		return
	}

	hash := inputHash(req.Phone)
	if h.cache != nil {
		var cached models.PhoneAssessment
		if err := h.cache.GetCachedPhoneCheck(r.Context(), hash, &cached); err == nil {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(cached)
			return
		}
	}

	result := h.phoneClassifier.Classify(req.Phone)

	if h.cache != nil {
		if err := h.cache.CachePhoneCheck(r.Context(), hash, result, h.cacheTTL); err != nil {
			h.logger.Debug().Err(err).Msg("failed to cache phone check")
		}
	}

	h.logger.Info().
		Str("verdict", string(result.Verdict)).
		Msg("phone checked")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// PhoneReputation handles POST /api/v1/phone/reputation
func (h *ScamHandler) PhoneReputation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Phone == "" {
		http.Error(w, "Phone number is required", http.StatusBadRequest)
		return
	}

	result := h.phoneReputation.Lookup(req.Phone)

	h.logger.Info().
		Bool("found", result.FoundInDatabase).
		Int("scam_reports", result.ScamReports).
		Msg("phone reputation looked up")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// VerifyEntity handles POST /api/v1/entity/verify
func (h *ScamHandler) VerifyEntity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Company name is required", http.StatusBadRequest)
		return
	}

	result := h.entityRegistry.Verify(req.Name)

	h.logger.Info().
		Str("verdict", string(result.Verdict)).
		Msg("entity verified")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// inputHash produces a stable cache key for arbitrary user input.
func inputHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:16])
}
