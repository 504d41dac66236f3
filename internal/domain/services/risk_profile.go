package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zenithankit/dhankavach/internal/domain/models"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

// MatchPolicy selects how flagged recipients are matched against a
// candidate recipient. Bidirectional substring containment is the
// permissive default; exact matching compares normalized identifiers
// for equality and is stricter about short flagged strings.
type MatchPolicy string

const (
	MatchPolicyBidirectional MatchPolicy = "bidirectional"
	MatchPolicyExact         MatchPolicy = "exact"
)

// ParseMatchPolicy maps a config string to a MatchPolicy, falling back
// to the bidirectional default.
func ParseMatchPolicy(s string) MatchPolicy {
	if MatchPolicy(strings.ToLower(s)) == MatchPolicyExact {
		return MatchPolicyExact
	}
	return MatchPolicyBidirectional
}

// RiskProfileRegistry is the Connected Intelligence store. It
// accumulates flagged documents and messages, derives the deduplicated
// flagged recipient/keyword sets, and matches transactions against
// them. It is the only shared mutable state in the engine; all access
// is serialized through its lock.
type RiskProfileRegistry struct {
	mu     sync.RWMutex
	policy MatchPolicy
	logger *logger.Logger

	flaggedDocuments  []models.FlaggedItem
	flaggedMessages   []models.FlaggedItem
	flaggedRecipients []string
	flaggedKeywords   []string
}

// NewRiskProfileRegistry creates an empty registry
func NewRiskProfileRegistry(policy MatchPolicy, log *logger.Logger) *RiskProfileRegistry {
	return &RiskProfileRegistry{
		policy: policy,
		logger: log.WithComponent("risk-profile"),
	}
}

// Store appends a timestamped flagged item. Document payloads feed
// their phone numbers and UPI IDs into the flagged recipient set and
// their keywords into the flagged keyword set; message items are only
// recorded and do not feed Connected Intelligence.
func (r *RiskProfileRegistry) Store(itemType models.ItemType, payload models.FlaggedPayload) *models.StoreResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := models.FlaggedItem{
		ID:        uuid.New(),
		Type:      itemType,
		Payload:   payload,
		FlaggedAt: time.Now(),
	}

	switch itemType {
	case models.ItemTypeDocument:
		r.flaggedDocuments = append(r.flaggedDocuments, item)
		for _, phone := range payload.PhoneNumbers {
			r.flaggedRecipients = appendUnique(r.flaggedRecipients, phone)
		}
		for _, upi := range payload.UPIIDs {
			r.flaggedRecipients = appendUnique(r.flaggedRecipients, upi)
		}
		for _, kw := range payload.Keywords {
			r.flaggedKeywords = appendUnique(r.flaggedKeywords, kw)
		}
	case models.ItemTypeMessage:
		r.flaggedMessages = append(r.flaggedMessages, item)
	}

	r.logger.Info().
		Str("item_type", string(itemType)).
		Int("flagged_recipients", len(r.flaggedRecipients)).
		Int("flagged_keywords", len(r.flaggedKeywords)).
		Msg("flagged item stored")

	return &models.StoreResult{
		Status:  models.StatusSuccess,
		Message: fmt.Sprintf("Flagged %s stored in risk profile for future protection", itemType),
		ProfileSize: models.ProfileSize{
			FlaggedDocuments:  len(r.flaggedDocuments),
			FlaggedMessages:   len(r.flaggedMessages),
			FlaggedRecipients: len(r.flaggedRecipients),
			FlaggedKeywords:   len(r.flaggedKeywords),
		},
	}
}

// FlagDocument stores a risky document analysis for future transaction
// protection. Low-risk documents are skipped without mutating the
// registry.
func (r *RiskProfileRegistry) FlagDocument(analysis *models.DocumentAnalysis) *models.FlagResult {
	if !analysis.ShouldFlag {
		return &models.FlagResult{
			Status:  models.StatusSkipped,
			Flagged: false,
			Message: "Document risk is low, not flagging for protection",
		}
	}

	payload := models.FlaggedPayload{
		DocumentType: analysis.DocumentType,
		RiskScore:    analysis.RiskScore,
		PhoneNumbers: analysis.ExtractedIdentifiers.PhoneNumbers,
		UPIIDs:       analysis.ExtractedIdentifiers.UPIIDs,
		Keywords:     analysis.ExtractedIdentifiers.Keywords,
		RedFlags:     analysis.RedFlags,
	}

	stored := r.Store(models.ItemTypeDocument, payload)

	return &models.FlagResult{
		Status:       models.StatusSuccess,
		Flagged:      true,
		Message:      "Document has been flagged. Any future transaction to these recipients will be BLOCKED.",
		HindiMessage: "दस्तावेज़ फ्लैग कर दिया गया है। इन प्राप्तकर्ताओं को भविष्य में कोई भी लेनदेन ब्लॉक कर दिया जाएगा।",
		ProtectedAgainst: &models.ProtectedIdentifiers{
			PhoneNumbers: payload.PhoneNumbers,
			UPIIDs:       payload.UPIIDs,
			Keywords:     payload.Keywords,
		},
		ProfileUpdate: stored,
	}
}

// Check matches a transaction's recipient and purpose against the
// flagged registry. A recipient hit is CRITICAL and traced back to the
// originating document; a purpose keyword hit is HIGH.
func (r *RiskProfileRegistry) Check(recipient, purpose string) *models.ProfileCheckResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []models.ProfileMatch
	recipientClean := strings.ToLower(strings.TrimSpace(recipient))
	purposeLower := strings.ToLower(purpose)

	for _, flagged := range r.flaggedRecipients {
		if !r.recipientMatches(flagged, recipientClean) {
			continue
		}
		if doc, ok := r.findSourceDocument(flagged); ok {
			matches = append(matches, models.ProfileMatch{
				MatchType:         models.MatchTypeRecipient,
				Severity:          models.SeverityCritical,
				MatchedValue:      flagged,
				SourceType:        "Flagged Document",
				SourceDescription: string(doc.Payload.DocumentType),
				FlaggedAt:         doc.FlaggedAt,
				Reason:            fmt.Sprintf("Recipient '%s' was found in a FRAUDULENT document flagged earlier", recipient),
				HindiReason:       fmt.Sprintf("प्राप्तकर्ता '%s' पहले फ्लैग किए गए धोखाधड़ी दस्तावेज़ में पाया गया", recipient),
			})
		}
	}

	for _, flagged := range r.flaggedKeywords {
		if !strings.Contains(purposeLower, strings.ToLower(flagged)) {
			continue
		}
		if doc, ok := r.findKeywordDocument(flagged); ok {
			matches = append(matches, models.ProfileMatch{
				MatchType:         models.MatchTypeKeyword,
				Severity:          models.SeverityHigh,
				MatchedValue:      flagged,
				SourceType:        "Flagged Document",
				SourceDescription: string(doc.Payload.DocumentType),
				FlaggedAt:         doc.FlaggedAt,
				Reason:            fmt.Sprintf("Purpose mentions '%s' which was in a flagged document", flagged),
				HindiReason:       fmt.Sprintf("उद्देश्य में '%s' का उल्लेख है जो फ्लैग किए गए दस्तावेज़ में था", flagged),
			})
		}
	}

	hasCritical := false
	for _, m := range matches {
		if m.Severity == models.SeverityCritical {
			hasCritical = true
			break
		}
	}

	recommendation := models.RecommendationContinue
	if hasCritical {
		recommendation = models.RecommendationBlock
	} else if len(matches) > 0 {
		recommendation = models.RecommendationHighRisk
	}

	if len(matches) > 0 {
		r.logger.Warn().
			Int("match_count", len(matches)).
			Str("recommendation", recommendation).
			Msg("connected intelligence triggered")
	}

	return &models.ProfileCheckResult{
		Status:                         models.StatusSuccess,
		HasMatches:                     len(matches) > 0,
		MatchCount:                     len(matches),
		Matches:                        matches,
		Recommendation:                 recommendation,
		ConnectedIntelligenceTriggered: len(matches) > 0,
	}
}

// Summary returns counts plus the first 10 of each flagged list.
func (r *RiskProfileRegistry) Summary() *models.ProfileSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &models.ProfileSummary{
		Status:                 models.StatusSuccess,
		TotalFlaggedDocuments:  len(r.flaggedDocuments),
		TotalFlaggedMessages:   len(r.flaggedMessages),
		TotalFlaggedRecipients: len(r.flaggedRecipients),
		TotalFlaggedKeywords:   len(r.flaggedKeywords),
		FlaggedRecipientsList:  capList(append([]string(nil), r.flaggedRecipients...), 10),
		FlaggedKeywordsList:    capList(append([]string(nil), r.flaggedKeywords...), 10),
	}
}

func (r *RiskProfileRegistry) recipientMatches(flagged, recipientClean string) bool {
	flaggedLower := strings.ToLower(flagged)
	if r.policy == MatchPolicyExact {
		return flaggedLower == recipientClean
	}
	return strings.Contains(recipientClean, flaggedLower) || strings.Contains(flaggedLower, recipientClean)
}

// findSourceDocument locates the first flagged document whose stored
// phone or UPI lists literally contain the flagged identifier.
func (r *RiskProfileRegistry) findSourceDocument(flagged string) (*models.FlaggedItem, bool) {
	for i := range r.flaggedDocuments {
		doc := &r.flaggedDocuments[i]
		if containsString(doc.Payload.PhoneNumbers, flagged) || containsString(doc.Payload.UPIIDs, flagged) {
			return doc, true
		}
	}
	return nil, false
}

func (r *RiskProfileRegistry) findKeywordDocument(flagged string) (*models.FlaggedItem, bool) {
	for i := range r.flaggedDocuments {
		doc := &r.flaggedDocuments[i]
		if containsString(doc.Payload.Keywords, flagged) {
			return doc, true
		}
	}
	return nil, false
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
