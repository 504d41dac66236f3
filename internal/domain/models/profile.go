package models

import (
	"time"

	"github.com/google/uuid"
)

// ItemType distinguishes what kind of content was flagged.
type ItemType string

const (
	ItemTypeDocument ItemType = "document"
	ItemTypeMessage  ItemType = "message"
)

// FlaggedPayload carries the identifiers and context of a flagged item.
type FlaggedPayload struct {
	DocumentType DocumentType `json:"document_type,omitempty"`
	RiskScore    int          `json:"risk_score"`
	PhoneNumbers []string     `json:"phone_numbers,omitempty"`
	UPIIDs       []string     `json:"upi_ids,omitempty"`
	Keywords     []string     `json:"keywords,omitempty"`
	RedFlags     []string     `json:"red_flags,omitempty"`
}

// FlaggedItem is one stored document or message. Immutable once created.
type FlaggedItem struct {
	ID        uuid.UUID      `json:"id"`
	Type      ItemType       `json:"type"`
	Payload   FlaggedPayload `json:"data"`
	FlaggedAt time.Time      `json:"flagged_at"`
}

// ProfileSize reports the registry counts after a store operation.
type ProfileSize struct {
	FlaggedDocuments  int `json:"flagged_documents"`
	FlaggedMessages   int `json:"flagged_messages"`
	FlaggedRecipients int `json:"flagged_recipients"`
	FlaggedKeywords   int `json:"flagged_keywords"`
}

// StoreResult confirms a registry store operation.
type StoreResult struct {
	Status      string      `json:"status"`
	Message     string      `json:"message"`
	ProfileSize ProfileSize `json:"profile_size"`
}

// Match types and severities emitted by the registry check.
const (
	MatchTypeRecipient = "RECIPIENT_MATCH"
	MatchTypeKeyword   = "KEYWORD_MATCH"

	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
)

// ProfileMatch links a transaction attribute to a previously flagged item.
type ProfileMatch struct {
	MatchType         string    `json:"match_type"`
	Severity          string    `json:"severity"`
	MatchedValue      string    `json:"matched_value"`
	SourceType        string    `json:"source_type"`
	SourceDescription string    `json:"source_description"`
	FlaggedAt         time.Time `json:"flagged_at"`
	Reason            string    `json:"reason"`
	HindiReason       string    `json:"hindi_reason"`
}

// Registry check recommendations.
const (
	RecommendationBlock    = "BLOCK - Connected to previously flagged scam"
	RecommendationHighRisk = "HIGH_RISK"
	RecommendationContinue = "CONTINUE_ANALYSIS"
)

// ProfileCheckResult is the outcome of matching a transaction against
// the flagged registry.
type ProfileCheckResult struct {
	Status                         string         `json:"status"`
	HasMatches                     bool           `json:"has_matches"`
	MatchCount                     int            `json:"match_count"`
	Matches                        []ProfileMatch `json:"matches"`
	Recommendation                 string         `json:"recommendation"`
	ConnectedIntelligenceTriggered bool           `json:"connected_intelligence_triggered"`
}

// ProfileSummary is a read-only snapshot of the registry for display.
type ProfileSummary struct {
	Status                 string   `json:"status"`
	TotalFlaggedDocuments  int      `json:"total_flagged_documents"`
	TotalFlaggedMessages   int      `json:"total_flagged_messages"`
	TotalFlaggedRecipients int      `json:"total_flagged_recipients"`
	TotalFlaggedKeywords   int      `json:"total_flagged_keywords"`
	FlaggedRecipientsList  []string `json:"flagged_recipients_list"`
	FlaggedKeywordsList    []string `json:"flagged_keywords_list"`
}

// ProtectedIdentifiers lists what a flag operation now guards against.
type ProtectedIdentifiers struct {
	PhoneNumbers []string `json:"phone_numbers"`
	UPIIDs       []string `json:"upi_ids"`
	Keywords     []string `json:"keywords"`
}

// FlagResult confirms (or skips) a flag-for-protection operation.
type FlagResult struct {
	Status           string                `json:"status"`
	Flagged          bool                  `json:"flagged"`
	Message          string                `json:"message"`
	HindiMessage     string                `json:"hindi_message,omitempty"`
	ProtectedAgainst *ProtectedIdentifiers `json:"protected_against,omitempty"`
	ProfileUpdate    *StoreResult          `json:"profile_update,omitempty"`
}
