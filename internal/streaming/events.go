package streaming

import (
	"time"

	"github.com/google/uuid"

	"github.com/zenithankit/dhankavach/internal/domain/models"
)

// AlertType represents the kind of protection alert
type AlertType string

const (
	AlertTypeDocumentFlagged    AlertType = "document_flagged"
	AlertTypeIntelligenceMatch  AlertType = "intelligence_match"
	AlertTypeFamilyNotification AlertType = "family_notification"
)

// AlertEvent is a real-time protection alert streamed to guardian apps.
type AlertEvent struct {
	ID        string           `json:"id"`
	Type      AlertType        `json:"type"`
	Severity  models.RiskLevel `json:"severity"`
	Title     string           `json:"title"`
	Detail    string           `json:"detail,omitempty"`

	// Identifiers involved in the alert (phones, UPI IDs, keywords)
	Identifiers []string `json:"identifiers,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// NewAlertEvent creates an alert event with ID and timestamp filled in.
func NewAlertEvent(alertType AlertType, severity models.RiskLevel, title, detail string, identifiers []string) *AlertEvent {
	return &AlertEvent{
		ID:          uuid.New().String(),
		Type:        alertType,
		Severity:    severity,
		Title:       title,
		Detail:      detail,
		Identifiers: identifiers,
		Timestamp:   time.Now(),
	}
}

// Subscription holds a client's alert filter preferences.
type Subscription struct {
	// Minimum severity to receive (empty = all)
	MinSeverity models.RiskLevel `json:"min_severity,omitempty"`

	// Alert types to receive (empty = all)
	Types []AlertType `json:"types,omitempty"`
}

var severityOrder = map[models.RiskLevel]int{
	models.RiskLevelLow:      1,
	models.RiskLevelMedium:   2,
	models.RiskLevelHigh:     3,
	models.RiskLevelCritical: 4,
}

// Matches checks whether an event passes the subscription filters.
func (s *Subscription) Matches(event *AlertEvent) bool {
	if s.MinSeverity != "" && severityOrder[event.Severity] < severityOrder[s.MinSeverity] {
		return false
	}

	if len(s.Types) > 0 {
		found := false
		for _, t := range s.Types {
			if t == event.Type {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
