package streaming

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zenithankit/dhankavach/internal/domain/models"
)

func TestNewAlertEvent(t *testing.T) {
	event := NewAlertEvent(AlertTypeDocumentFlagged, models.RiskLevelHigh,
		"Fraudulent loan document flagged", "processing fee demand", []string{"9876543210"})

	assert.NotEmpty(t, event.ID)
	assert.False(t, event.Timestamp.IsZero())
	assert.Equal(t, AlertTypeDocumentFlagged, event.Type)
	assert.Equal(t, models.RiskLevelHigh, event.Severity)
	assert.Equal(t, []string{"9876543210"}, event.Identifiers)
}

func TestSubscriptionMatches(t *testing.T) {
	highDocEvent := NewAlertEvent(AlertTypeDocumentFlagged, models.RiskLevelHigh, "t", "", nil)
	lowMatchEvent := NewAlertEvent(AlertTypeIntelligenceMatch, models.RiskLevelLow, "t", "", nil)

	tests := []struct {
		name     string
		sub      Subscription
		event    *AlertEvent
		expected bool
	}{
		{
			name:     "empty subscription matches everything",
			sub:      Subscription{},
			event:    lowMatchEvent,
			expected: true,
		},
		{
			name:     "severity at threshold passes",
			sub:      Subscription{MinSeverity: models.RiskLevelHigh},
			event:    highDocEvent,
			expected: true,
		},
		{
			name:     "severity below threshold filtered",
			sub:      Subscription{MinSeverity: models.RiskLevelMedium},
			event:    lowMatchEvent,
			expected: false,
		},
		{
			name:     "matching type passes",
			sub:      Subscription{Types: []AlertType{AlertTypeDocumentFlagged}},
			event:    highDocEvent,
			expected: true,
		},
		{
			name:     "non-matching type filtered",
			sub:      Subscription{Types: []AlertType{AlertTypeFamilyNotification}},
			event:    highDocEvent,
			expected: false,
		},
		{
			name: "both filters must pass",
			sub: Subscription{
				MinSeverity: models.RiskLevelHigh,
				Types:       []AlertType{AlertTypeIntelligenceMatch},
			},
			event:    lowMatchEvent,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.sub.Matches(tt.event))
		})
	}
}

func TestAlertSubject(t *testing.T) {
	event := NewAlertEvent(AlertTypeDocumentFlagged, models.RiskLevelHigh, "t", "", nil)
	assert.Equal(t, "alerts.document_flagged.high", alertSubject(event))
}
