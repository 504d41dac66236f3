package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithankit/dhankavach/internal/domain/models"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "disabled", Format: "json"})
}

func TestMessageScorer_CategoryCountMapping(t *testing.T) {
	scorer := NewMessageScorer(testLogger())

	tests := []struct {
		name          string
		message       string
		expectedScore int
		expectedLevel models.RiskLevel
	}{
		{
			name:          "no patterns",
			message:       "hello there",
			expectedScore: 1,
			expectedLevel: models.RiskLevelLow,
		},
		{
			name:          "empty message",
			message:       "",
			expectedScore: 1,
			expectedLevel: models.RiskLevelLow,
		},
		{
			name:          "one category",
			message:       "please respond urgent",
			expectedScore: 4,
			expectedLevel: models.RiskLevelMedium,
		},
		{
			name:          "two categories",
			message:       "urgent message from rbi",
			expectedScore: 6,
			expectedLevel: models.RiskLevelMedium,
		},
		{
			name: "three categories with threat urgency escalation",
			// urgency + authority + threats, plus the +1 escalation
			message:       "urgent rbi notice or jail",
			expectedScore: 9,
			expectedLevel: models.RiskLevelHigh,
		},
		{
			name:          "four categories capped at ten",
			message:       "urgent rbi jail lottery",
			expectedScore: 10,
			expectedLevel: models.RiskLevelHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Analyze(tt.message)

			require.NotNil(t, result)
			assert.Equal(t, models.StatusSuccess, result.Status)
			assert.Equal(t, tt.expectedScore, result.RiskScore)
			assert.Equal(t, tt.expectedLevel, result.RiskLevel)
		})
	}
}

func TestMessageScorer_SensitiveInfoEscalation(t *testing.T) {
	scorer := NewMessageScorer(testLogger())

	// One category (sensitive info) at base 4, escalated by +2
	result := scorer.Analyze("share your otp")

	assert.Equal(t, 6, result.RiskScore)
	assert.Equal(t, models.RiskLevelMedium, result.RiskLevel)
	assert.Contains(t, result.Categories, models.CategorySensitiveInfoRequest)
}

func TestMessageScorer_RedFlagCountsKeywords(t *testing.T) {
	scorer := NewMessageScorer(testLogger())

	// Two keywords in the same category: red flags count keywords,
	// the score counts categories.
	result := scorer.Analyze("urgent hurry")

	assert.Equal(t, 4, result.RiskScore)
	assert.Equal(t, 2, result.TotalRedFlags)
	require.Len(t, result.PatternsFound, 1)
	assert.Equal(t, models.CategoryUrgency, result.PatternsFound[0].Category)
	assert.Len(t, result.PatternsFound[0].Keywords, 2)
}

func TestMessageScorer_HindiKeywords(t *testing.T) {
	scorer := NewMessageScorer(testLogger())

	result := scorer.Analyze("तुरंत पैसे भेजो")

	assert.Contains(t, result.Categories, models.CategoryUrgency)
	assert.GreaterOrEqual(t, result.RiskScore, 4)
}

func TestMessageScorer_Idempotent(t *testing.T) {
	scorer := NewMessageScorer(testLogger())
	message := "urgent rbi notice or jail lottery"

	first := scorer.Analyze(message)
	second := scorer.Analyze(message)

	assert.Equal(t, first, second)
}
