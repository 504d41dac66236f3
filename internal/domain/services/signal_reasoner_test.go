package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zenithankit/dhankavach/internal/domain/models"
)

func TestSignalReasoner_Judgments(t *testing.T) {
	reasoner := NewSignalReasoner(testLogger())

	tests := []struct {
		name                   string
		positive               []string
		negative               []string
		expectedJudgment       models.Judgment
		expectedRecommendation models.SignalRecommendation
		expectConflict         bool
	}{
		{
			name:                   "all positive allows",
			positive:               []string{"official domain", "valid SSL", "known sender"},
			negative:               nil,
			expectedJudgment:       models.JudgmentAppearsSafe,
			expectedRecommendation: models.SignalRecommendationAllow,
			expectConflict:         false,
		},
		{
			name:                   "negatives outweigh",
			positive:               []string{"looks professional"},
			negative:               []string{"urgency pressure", "asks for OTP"},
			expectedJudgment:       models.JudgmentRiskOutweighs,
			expectedRecommendation: models.SignalRecommendationBlock,
			expectConflict:         true,
		},
		{
			name:                   "positives lead but negatives exist",
			positive:               []string{"valid SSL", "registered company", "correct branding"},
			negative:               []string{"unusual payment request"},
			expectedJudgment:       models.JudgmentUncertain,
			expectedRecommendation: models.SignalRecommendationVerify,
			expectConflict:         true,
		},
		{
			name:                   "one each blocks due to weighting",
			positive:               []string{"looks legitimate"},
			negative:               []string{"asks for PIN"},
			expectedJudgment:       models.JudgmentRiskOutweighs,
			expectedRecommendation: models.SignalRecommendationBlock,
			expectConflict:         true,
		},
		{
			name:                   "no signals at all",
			positive:               nil,
			negative:               nil,
			expectedJudgment:       models.JudgmentUncertain,
			expectedRecommendation: models.SignalRecommendationVerify,
			expectConflict:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := reasoner.Analyze(tt.positive, tt.negative, "payment request review")

			assert.Equal(t, tt.expectedJudgment, result.Judgment)
			assert.Equal(t, tt.expectedRecommendation, result.Recommendation)
			assert.Equal(t, tt.expectConflict, result.HasConflict)
			assert.Equal(t, priorityRule, result.PriorityRule)
		})
	}
}

func TestSignalReasoner_AllowReasoning(t *testing.T) {
	reasoner := NewSignalReasoner(testLogger())

	result := reasoner.Analyze([]string{"known merchant"}, nil, "")

	assert.Equal(t, models.SignalRecommendationAllow, result.Recommendation)
	assert.Equal(t, "No significant risk signals detected.", result.Reasoning)
}

func TestSignalReasoner_BlankSignalsTrimmed(t *testing.T) {
	reasoner := NewSignalReasoner(testLogger())

	result := reasoner.Analyze(
		[]string{"  valid SSL  ", "", "   "},
		[]string{"", "asks for OTP"},
		"link check",
	)

	assert.Equal(t, 1, result.PositiveCount)
	assert.Equal(t, 1, result.NegativeCount)
	// 1 positive vs 1.5 adjusted negative
	assert.Equal(t, models.SignalRecommendationBlock, result.Recommendation)
}

func TestSignalReasoner_PanelShowsNoneDetected(t *testing.T) {
	reasoner := NewSignalReasoner(testLogger())

	result := reasoner.Analyze(nil, []string{"threatening language"}, "call review")

	assert.Contains(t, result.ReasoningPanel, "(None detected)")
	assert.Contains(t, result.ReasoningPanel, "threatening language")
	assert.Contains(t, result.ReasoningPanel, "call review")
}
