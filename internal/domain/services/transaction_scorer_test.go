package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithankit/dhankavach/internal/domain/models"
)

func TestTransactionScorer_NegativeAmount(t *testing.T) {
	scorer := NewTransactionScorer(testLogger())

	result, err := scorer.Analyze(-100, "daughter", "pocket money")

	require.ErrorIs(t, err, ErrNegativeAmount)
	assert.Nil(t, result)
}

func TestTransactionScorer_AmountBandsAreMonotonic(t *testing.T) {
	scorer := NewTransactionScorer(testLogger())

	tests := []struct {
		amount        float64
		expectedScore int
	}{
		{4000, 0},
		{5000, 1},
		{10000, 2},
		{25000, 3},
		{50000, 4},
		{60000, 4},
	}

	for _, tt := range tests {
		result, err := scorer.Analyze(tt.amount, "daughter", "monthly support")
		require.NoError(t, err)
		assert.Equal(t, tt.expectedScore, result.RiskScore, "amount %.0f", tt.amount)
	}
}

func TestTransactionScorer_FamilyApprovalOr(t *testing.T) {
	scorer := NewTransactionScorer(testLogger())

	tests := []struct {
		name           string
		amount         float64
		purpose        string
		needsApproval  bool
		expectedReason string
	}{
		{
			name:           "small safe payment",
			amount:         500,
			purpose:        "groceries",
			needsApproval:  false,
			expectedReason: "",
		},
		{
			name:           "large amount with low score",
			amount:         6000,
			purpose:        "rent",
			needsApproval:  true,
			expectedReason: "Amount exceeds ₹5,000",
		},
		{
			name:           "high score wins over amount reason",
			amount:         6000,
			purpose:        "lottery claim",
			needsApproval:  true,
			expectedReason: "High risk score",
		},
		{
			name:           "small amount with high score",
			amount:         500,
			purpose:        "lottery prize",
			needsApproval:  true,
			expectedReason: "High risk score",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := scorer.Analyze(tt.amount, "someone", tt.purpose)
			require.NoError(t, err)

			assert.Equal(t, tt.needsApproval, result.NeedsFamilyApproval)
			assert.Equal(t, tt.expectedReason, result.FamilyApprovalReason)
		})
	}
}

func TestTransactionScorer_PurposeKeywordsAccumulate(t *testing.T) {
	scorer := NewTransactionScorer(testLogger())

	// lottery (+5) and prize (+5) both hit, clamped to 10
	result, err := scorer.Analyze(1000, "friend", "lottery prize payment")
	require.NoError(t, err)

	assert.Equal(t, 10, result.RiskScore)
	assert.Equal(t, models.RiskLevelCritical, result.RiskLevel)
	assert.Contains(t, result.Recommendation, "DO NOT PROCEED")
}

func TestTransactionScorer_HindiPurposeKeywords(t *testing.T) {
	scorer := NewTransactionScorer(testLogger())

	result, err := scorer.Analyze(1000, "agent", "लॉटरी का इनाम")
	require.NoError(t, err)

	// लॉटरी (+5) and इनाम (+5), clamped
	assert.Equal(t, 10, result.RiskScore)
	assert.Equal(t, models.RiskLevelCritical, result.RiskLevel)
}

func TestTransactionScorer_PhoneNumberRecipient(t *testing.T) {
	scorer := NewTransactionScorer(testLogger())

	result, err := scorer.Analyze(100, "+91 98765-43210", "birthday")
	require.NoError(t, err)

	assert.Equal(t, 2, result.RiskScore)
	require.Len(t, result.RiskFactors, 1)
	assert.Contains(t, result.RiskFactors[0], "phone number")
}

func TestTransactionScorer_SuspiciousUPIHandle(t *testing.T) {
	scorer := NewTransactionScorer(testLogger())

	// Only the first matching fragment scores, once
	result, err := scorer.Analyze(100, "luckywinner@paytm", "birthday")
	require.NoError(t, err)

	assert.Equal(t, 2, result.RiskScore)
	require.Len(t, result.RiskFactors, 1)
	assert.Contains(t, result.RiskFactors[0], "'luck'")
}

func TestTransactionScorer_RiskLevelBands(t *testing.T) {
	scorer := NewTransactionScorer(testLogger())

	tests := []struct {
		name          string
		amount        float64
		purpose       string
		expectedLevel models.RiskLevel
	}{
		{"low", 100, "books", models.RiskLevelLow},
		{"medium", 10000, "rent", models.RiskLevelLow},
		{"high band", 25000, "urgent payment", models.RiskLevelHigh},
		{"critical band", 50000, "investment returns", models.RiskLevelCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := scorer.Analyze(tt.amount, "someone", tt.purpose)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedLevel, result.RiskLevel)
		})
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "₹0"},
		{500, "₹500"},
		{5000, "₹5,000"},
		{50000, "₹50,000"},
		{1234567, "₹1,234,567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatINR(tt.amount), "amount %.0f", tt.amount)
	}
}
