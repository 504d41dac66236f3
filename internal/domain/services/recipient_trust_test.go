package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zenithankit/dhankavach/internal/domain/models"
)

func TestRecipientTrust_KnownFamilyMember(t *testing.T) {
	trust := NewRecipientTrust(testLogger())

	tests := []struct {
		name                 string
		recipient            string
		expectedRelationship string
		expectedCount        int
	}{
		{"english keyword", "my daughter Priya", "Daughter / बेटी", 45},
		{"hindi keyword", "बेटी के लिए", "बेटी / Daughter", 45},
		{"romanized keyword", "beta ka account", "Son / बेटा", 38},
		{"keyword inside upi handle", "didi@okhdfcbank", "Elder Sister / दीदी", 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := trust.Check(tt.recipient)

			assert.True(t, result.IsKnown)
			assert.Equal(t, models.TrustLevelHigh, result.TrustLevel)
			assert.Equal(t, tt.expectedRelationship, result.Relationship)
			assert.Equal(t, tt.expectedCount, result.PreviousTransactions)
			assert.Equal(t, "TRUSTED - Known family member", result.Verdict)
		})
	}
}

func TestRecipientTrust_UnknownRecipient(t *testing.T) {
	trust := NewRecipientTrust(testLogger())

	result := trust.Check("quickloans@ybl")

	assert.False(t, result.IsKnown)
	assert.Equal(t, models.TrustLevelUnknown, result.TrustLevel)
	assert.Zero(t, result.PreviousTransactions)
	assert.Contains(t, result.Verdict, "UNKNOWN")
}

func TestRecipientTrust_FirstMatchWins(t *testing.T) {
	trust := NewRecipientTrust(testLogger())

	// Both "daughter" and "son" appear; table order decides
	result := trust.Check("daughter and son shared account")

	assert.Equal(t, "Daughter / बेटी", result.Relationship)
}
