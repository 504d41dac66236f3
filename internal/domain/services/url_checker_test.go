package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithankit/dhankavach/internal/domain/models"
)

func TestURLChecker_VerdictByIndicatorCount(t *testing.T) {
	checker := NewURLChecker(testLogger())

	tests := []struct {
		name            string
		url             string
		expectedVerdict models.URLVerdict
		minIndicators   int
	}{
		{
			name:            "official bank domain is safe",
			url:             "https://onlinesbi.com/login",
			expectedVerdict: models.URLVerdictSafe,
			minIndicators:   0,
		},
		{
			name:            "single indicator is suspicious",
			url:             "https://bit.ly/3xYz",
			expectedVerdict: models.URLVerdictSuspicious,
			minIndicators:   1,
		},
		{
			name:            "brand impersonation plus bad TLD is dangerous",
			url:             "http://sbi-verify.xyz",
			expectedVerdict: models.URLVerdictDangerous,
			minIndicators:   2,
		},
		{
			name:            "IP host serving a login page is dangerous",
			url:             "http://192.168.1.5/login",
			expectedVerdict: models.URLVerdictDangerous,
			minIndicators:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := checker.Check(tt.url)

			require.NotNil(t, result)
			assert.Equal(t, tt.expectedVerdict, result.SafetyVerdict)
			assert.GreaterOrEqual(t, len(result.Indicators), tt.minIndicators)
			assert.Equal(t, len(result.Indicators) > 0, result.IsSuspicious)
		})
	}
}

func TestURLChecker_BrandOnLegitimateDomainNotFlagged(t *testing.T) {
	checker := NewURLChecker(testLogger())

	result := checker.Check("https://www.hdfcbank.com/personal")

	assert.Equal(t, models.URLVerdictSafe, result.SafetyVerdict)
	assert.Empty(t, result.Indicators)
	assert.Equal(t, "Link appears safe, but always verify independently", result.Recommendation)
}

func TestURLChecker_ExcessiveSubdomains(t *testing.T) {
	checker := NewURLChecker(testLogger())

	result := checker.Check("https://secure.account.verify.sbi.co.in")

	assert.Equal(t, models.URLVerdictSuspicious, result.SafetyVerdict)
	require.Len(t, result.Indicators, 1)
	assert.Contains(t, result.Indicators[0], "subdomains")
	assert.Equal(t, "Do NOT click this link", result.Recommendation)
}

func TestURLChecker_PlainHTTPSensitiveSite(t *testing.T) {
	checker := NewURLChecker(testLogger())

	result := checker.Check("http://mybank-login.com")

	assert.True(t, result.IsSuspicious)
	found := false
	for _, ind := range result.Indicators {
		if ind == "Not using HTTPS for sensitive site - legitimate banks always use HTTPS" {
			found = true
		}
	}
	assert.True(t, found, "expected HTTPS indicator, got %v", result.Indicators)
}
