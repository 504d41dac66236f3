package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zenithankit/dhankavach/internal/domain/models"
)

func TestEntityRegistry_Verify(t *testing.T) {
	registry := NewEntityRegistry(testLogger())

	tests := []struct {
		name            string
		company         string
		expectedVerdict models.EntityVerdict
		registered      bool
	}{
		{
			name:            "registered bank full name",
			company:         "State Bank of India",
			expectedVerdict: models.EntityVerdictLegitimate,
			registered:      true,
		},
		{
			name:            "registered bank in longer name",
			company:         "HDFC Bank Home Loans Division",
			expectedVerdict: models.EntityVerdictLegitimate,
			registered:      true,
		},
		{
			name:            "registered NBFC",
			company:         "Bajaj Finserv",
			expectedVerdict: models.EntityVerdictLegitimate,
			registered:      true,
		},
		{
			name:            "scam name pattern",
			company:         "Easy Loan Finance Pvt Ltd",
			expectedVerdict: models.EntityVerdictLikelyFake,
			registered:      false,
		},
		{
			name:            "lottery name pattern",
			company:         "Lucky Draw Services",
			expectedVerdict: models.EntityVerdictLikelyFake,
			registered:      false,
		},
		{
			name:            "unlisted company",
			company:         "Sharma Traders",
			expectedVerdict: models.EntityVerdictNotFound,
			registered:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := registry.Verify(tt.company)

			assert.Equal(t, tt.expectedVerdict, result.Verdict)
			assert.Equal(t, tt.registered, result.IsRegistered)
			assert.Equal(t, tt.company, result.Company)
			assert.NotEmpty(t, result.Message)
			assert.NotEmpty(t, result.HindiMessage)
		})
	}
}

func TestEntityRegistry_NBFCRegistrationNumber(t *testing.T) {
	registry := NewEntityRegistry(testLogger())

	result := registry.Verify("Tata Capital Limited")

	assert.Equal(t, models.EntityVerdictLegitimate, result.Verdict)
	assert.Equal(t, "NBFC", result.EntityType)
	assert.Equal(t, "B-13.02108", result.Registration)
}
