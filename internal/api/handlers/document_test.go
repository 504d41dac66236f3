package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithankit/dhankavach/internal/domain/models"
	"github.com/zenithankit/dhankavach/internal/domain/services"
)

const riskyLoanText = `Get a personal loan today! 0% interest, no documentation needed.
Pay processing fee of Rs 2000 to 9876543210 or scamloans@paytm to proceed.`

func TestDocumentHandler_Analyze(t *testing.T) {
	log := testLogger()
	h := NewDocumentHandler(
		services.NewDocumentScorer(log),
		services.NewRiskProfileRegistry(services.MatchPolicyBidirectional, log),
		newAlertSink(nil, nil),
		log,
	)

	rec := postJSON(t, h.Analyze, map[string]string{"text": riskyLoanText})

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.DocumentAnalysis
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, models.DocumentTypeLoan, result.DocumentType)
	assert.Equal(t, 10, result.RiskScore)
	assert.True(t, result.ShouldFlag)
}

func TestDocumentHandler_AnalyzeRequiresText(t *testing.T) {
	log := testLogger()
	h := NewDocumentHandler(
		services.NewDocumentScorer(log),
		services.NewRiskProfileRegistry(services.MatchPolicyBidirectional, log),
		newAlertSink(nil, nil),
		log,
	)

	rec := postJSON(t, h.Analyze, map[string]string{"text": ""})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Flagging a fraudulent document must protect future transactions to its
// recipients through the shared registry.
func TestDocumentFlagFeedsProfileCheck(t *testing.T) {
	log := testLogger()
	registry := services.NewRiskProfileRegistry(services.MatchPolicyBidirectional, log)
	sink := newAlertSink(nil, nil)

	docHandler := NewDocumentHandler(services.NewDocumentScorer(log), registry, sink, log)
	profileHandler := NewProfileHandler(registry, sink, log)

	flagRec := postJSON(t, docHandler.Flag, map[string]string{"text": riskyLoanText})
	require.Equal(t, http.StatusOK, flagRec.Code)

	var flagResult models.FlagResult
	require.NoError(t, json.NewDecoder(flagRec.Body).Decode(&flagResult))
	require.True(t, flagResult.Flagged)

	checkRec := postJSON(t, profileHandler.Check, map[string]string{
		"recipient": "9876543210",
		"purpose":   "loan processing fee",
	})
	require.Equal(t, http.StatusOK, checkRec.Code)

	var checkResult models.ProfileCheckResult
	require.NoError(t, json.NewDecoder(checkRec.Body).Decode(&checkResult))
	assert.True(t, checkResult.HasMatches)
	assert.Equal(t, models.RecommendationBlock, checkResult.Recommendation)
}

func TestDocumentHandler_FlagSkipsCleanDocument(t *testing.T) {
	log := testLogger()
	registry := services.NewRiskProfileRegistry(services.MatchPolicyBidirectional, log)
	h := NewDocumentHandler(services.NewDocumentScorer(log), registry, newAlertSink(nil, nil), log)

	rec := postJSON(t, h.Flag, map[string]string{
		"text": "Personal loan offer from a bank registered with RBI. Visit your nearest branch.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result models.FlagResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.False(t, result.Flagged)
	assert.Equal(t, models.StatusSkipped, result.Status)
}
