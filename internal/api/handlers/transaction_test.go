package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithankit/dhankavach/internal/domain/models"
	"github.com/zenithankit/dhankavach/internal/domain/services"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "disabled", Format: "json"})
}

func newTransactionHandler() *TransactionHandler {
	log := testLogger()
	return NewTransactionHandler(
		services.NewTransactionScorer(log),
		services.NewRecipientTrust(log),
		services.NewNotifier("", log),
		newAlertSink(nil, nil),
		log,
	)
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestTransactionHandler_Analyze(t *testing.T) {
	h := newTransactionHandler()

	rec := postJSON(t, h.Analyze, TransactionRequest{
		Amount:    25000,
		Recipient: "unknown@upi",
		Purpose:   "urgent payment",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result models.TransactionAssessment
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, 6, result.RiskScore)
	assert.Equal(t, models.RiskLevelHigh, result.RiskLevel)
	assert.True(t, result.NeedsFamilyApproval)
}

func TestTransactionHandler_AnalyzeNegativeAmount(t *testing.T) {
	h := newTransactionHandler()

	rec := postJSON(t, h.Analyze, TransactionRequest{
		Amount:    -50,
		Recipient: "daughter",
		Purpose:   "pocket money",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Amount must not be negative")
}

func TestTransactionHandler_AnalyzeInvalidBody(t *testing.T) {
	h := newTransactionHandler()

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransactionHandler_RecipientRequiresValue(t *testing.T) {
	h := newTransactionHandler()

	rec := postJSON(t, h.Recipient, map[string]string{"recipient": ""})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransactionHandler_Notify(t *testing.T) {
	h := newTransactionHandler()

	rec := postJSON(t, h.Notify, NotifyRequest{
		Amount:      50000,
		Recipient:   "lucky@paytm",
		Purpose:     "investment returns",
		NomineeName: "Priya",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.FamilyNotification
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.True(t, result.NotificationSent)
	assert.Equal(t, "Priya", result.NomineeName)
	assert.Contains(t, result.NotificationMessage, "₹50,000")
}
