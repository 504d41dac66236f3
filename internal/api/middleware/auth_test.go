package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func authProbe(t *testing.T, secret, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	reached := false
	handler := APIKeyAuth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/message/analyze", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, reached
}

func TestAPIKeyAuth(t *testing.T) {
	tests := []struct {
		name         string
		secret       string
		authHeader   string
		expectedCode int
		expectReach  bool
	}{
		{"open deployment passes without header", "", "", http.StatusOK, true},
		{"missing header rejected", "s3cret", "", http.StatusUnauthorized, false},
		{"malformed header rejected", "s3cret", "s3cret", http.StatusUnauthorized, false},
		{"wrong scheme rejected", "s3cret", "Basic s3cret", http.StatusUnauthorized, false},
		{"wrong key rejected", "s3cret", "Bearer nope", http.StatusUnauthorized, false},
		{"valid key passes", "s3cret", "Bearer s3cret", http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, reached := authProbe(t, tt.secret, tt.authHeader)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectReach, reached)
		})
	}
}

func TestAPIKeyAuth_OptionsSkipsAuth(t *testing.T) {
	reached := false
	handler := APIKeyAuth("s3cret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/message/analyze", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, reached)
	assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
}

func TestGetAPIKey(t *testing.T) {
	var captured string
	handler := APIKeyAuth("s3cret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetAPIKey(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "s3cret", captured)
}
