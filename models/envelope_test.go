package models

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		outcome     Outcome
		wantOutcome Outcome
		wantMessage string
		wantCode    int
		wantStatus  string
	}{
		{"missing token", OutcomeMissing, OutcomeMissing, MessageTokenNotProvided, http.StatusForbidden, "Forbidden"},
		{"accepted", OutcomeAccepted, OutcomeAccepted, MessageVerificationSuccessful, http.StatusOK, "OK"},
		{"rejected", OutcomeRejected, OutcomeRejected, MessageVerificationFailed, http.StatusForbidden, "Forbidden"},
		{"transport failure", OutcomeTransportFailure, OutcomeTransportFailure, MessageCallFailed, http.StatusInternalServerError, "Internal Server Error"},
		{"unknown outcome", Outcome(42), OutcomeTransportFailure, MessageCallFailed, http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnvelope(tt.outcome)

			assert.Nil(t, e.Data)
			assert.Equal(t, tt.wantOutcome, e.Outcome)
			assert.Equal(t, tt.wantMessage, e.Message)
			assert.Equal(t, tt.wantCode, e.Code)
			assert.Equal(t, tt.wantStatus, e.Status)
		})
	}
}

// TestEnvelope_JSONShape verifies that data is always serialised as null and
// that the HTTP code never leaks into the body.
func TestEnvelope_JSONShape(t *testing.T) {
	b, err := json.Marshal(NewEnvelope(OutcomeRejected))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(b, &body))

	assert.Len(t, body, 3)
	v, ok := body["data"]
	assert.True(t, ok, "data key must be present")
	assert.Nil(t, v)
	assert.Equal(t, MessageVerificationFailed, body["message"])
	assert.Equal(t, "Forbidden", body["status"])
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "missing", OutcomeMissing.String())
	assert.Equal(t, "accepted", OutcomeAccepted.String())
	assert.Equal(t, "rejected", OutcomeRejected.String())
	assert.Equal(t, "transport_failure", OutcomeTransportFailure.String())
	assert.Equal(t, "unknown", Outcome(-1).String())
}
