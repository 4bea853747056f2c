// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net/http"

// Messages returned to the caller for each [Outcome].
const (
	MessageTokenNotProvided       = "token not provided"
	MessageVerificationSuccessful = "verification successful"
	MessageVerificationFailed     = "verification failed"
	MessageCallFailed             = "call failed"
)

// Envelope is the fixed-shape body returned by POST /helloworld.
//
// Data is never populated and is always serialised as null. Code is the HTTP
// status the transport layer writes; it is not part of the JSON body, which
// carries the canonical status text in Status instead.
type Envelope struct {
	// Data is reserved for a payload and is always nil.
	Data *string `json:"data"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`

	// Status is the canonical text of Code (e.g. "Forbidden").
	Status string `json:"status"`

	// Code is the HTTP status code of the response.
	Code int `json:"-"`

	// Outcome is the verification result the envelope was built from.
	Outcome Outcome `json:"-"`
}

var outcomeEnvelopes = map[Outcome]struct {
	message string
	code    int
}{
	OutcomeMissing:          {MessageTokenNotProvided, http.StatusForbidden},
	OutcomeAccepted:         {MessageVerificationSuccessful, http.StatusOK},
	OutcomeRejected:         {MessageVerificationFailed, http.StatusForbidden},
	OutcomeTransportFailure: {MessageCallFailed, http.StatusInternalServerError},
}

// NewEnvelope translates an [Outcome] into the response returned to the
// caller. Unknown outcomes are reported as a failed call.
func NewEnvelope(outcome Outcome) Envelope {
	e, ok := outcomeEnvelopes[outcome]
	if !ok {
		outcome = OutcomeTransportFailure
		e = outcomeEnvelopes[outcome]
	}

	return Envelope{
		Message: e.message,
		Status:  http.StatusText(e.code),
		Code:    e.code,
		Outcome: outcome,
	}
}
