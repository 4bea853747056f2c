// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound side of the relay: the call to the
// external verifier that judges whether a credential token is valid.
//
// The primary abstraction is [VerifierAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP
// implementation ([NewHTTPVerifierAdapter]) built on resty.
//
// Failures are reported as explicit error kinds rather than a single
// catch-all: [ErrTokenRejected] when the verifier answered with any status
// other than 200, and [ErrCallFailed] when no answer was obtained. Callers
// use [errors.Is] to tell them apart.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/verifier_adapter_mock.go -package=mock

// VerifierAdapter forwards a credential token to the external verifier.
type VerifierAdapter interface {
	// Verify sends token to the verifier exactly once.
	//
	// It returns nil when the verifier accepted the token, an error wrapping
	// ErrTokenRejected when the verifier answered with any other status, and
	// an error wrapping ErrCallFailed when the call could not complete
	// (connection refused, timeout, cancelled context, ...).
	Verify(ctx context.Context, token string) error
}
