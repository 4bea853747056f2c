// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/token-relay/internal/adapter"
	"github.com/MKhiriev/token-relay/internal/logger"
	"github.com/MKhiriev/token-relay/models"
)

type verificationService struct {
	verifier adapter.VerifierAdapter

	logger *logger.Logger
}

// NewVerificationService returns the relay core. verifier is the only
// collaborator; it is fixed at construction and never mutated afterwards,
// so the service is safe for concurrent use.
func NewVerificationService(verifier adapter.VerifierAdapter, logger *logger.Logger) (VerificationService, error) {
	if verifier == nil {
		return nil, ErrNoVerifierAdapter
	}

	return &verificationService{
		verifier: verifier,
		logger:   logger,
	}, nil
}

// Verify implements [VerificationService].
//
// A request without a token is answered without contacting the verifier.
// Otherwise the verifier is called exactly once and its answer decides the
// outcome: accepted on 200, rejected on any other status, transport failure
// when no answer was obtained.
func (s *verificationService) Verify(ctx context.Context, credential models.Credential) models.Envelope {
	return models.NewEnvelope(s.resolve(ctx, credential))
}

func (s *verificationService) resolve(ctx context.Context, credential models.Credential) models.Outcome {
	if !credential.Provided {
		return models.OutcomeMissing
	}

	err := s.verifier.Verify(ctx, credential.Token)
	switch {
	case err == nil:
		return models.OutcomeAccepted
	case errors.Is(err, adapter.ErrTokenRejected):
		return models.OutcomeRejected
	default:
		return models.OutcomeTransportFailure
	}
}
