package service

import (
	"context"

	"github.com/MKhiriev/token-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VerificationService relays a caller's credential to the external verifier
// and translates the answer into the envelope returned to the caller.
type VerificationService interface {
	// Verify never fails: every outcome, including a failed outbound call,
	// is expressed in the returned envelope.
	Verify(ctx context.Context, credential models.Credential) models.Envelope
}

// AppInfoService exposes static information about the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// VerificationServiceWrapper defines middleware composition for VerificationService.
// Implementations wrap an existing VerificationService to add behavior such as
// logging.
type VerificationServiceWrapper interface {
	Wrap(VerificationService) VerificationService // returns a decorated VerificationService applying additional behavior
}
