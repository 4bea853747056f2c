package service

import (
	"context"
	"time"

	"github.com/MKhiriev/token-relay/internal/logger"
	"github.com/MKhiriev/token-relay/models"
	"github.com/rs/zerolog"
)

// VerificationLoggingService records the outcome of every verification.
// The token itself is never written.
type VerificationLoggingService struct {
	inner VerificationService

	logger *logger.Logger
}

func NewVerificationLoggingService(logger *logger.Logger) VerificationServiceWrapper {
	return &VerificationLoggingService{
		logger: logger,
	}
}

func (v *VerificationLoggingService) Verify(ctx context.Context, credential models.Credential) models.Envelope {
	start := time.Now()
	envelope := v.inner.Verify(ctx, credential)

	log := v.loggerFor(ctx)

	var event *zerolog.Event
	switch envelope.Outcome {
	case models.OutcomeAccepted:
		event = log.Info()
	case models.OutcomeTransportFailure:
		event = log.Error()
	default:
		event = log.Warn()
	}

	event.
		Stringer("credential", credential).
		Stringer("outcome", envelope.Outcome).
		Int("status", envelope.Code).
		Dur("duration", time.Since(start)).
		Msg("verification finished")

	return envelope
}

func (v *VerificationLoggingService) Wrap(inner VerificationService) VerificationService {
	v.inner = inner
	return v
}

// loggerFor prefers the request-scoped logger carrying the trace id.
func (v *VerificationLoggingService) loggerFor(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return v.logger
}
