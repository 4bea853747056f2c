package service

import (
	"github.com/MKhiriev/token-relay/internal/adapter"
	"github.com/MKhiriev/token-relay/internal/logger"
)

type Services struct {
	VerificationService VerificationService
	AppInfoService      AppInfoService
}

// NewServices builds the service layer on top of verifier. The verification
// service is wrapped with outcome logging.
func NewServices(verifier adapter.VerifierAdapter, appVersion string, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	verificationService, err := NewVerificationService(verifier, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(appVersion, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		VerificationService: NewVerificationLoggingService(logger).Wrap(verificationService),
		AppInfoService:      appInfoService,
	}, nil
}
