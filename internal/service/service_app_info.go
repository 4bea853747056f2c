package service

import (
	"context"

	"github.com/MKhiriev/token-relay/internal/logger"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(appVersion string, logger *logger.Logger) (AppInfoService, error) {
	if appVersion == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: appVersion,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
