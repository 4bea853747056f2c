package handler

import (
	"github.com/MKhiriev/token-relay/internal/config"
	"github.com/MKhiriev/token-relay/internal/handler/http"
	"github.com/MKhiriev/token-relay/internal/logger"
	"github.com/MKhiriev/token-relay/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServices
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
