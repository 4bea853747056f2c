package main

import (
	"fmt"

	"github.com/MKhiriev/token-relay/internal/adapter"
	"github.com/MKhiriev/token-relay/internal/config"
	"github.com/MKhiriev/token-relay/internal/handler"
	"github.com/MKhiriev/token-relay/internal/logger"
	"github.com/MKhiriev/token-relay/internal/server"
	"github.com/MKhiriev/token-relay/internal/service"
	"github.com/MKhiriev/token-relay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("token-relay")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("log_level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	appVersion := cfg.App.Version
	if appVersion == "" {
		appVersion = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Str("app_version", appVersion).
		Msg("received configs")

	verifier, err := adapter.NewHTTPVerifierAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating verifier adapter")
	}

	services, err := service.NewServices(verifier, appVersion, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}
