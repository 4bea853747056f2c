package main

import (
	"fmt"

	"github.com/MKhiriev/token-relay/internal/config"
	"github.com/MKhiriev/token-relay/internal/logger"
	"github.com/MKhiriev/token-relay/internal/server"
	"github.com/MKhiriev/token-relay/internal/stub"
	"github.com/MKhiriev/token-relay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("stub-verifier")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	verifier, err := stub.NewVerifier(cfg.Stub, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating stub verifier")
	}

	srv, err := server.NewHTTPServer(verifier.Handler(), config.Server{
		HTTPAddress:    cfg.Stub.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}
