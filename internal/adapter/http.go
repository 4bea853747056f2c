package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/token-relay/internal/config"
	"github.com/MKhiriev/token-relay/internal/logger"
	"github.com/MKhiriev/token-relay/internal/utils"
	"github.com/MKhiriev/token-relay/models"
)

const verifyPath = "/verify"

type httpVerifierAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPVerifierAdapter constructs an HTTP implementation of
// [VerifierAdapter]. It normalises and validates the base URL from
// cfg.VerifierAddress and configures the underlying HTTP client with the
// resolved base URL and cfg.RequestTimeout.
//
// The base URL is fixed for the lifetime of the adapter; tests point it at an
// httptest server by passing that server's URL.
//
// Returns an error if cfg.VerifierAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPVerifierAdapter(cfg config.Adapter, logger *logger.Logger) (VerifierAdapter, error) {
	baseURL, err := config.NormalizeBaseURL(cfg.VerifierAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidVerifierAddress, err)
	}

	logger.Info().
		Str("verifier_address", baseURL).
		Dur("timeout", cfg.RequestTimeout).
		Msg("verifier adapter created")

	return &httpVerifierAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

// Verify implements [VerifierAdapter]. It POSTs an empty body to
// {base}/verify with the token in the Token header.
func (h *httpVerifierAdapter) Verify(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)
	start := time.Now()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(models.TokenHeader, token).
		Post(verifyPath)

	err = mapVerifyResult(resp, err)

	log.Debug().
		Err(err).
		Int("verifier_status", statusCode(resp)).
		Dur("verifier_duration", time.Since(start)).
		Msg("verifier call finished")

	return err
}
