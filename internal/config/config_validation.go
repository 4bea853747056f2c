// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// An empty config is valid: it is what a builder without sources produces.
// Any value that is set must be usable: the verifier address must resolve to
// a URL with a host, and timeouts cannot be negative. When both timeouts are
// set, the server timeout must exceed the adapter timeout so that a slow
// verifier is still answered with an envelope.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.Server.RequestTimeout > 0 && cfg.Adapter.RequestTimeout > 0 &&
		cfg.Server.RequestTimeout <= cfg.Adapter.RequestTimeout {
		return fmt.Errorf("%w: request timeout %s must exceed verifier timeout %s",
			ErrInvalidServerConfigs, cfg.Server.RequestTimeout, cfg.Adapter.RequestTimeout)
	}

	if cfg.Adapter.VerifierAddress != "" {
		if _, err := NormalizeBaseURL(cfg.Adapter.VerifierAddress); err != nil {
			return fmt.Errorf("%w: verifier address: %w", ErrInvalidAdapterConfigs, err)
		}
	}

	if cfg.Stub.Issuer != "" && cfg.Stub.SignKey == "" {
		return fmt.Errorf("%w: issuer requires a sign key", ErrInvalidStubConfigs)
	}

	return nil
}

// NormalizeBaseURL turns a configured address into a base URL without a
// trailing slash. A missing scheme defaults to http.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errAddressWithoutHost
	}

	return strings.TrimRight(u.String(), "/"), nil
}
