// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the relay
// and the stub verifier. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the reported version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the inbound
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the location of the external verifier and the timeout
	// applied to every outbound verification call.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Stub holds settings of the stub verifier binary. The relay ignores it.
	Stub Stub `envPrefix:"STUB_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string exposed via GET /version.
	// When empty the build version injected by the linker is used.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level emitted (e.g. "info", "warn").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading and writing a single inbound request
	// (e.g. "30s", "1m"). It must exceed Adapter.RequestTimeout, otherwise
	// the caller is cut off before a slow verifier call is reported.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration of the outbound call to the external verifier.
type Adapter struct {
	// VerifierAddress is the base URL of the external verifier
	// (e.g. "http://auth.internal:9000"). The relay appends /verify.
	// A scheme-less value is treated as http.
	// Env: ADAPTER_VERIFIER_ADDRESS
	VerifierAddress string `env:"VERIFIER_ADDRESS"`

	// RequestTimeout is the maximum duration of one verification call.
	// A call exceeding it is reported to the caller as a failed call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Stub holds configuration of the stub verifier used for local development
// and integration tests.
type Stub struct {
	// HTTPAddress is the TCP address the stub verifier listens on.
	// Env: STUB_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// AcceptedTokens lists opaque tokens the stub answers 200 for.
	// Env: STUB_ACCEPTED_TOKENS (comma separated)
	AcceptedTokens []string `env:"ACCEPTED_TOKENS" envSeparator:","`

	// SignKey enables acceptance of HS256 JWTs signed with this key.
	// Env: STUB_SIGN_KEY
	SignKey string `env:"SIGN_KEY"`

	// Issuer, when set, is required as the "iss" claim of accepted JWTs.
	// Env: STUB_ISSUER
	Issuer string `env:"ISSUER"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left empty by every source are filled from [Defaults].
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
