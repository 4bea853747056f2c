// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":   "1.4.2",
		"APP_LOG_LEVEL": "info",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"ADAPTER_VERIFIER_ADDRESS": "http://auth.internal:9000",
		"ADAPTER_REQUEST_TIMEOUT":  "5s",

		"STUB_ADDRESS":         "localhost:8081",
		"STUB_ACCEPTED_TOKENS": "good-token,other-token",
		"STUB_SIGN_KEY":        "stub_secret",
		"STUB_ISSUER":          "stub",
	}
	setEnvVars(t, envVars)

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.4.2", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "http://auth.internal:9000", cfg.Adapter.VerifierAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "localhost:8081", cfg.Stub.HTTPAddress)
	assert.Equal(t, []string{"good-token", "other-token"}, cfg.Stub.AcceptedTokens)
	assert.Equal(t, "stub_secret", cfg.Stub.SignKey)
	assert.Equal(t, "stub", cfg.Stub.Issuer)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"ADAPTER_VERIFIER_ADDRESS": "http://auth.internal:9000",
	})

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://auth.internal:9000", cfg.Adapter.VerifierAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)
	assert.Empty(t, cfg.Stub.AcceptedTokens)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_NoVariables(t *testing.T) {
	clearEnvVars(t)

	cfg, err := parseEnv()

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "fast",
	})

	cfg, err := parseEnv()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_Durations(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{"milliseconds", "250ms", 250 * time.Millisecond},
		{"seconds", "30s", 30 * time.Second},
		{"minutes", "2m", 2 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": tt.value})

			cfg, err := parseEnv()

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_VERSION",
		"APP_LOG_LEVEL",
		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"ADAPTER_VERIFIER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
		"STUB_ADDRESS",
		"STUB_ACCEPTED_TOKENS",
		"STUB_SIGN_KEY",
		"STUB_ISSUER",
	}
	for _, k := range keys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
		require.NoError(t, os.Unsetenv(k))
	}
}
