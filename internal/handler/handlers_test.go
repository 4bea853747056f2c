package handler

import (
	"testing"

	"github.com/MKhiriev/token-relay/internal/config"
	"github.com/MKhiriev/token-relay/internal/logger"
	"github.com/MKhiriev/token-relay/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewHandlers_HTTPAddress verifies that a configured HTTP address yields
// an initialised HTTP handler.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_Errors(t *testing.T) {
	tests := []struct {
		name     string
		services *service.Services
		cfg      config.Server
		wantErr  error
	}{
		{
			name:     "no address",
			services: &service.Services{},
			cfg:      config.Server{},
			wantErr:  errNoHandlersAreCreated,
		},
		{
			name:    "no services",
			cfg:     config.Server{HTTPAddress: ":8080"},
			wantErr: errNoServices,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(tt.services, tt.cfg, logger.Nop())

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, h)
		})
	}
}
