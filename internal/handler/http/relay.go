// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/token-relay/internal/logger"
	"github.com/MKhiriev/token-relay/internal/utils"
	"github.com/MKhiriev/token-relay/models"
)

// helloWorld relays the caller's Token header to the external verifier and
// answers with the resulting envelope. The HTTP status always matches the
// envelope's code: 200, 403 or 500.
func (h *Handler) helloWorld(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	envelope := h.services.VerificationService.Verify(r.Context(), credentialFromRequest(r))

	if _, err := utils.WriteJSON(w, envelope, envelope.Code); err != nil {
		log.Err(err).Msg("error writing verification response")
	}
}

// credentialFromRequest reads the Token header. A header sent with an empty
// value is still a provided credential; only an absent header is missing.
func credentialFromRequest(r *http.Request) models.Credential {
	values := r.Header.Values(models.TokenHeader)
	if len(values) == 0 {
		return models.NoCredential()
	}

	return models.NewCredential(values[0])
}
