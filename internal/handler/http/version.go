package http

import (
	"net/http"

	"github.com/MKhiriev/token-relay/internal/logger"
	"github.com/MKhiriev/token-relay/internal/utils"
)

func (h *Handler) getAppVersion(w http.ResponseWriter, r *http.Request) {
	appVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	if _, err := utils.WriteText(w, appVersion, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing app version")
	}
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteText(w, "ok", http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health status")
	}
}
