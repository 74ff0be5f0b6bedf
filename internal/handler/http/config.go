// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/forward-auth-config/internal/logger"
	"github.com/MKhiriev/forward-auth-config/internal/utils"
)

// getConfig writes the tenant properties fetched at startup.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, h.props, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getConfig").Msg("error writing config")
	}
}

// getApplication resolves the application named by the "name" query
// parameter, or the default one when it is absent. Each request performs one
// remote lookup.
func (h *Handler) getApplication(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := r.URL.Query().Get("name")

	app, err := h.props.ApplicationByNameOrDefault(r.Context(), name)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.getApplication").Str("application", name).Int("status", status).Msg("application lookup failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	if _, err = utils.WriteJSON(w, app, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getApplication").Msg("error writing application")
	}
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(h.version))
}
