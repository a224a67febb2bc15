// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"grimm.is/flywatch/internal/config"
)

// SettingsHandlers exposes the live notification settings. Changes are
// kept in memory only.
type SettingsHandlers struct {
	store *config.Store
}

// RegisterRoutes registers the settings routes
func (h *SettingsHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/settings/notifications", h.handleGet).Methods(http.MethodGet)
	router.HandleFunc("/api/settings/notifications", h.handlePut).Methods(http.MethodPut)
}

// handleGet returns the current notification settings.
// GET /api/settings/notifications
func (h *SettingsHandlers) handleGet(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.store.Notifications())
}

// handlePut replaces the notification settings.
// PUT /api/settings/notifications
func (h *SettingsHandlers) handlePut(w http.ResponseWriter, r *http.Request) {
	var n config.NotificationsConfig
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4<<10))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&n); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.store.SetNotifications(&n); err != nil {
		writeErr(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, h.store.Notifications())
}
