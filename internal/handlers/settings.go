// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"archfolio/internal/cache"
	"archfolio/internal/models"
)

// SettingsGet returns the site settings singleton. The encoded response is
// cached like the list endpoints; a miss stores the payload so the next read
// skips the database.
func (a *API) SettingsGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if payload, ok := a.cache.Get(ctx, cache.KeySettings); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(payload)
		return
	}

	st, err := a.settings.Get()
	if err != nil {
		slog.Error("get settings failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if st == nil {
		respondError(w, http.StatusNotFound, "settings not found")
		return
	}

	payload, err := json.Marshal(st)
	if err != nil {
		slog.Error("encode settings failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	a.cache.Set(ctx, cache.KeySettings, payload)
	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// SettingsUpdate replaces the settings singleton in full and returns the
// stored result. The upsert means a missing row never fails the replace.
func (a *API) SettingsUpdate(w http.ResponseWriter, r *http.Request) {
	var st models.Settings
	if !decodeJSON(w, r, &st) {
		return
	}
	if msg := validateSettings(&st); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	if st.SocialLinks == nil {
		st.SocialLinks = map[string]string{}
	}

	if err := a.settings.Replace(&st); err != nil {
		slog.Error("replace settings failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	a.cache.Invalidate(r.Context(), cache.KeySettings)
	respondJSON(w, http.StatusOK, &st)
}
