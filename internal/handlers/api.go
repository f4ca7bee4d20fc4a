// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON REST API for the portfolio content
// service. Handlers check the Valkey collection cache before hitting the
// database and invalidate the affected keys on every mutation.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"archfolio/internal/cache"
	"archfolio/internal/store"
)

// API groups the content endpoints with their store and cache dependencies.
// The cache may be nil when Valkey is not configured; every read then goes
// straight to the database.
type API struct {
	settings     *store.SettingsStore
	projects     *store.ProjectStore
	blog         *store.BlogStore
	testimonials *store.TestimonialStore
	contacts     *store.ContactStore
	cache        *cache.CollectionCache
}

// NewAPI creates the API handler group.
func NewAPI(
	settings *store.SettingsStore,
	projects *store.ProjectStore,
	blog *store.BlogStore,
	testimonials *store.TestimonialStore,
	contacts *store.ContactStore,
	cc *cache.CollectionCache,
) *API {
	return &API{
		settings:     settings,
		projects:     projects,
		blog:         blog,
		testimonials: testimonials,
		contacts:     contacts,
		cache:        cc,
	}
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		slog.Error("encode response failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// respondError writes a JSON error body with the given status.
func respondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// decodeJSON reads the request body into v. On failure it writes a 400
// response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// pathID parses the {id} URL parameter as a UUID. On failure it writes a
// 404 response and returns false — a malformed id can never match a row.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}

// listCached serves a list endpoint through the collection cache: a cache
// hit writes the stored payload verbatim; a miss loads from the store,
// caches the encoded result, and writes it.
func (a *API) listCached(w http.ResponseWriter, r *http.Request, key string, load func() (any, error)) {
	ctx := r.Context()

	if payload, ok := a.cache.Get(ctx, key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(payload)
		return
	}

	v, err := load()
	if err != nil {
		slog.Error("list collection failed", "collection", key, "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	payload, err := json.Marshal(v)
	if err != nil {
		slog.Error("encode collection failed", "collection", key, "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	a.cache.Set(ctx, key, payload)
	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}
