// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"archfolio/internal/cache"
	"archfolio/internal/models"
)

// TestimonialsList returns all testimonials.
func (a *API) TestimonialsList(w http.ResponseWriter, r *http.Request) {
	a.listCached(w, r, cache.KeyTestimonials, func() (any, error) {
		items, err := a.testimonials.List()
		if items == nil {
			items = []models.Testimonial{}
		}
		return items, err
	})
}

// TestimonialCreate inserts a new testimonial. Ratings outside the 0–5
// range are rejected before reaching the store.
func (a *API) TestimonialCreate(w http.ResponseWriter, r *http.Request) {
	var t models.Testimonial
	if !decodeJSON(w, r, &t) {
		return
	}
	if msg := validateTestimonial(&t); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	created, err := a.testimonials.Create(&t)
	if err != nil {
		slog.Error("create testimonial failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	a.cache.Invalidate(r.Context(), cache.KeyTestimonials)
	respondJSON(w, http.StatusCreated, created)
}

// TestimonialUpdate replaces an existing testimonial's fields.
func (a *API) TestimonialUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var t models.Testimonial
	if !decodeJSON(w, r, &t) {
		return
	}
	if msg := validateTestimonial(&t); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	t.ID = id

	matched, err := a.testimonials.Update(&t)
	if err != nil {
		slog.Error("update testimonial failed", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !matched {
		respondError(w, http.StatusNotFound, "testimonial not found")
		return
	}

	a.cache.Invalidate(r.Context(), cache.KeyTestimonials)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Testimonial updated successfully"})
}

// TestimonialDelete removes a testimonial by ID.
func (a *API) TestimonialDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	matched, err := a.testimonials.Delete(id)
	if err != nil {
		slog.Error("delete testimonial failed", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !matched {
		respondError(w, http.StatusNotFound, "testimonial not found")
		return
	}

	a.cache.Invalidate(r.Context(), cache.KeyTestimonials)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Testimonial deleted successfully"})
}
