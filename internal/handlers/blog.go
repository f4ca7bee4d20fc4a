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

// BlogList returns all blog posts, newest first.
func (a *API) BlogList(w http.ResponseWriter, r *http.Request) {
	a.listCached(w, r, cache.KeyBlog, func() (any, error) {
		items, err := a.blog.List()
		if items == nil {
			items = []models.BlogPost{}
		}
		return items, err
	})
}

// BlogGet returns a single blog post by ID.
func (a *API) BlogGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	b, err := a.blog.FindByID(id)
	if err != nil {
		slog.Error("find blog post failed", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if b == nil {
		respondError(w, http.StatusNotFound, "blog post not found")
		return
	}
	respondJSON(w, http.StatusOK, b)
}

// BlogCreate inserts a new blog post with a server-assigned ID and publish
// timestamp.
func (a *API) BlogCreate(w http.ResponseWriter, r *http.Request) {
	var b models.BlogPost
	if !decodeJSON(w, r, &b) {
		return
	}
	if msg := validateBlogPost(&b); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	created, err := a.blog.Create(&b)
	if err != nil {
		slog.Error("create blog post failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	a.cache.Invalidate(r.Context(), cache.KeyBlog)
	respondJSON(w, http.StatusCreated, created)
}

// BlogUpdate replaces an existing blog post's fields.
func (a *API) BlogUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var b models.BlogPost
	if !decodeJSON(w, r, &b) {
		return
	}
	if msg := validateBlogPost(&b); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	b.ID = id

	matched, err := a.blog.Update(&b)
	if err != nil {
		slog.Error("update blog post failed", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !matched {
		respondError(w, http.StatusNotFound, "blog post not found")
		return
	}

	a.cache.Invalidate(r.Context(), cache.KeyBlog)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Blog post updated successfully"})
}

// BlogDelete removes a blog post by ID.
func (a *API) BlogDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	matched, err := a.blog.Delete(id)
	if err != nil {
		slog.Error("delete blog post failed", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !matched {
		respondError(w, http.StatusNotFound, "blog post not found")
		return
	}

	a.cache.Invalidate(r.Context(), cache.KeyBlog)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Blog post deleted successfully"})
}
