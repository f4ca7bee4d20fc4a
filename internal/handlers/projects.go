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

// ProjectsList returns all projects.
func (a *API) ProjectsList(w http.ResponseWriter, r *http.Request) {
	a.listCached(w, r, cache.KeyProjects, func() (any, error) {
		items, err := a.projects.List()
		if items == nil {
			items = []models.Project{}
		}
		return items, err
	})
}

// ProjectCategories returns the distinct category labels across all projects.
// The "All" filter sentinel is a client-side concern and is not included here.
func (a *API) ProjectCategories(w http.ResponseWriter, r *http.Request) {
	a.listCached(w, r, cache.KeyCategories, func() (any, error) {
		categories, err := a.projects.Categories()
		if categories == nil {
			categories = []string{}
		}
		return categories, err
	})
}

// ProjectGet returns a single project by ID.
func (a *API) ProjectGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := a.projects.FindByID(id)
	if err != nil {
		slog.Error("find project failed", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// ProjectCreate inserts a new project. The ID is always server-assigned;
// any id in the request body is ignored.
func (a *API) ProjectCreate(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if !decodeJSON(w, r, &p) {
		return
	}
	if msg := validateProject(&p); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	created, err := a.projects.Create(&p)
	if err != nil {
		slog.Error("create project failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	a.cache.Invalidate(r.Context(), cache.KeyProjects, cache.KeyCategories)
	respondJSON(w, http.StatusCreated, created)
}

// ProjectUpdate replaces an existing project's fields.
func (a *API) ProjectUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var p models.Project
	if !decodeJSON(w, r, &p) {
		return
	}
	if msg := validateProject(&p); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	p.ID = id

	matched, err := a.projects.Update(&p)
	if err != nil {
		slog.Error("update project failed", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !matched {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}

	a.cache.Invalidate(r.Context(), cache.KeyProjects, cache.KeyCategories)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Project updated successfully"})
}

// ProjectDelete removes a project by ID.
func (a *API) ProjectDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	matched, err := a.projects.Delete(id)
	if err != nil {
		slog.Error("delete project failed", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !matched {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}

	a.cache.Invalidate(r.Context(), cache.KeyProjects, cache.KeyCategories)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}
