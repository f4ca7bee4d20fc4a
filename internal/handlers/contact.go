// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"archfolio/internal/models"
)

// ContactSubmit stores a contact form submission.
func (a *API) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	var m models.ContactMessage
	if !decodeJSON(w, r, &m) {
		return
	}
	if msg := validateContact(&m); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	if _, err := a.contacts.Create(&m); err != nil {
		slog.Error("create contact message failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "Contact form submitted successfully"})
}

// ContactsList returns all submitted contact messages, newest first.
// Contact messages are never cached; the collection is written far more
// often than it is read.
func (a *API) ContactsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.contacts.List()
	if err != nil {
		slog.Error("list contact messages failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if items == nil {
		items = []models.ContactMessage{}
	}
	respondJSON(w, http.StatusOK, items)
}
