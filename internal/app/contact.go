// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package app

import (
	"context"
	"fmt"
	"log/slog"

	"archfolio/internal/models"
)

// ContactForm holds the contact section's form fields and submission state.
type ContactForm struct {
	Name       string
	Email      string
	Message    string
	Submitting bool
}

// SetContactFields updates the contact form fields.
func (a *App) SetContactFields(name, email, message string) {
	a.state.ContactForm.Name = name
	a.state.ContactForm.Email = email
	a.state.ContactForm.Message = message
}

// SubmitContact sends the contact form. The fields are cleared only on a
// confirmed 2xx response; a failure leaves them intact so the visitor can
// resubmit without retyping. A submission already in flight is rejected.
func (a *App) SubmitContact(ctx context.Context) error {
	form := &a.state.ContactForm
	if form.Submitting {
		return fmt.Errorf("contact submission already in progress")
	}

	form.Submitting = true
	defer func() { form.Submitting = false }()

	err := a.api.SubmitContact(ctx, &models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	})
	if err != nil {
		slog.Error("contact submission failed", "error", err)
		return fmt.Errorf("submit contact: %w", err)
	}

	form.Name = ""
	form.Email = ""
	form.Message = ""
	return nil
}
