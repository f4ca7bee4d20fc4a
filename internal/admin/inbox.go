// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package admin

import (
	"context"
	"fmt"
	"log/slog"

	"archfolio/internal/models"
)

// LoadInbox fetches the contact message inbox. It is loaded on demand
// rather than with Refresh: the inbox is not one of the four content
// collections and no mutation ever touches it.
func (c *Console) LoadInbox(ctx context.Context) error {
	items, err := c.api.ContactMessages(ctx)
	if err != nil {
		slog.Error("loading contact inbox failed", "error", err)
		return fmt.Errorf("load inbox: %w", err)
	}

	c.mu.Lock()
	c.inbox = items
	c.mu.Unlock()
	return nil
}

// Inbox returns the last loaded contact messages.
func (c *Console) Inbox() []models.ContactMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inbox
}
