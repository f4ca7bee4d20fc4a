// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package admin implements the administration console's state: its own
// snapshot of the four content collections, settings editing with transient
// feedback messages, and confirm-gated deletion followed by a full reload.
//
// Two safeguards go beyond the bare CRUD contract: all mutations serialize
// through a single mutex so two in-flight writes can never race, and every
// reload carries a sequence token so a superseded response cannot overwrite
// newer state.
package admin

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"archfolio/internal/client"
	"archfolio/internal/models"
)

// MessageTTL is how long a transient feedback message stays visible.
const MessageTTL = 3 * time.Second

// Confirmer asks the operator to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a plain function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

// Confirm calls f.
func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// Console holds the admin panel's state. It fetches the collections
// independently of the public app and never shares its cache.
type Console struct {
	api     *client.Client
	confirm Confirmer

	// after schedules the auto-clear of transient messages. Swappable in
	// tests so they never sleep.
	after func(d time.Duration, f func()) *time.Timer

	// mutMu serializes mutations: at most one settings update or delete
	// is in flight at any time.
	mutMu sync.Mutex

	// mu guards everything below.
	mu       sync.Mutex
	loadSeq  uint64
	msgSeq   uint64
	loading  bool
	settings *models.Settings

	projects     []models.Project
	blogPosts    []models.BlogPost
	testimonials []models.Testimonial
	inbox        []models.ContactMessage

	message    string
	messageErr bool
}

// New creates a Console. The confirmer gates every delete; a nil confirmer
// declines everything, which keeps an accidental wiring mistake safe.
func New(api *client.Client, confirm Confirmer) *Console {
	if confirm == nil {
		confirm = ConfirmerFunc(func(string) bool { return false })
	}
	return &Console{
		api:     api,
		confirm: confirm,
		after:   time.AfterFunc,
	}
}

// Refresh fetches all four collections concurrently and replaces the local
// snapshot when every read succeeds. The loading flag is set for the
// duration so the console can gate its content area. If another Refresh
// started in the meantime, this one's results are discarded.
func (c *Console) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.loadSeq++
	token := c.loadSeq
	c.loading = true
	c.mu.Unlock()

	var (
		settings     *models.Settings
		projects     []models.Project
		posts        []models.BlogPost
		testimonials []models.Testimonial
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		settings, err = c.api.Settings(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = c.api.Projects(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = c.api.BlogPosts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		testimonials, err = c.api.Testimonials(ctx)
		return err
	})
	err := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.loadSeq {
		// A newer Refresh owns the state now; drop this response.
		slog.Debug("discarding superseded refresh", "token", token, "current", c.loadSeq)
		return nil
	}
	c.loading = false

	if err != nil {
		slog.Error("admin refresh failed", "error", err)
		return fmt.Errorf("refresh admin data: %w", err)
	}

	c.settings = settings
	c.projects = projects
	c.blogPosts = posts
	c.testimonials = testimonials
	return nil
}

// UpdateSettings replaces the site settings. On success the local settings
// snapshot takes the server's result and a transient confirmation shows;
// on failure the snapshot is untouched and a transient error shows.
func (c *Console) UpdateSettings(ctx context.Context, st *models.Settings) error {
	c.mutMu.Lock()
	defer c.mutMu.Unlock()

	updated, err := c.api.UpdateSettings(ctx, st)
	if err != nil {
		slog.Error("settings update failed", "error", err)
		c.setMessage("Failed to update settings. Please try again.", true)
		return fmt.Errorf("update settings: %w", err)
	}

	c.mu.Lock()
	c.settings = updated
	c.mu.Unlock()

	c.setMessage("Settings updated successfully.", false)
	return nil
}

// DeleteItem deletes one item from a collection after operator
// confirmation. Declining the prompt issues no request at all. A confirmed
// delete is followed by an unconditional reload of all four collections —
// full refetch is the console's consistency mechanism.
func (c *Console) DeleteItem(ctx context.Context, kind client.Kind, id uuid.UUID) error {
	if !c.confirm.Confirm(fmt.Sprintf("Delete this item from %s?", kind)) {
		return nil
	}

	c.mutMu.Lock()
	err := c.api.Delete(ctx, kind, id)
	c.mutMu.Unlock()

	if err != nil {
		slog.Error("delete failed", "kind", kind, "id", id, "error", err)
		c.setMessage("Failed to delete item. Please try again.", true)
		return fmt.Errorf("delete %s/%s: %w", kind, id, err)
	}

	if err := c.Refresh(ctx); err != nil {
		c.setMessage("Item deleted, but reloading data failed.", true)
		return err
	}

	c.setMessage("Item deleted successfully.", false)
	return nil
}

// setMessage publishes a transient feedback message that clears itself
// after MessageTTL unless a newer message replaced it first.
func (c *Console) setMessage(msg string, isErr bool) {
	c.mu.Lock()
	c.msgSeq++
	token := c.msgSeq
	c.message = msg
	c.messageErr = isErr
	c.mu.Unlock()

	c.after(MessageTTL, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if token == c.msgSeq {
			c.message = ""
			c.messageErr = false
		}
	})
}

// Loading reports whether a refresh is in flight.
func (c *Console) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Message returns the current transient message and whether it is an error.
func (c *Console) Message() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message, c.messageErr
}

// Settings returns the last successfully fetched settings, or nil before
// the first refresh. The settings form pre-populates from this value.
func (c *Console) Settings() *models.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// Projects returns the current project snapshot.
func (c *Console) Projects() []models.Project {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projects
}

// BlogPosts returns the current blog post snapshot.
func (c *Console) BlogPosts() []models.BlogPost {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.blogPosts
}

// Testimonials returns the current testimonial snapshot.
func (c *Console) Testimonials() []models.Testimonial {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.testimonials
}
