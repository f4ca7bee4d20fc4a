// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package app

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"archfolio/internal/models"
)

// LoadAll fetches settings, projects, blog posts, testimonials, and the
// category list concurrently and applies them to the state only when all
// five reads succeed. On any failure the prior state is kept untouched —
// the collections either update together or not at all.
//
// The active filter and section survive a reload; only the data and the
// derived category options change.
func (a *App) LoadAll(ctx context.Context) error {
	var (
		settings     *models.Settings
		projects     []models.Project
		posts        []models.BlogPost
		testimonials []models.Testimonial
		categories   []string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		settings, err = a.api.Settings(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = a.api.Projects(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = a.api.BlogPosts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		testimonials, err = a.api.Testimonials(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = a.api.ProjectCategories(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("loading site data failed", "error", err)
		return fmt.Errorf("load site data: %w", err)
	}

	a.state.Settings = *settings
	a.state.Projects = projects
	a.state.BlogPosts = posts
	a.state.Testimonials = testimonials
	a.state.CategoryOptions = FilterOptions(categories)
	return nil
}
