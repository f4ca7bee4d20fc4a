// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package app implements the public site's state core: a session-scoped
// mirror of the remote collections, the category filter, the modal
// selection slots, and the section router. All state lives in a single
// State record owned by the App controller; mutations go through named
// methods so the data flow stays testable.
package app

import (
	"archfolio/internal/client"
	"archfolio/internal/models"
)

// AllCategories is the sentinel filter option that shows every project.
// It is injected client-side; the API only ever returns real labels.
const AllCategories = "All"

// State is the complete application state of the public site.
type State struct {
	Settings     models.Settings
	Projects     []models.Project
	BlogPosts    []models.BlogPost
	Testimonials []models.Testimonial

	// CategoryOptions is always {"All"} followed by the distinct project
	// categories, recomputed whenever the project collection changes.
	CategoryOptions []string

	ActiveSection Section
	ActiveFilter  string

	// Independent modal slots. Both may be open at once; at most one of
	// each kind.
	SelectedProject *models.Project
	SelectedPost    *models.BlogPost

	ContactForm ContactForm
}

// App owns the State and the API client used to populate it.
type App struct {
	api   *client.Client
	state State
}

// New creates an App in its initial state: home section, "All" filter,
// empty collections.
func New(api *client.Client) *App {
	return &App{
		api: api,
		state: State{
			ActiveSection:   SectionHome,
			ActiveFilter:    AllCategories,
			CategoryOptions: []string{AllCategories},
		},
	}
}

// State returns a copy of the current application state.
func (a *App) State() State {
	return a.state
}

// FilterOptions composes the filter option list from the server's distinct
// category labels: the "All" sentinel first, then each label in order,
// skipping duplicates and any label that collides with the sentinel.
func FilterOptions(categories []string) []string {
	options := []string{AllCategories}
	seen := map[string]bool{AllCategories: true}
	for _, c := range categories {
		if seen[c] {
			continue
		}
		seen[c] = true
		options = append(options, c)
	}
	return options
}
