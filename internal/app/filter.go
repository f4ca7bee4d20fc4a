// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package app

import "archfolio/internal/models"

// VisibleProjects derives the filtered project view. The "All" sentinel is
// the identity filter; any other value keeps only projects whose category
// matches exactly. Pure function — callers recompute it on every render.
func VisibleProjects(projects []models.Project, filter string) []models.Project {
	if filter == AllCategories {
		return projects
	}
	var visible []models.Project
	for _, p := range projects {
		if p.Category == filter {
			visible = append(visible, p)
		}
	}
	return visible
}

// SetFilter selects the active category filter. The filter persists across
// data reloads until changed again.
func (a *App) SetFilter(category string) {
	a.state.ActiveFilter = category
}

// VisibleProjects returns the project list under the active filter.
func (a *App) VisibleProjects() []models.Project {
	return VisibleProjects(a.state.Projects, a.state.ActiveFilter)
}
