// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package app

import (
	"testing"

	"archfolio/internal/models"
)

func sampleProjects() []models.Project {
	return []models.Project{
		{Title: "Living Room", Category: "Interior Design"},
		{Title: "Villa", Category: "Exterior Design"},
		{Title: "Office", Category: "Interior Design"},
	}
}

func TestVisibleProjects_AllIsIdentity(t *testing.T) {
	projects := sampleProjects()
	got := VisibleProjects(projects, AllCategories)
	if len(got) != len(projects) {
		t.Fatalf("got %d projects, want %d", len(got), len(projects))
	}
	for i := range projects {
		if got[i].Title != projects[i].Title {
			t.Errorf("project[%d]: got %q, want %q", i, got[i].Title, projects[i].Title)
		}
	}
}

func TestVisibleProjects_FiltersByCategory(t *testing.T) {
	got := VisibleProjects(sampleProjects(), "Interior Design")
	if len(got) != 2 {
		t.Fatalf("got %d projects, want 2", len(got))
	}
	for _, p := range got {
		if p.Category != "Interior Design" {
			t.Errorf("project %q has category %q", p.Title, p.Category)
		}
	}
}

func TestVisibleProjects_IsAlwaysSubset(t *testing.T) {
	projects := sampleProjects()
	titles := map[string]bool{}
	for _, p := range projects {
		titles[p.Title] = true
	}

	for _, filter := range []string{AllCategories, "Interior Design", "Exterior Design", "No Such Category"} {
		for _, p := range VisibleProjects(projects, filter) {
			if !titles[p.Title] {
				t.Errorf("filter %q produced project %q not in the input", filter, p.Title)
			}
		}
	}
}

func TestVisibleProjects_UnknownCategoryIsEmpty(t *testing.T) {
	if got := VisibleProjects(sampleProjects(), "Landscape"); len(got) != 0 {
		t.Errorf("got %d projects for unknown category, want 0", len(got))
	}
}

func TestFilterOptions_ComposesSentinelWithDistinct(t *testing.T) {
	got := FilterOptions([]string{"Exterior Design", "Interior Design"})
	want := []string{"All", "Exterior Design", "Interior Design"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("option[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilterOptions_DeduplicatesAndGuardsSentinel(t *testing.T) {
	// A project category literally named "All" must not produce a second
	// sentinel entry, and server duplicates collapse.
	got := FilterOptions([]string{"All", "Interior Design", "Interior Design"})
	want := []string{"All", "Interior Design"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFilterOptions_EmptyInput(t *testing.T) {
	got := FilterOptions(nil)
	if len(got) != 1 || got[0] != AllCategories {
		t.Errorf("got %v, want [All]", got)
	}
}
