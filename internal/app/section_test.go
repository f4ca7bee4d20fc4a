// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package app

import "testing"

func TestInitialSectionIsHome(t *testing.T) {
	a := New(nil)
	if got := a.State().ActiveSection; got != SectionHome {
		t.Errorf("initial section: got %q, want %q", got, SectionHome)
	}
}

func TestHomeRendersFullFlowInOrder(t *testing.T) {
	a := New(nil)
	want := []View{ViewHome, ViewAbout, ViewSkills, ViewPortfolio, ViewTestimonials, ViewBlog, ViewContact}

	got := a.VisibleViews()
	if len(got) != len(want) {
		t.Fatalf("home views: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("view[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNonHomeSectionsRenderInIsolation(t *testing.T) {
	cases := map[Section]View{
		SectionAbout:     ViewAbout,
		SectionPortfolio: ViewPortfolio,
		SectionBlog:      ViewBlog,
		SectionSkills:    ViewSkills,
		SectionContact:   ViewContact,
	}

	for section, view := range cases {
		a := New(nil)
		a.SelectSection(section)
		got := a.VisibleViews()
		if len(got) != 1 {
			t.Errorf("%s: got %d views, want exactly 1", section, len(got))
			continue
		}
		if got[0] != view {
			t.Errorf("%s: got view %q, want %q", section, got[0], view)
		}
	}
}

func TestSelectSectionIsIdempotent(t *testing.T) {
	a := New(nil)
	a.SelectSection(SectionBlog)
	a.SelectSection(SectionBlog)
	if got := a.State().ActiveSection; got != SectionBlog {
		t.Errorf("section: got %q, want %q", got, SectionBlog)
	}

	a.SelectSection(SectionHome)
	if got := a.State().ActiveSection; got != SectionHome {
		t.Errorf("section: got %q, want %q", got, SectionHome)
	}
}

func TestSelectSectionIgnoresUnknownValues(t *testing.T) {
	a := New(nil)
	a.SelectSection(SectionPortfolio)
	a.SelectSection(Section("testimonials")) // a view, not a selectable section
	if got := a.State().ActiveSection; got != SectionPortfolio {
		t.Errorf("section: got %q, want %q", got, SectionPortfolio)
	}
}
