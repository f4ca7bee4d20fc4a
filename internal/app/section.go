// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package app

// Section is one of the six selectable top-level content sections.
type Section string

const (
	SectionHome      Section = "home"
	SectionAbout     Section = "about"
	SectionPortfolio Section = "portfolio"
	SectionBlog      Section = "blog"
	SectionSkills    Section = "skills"
	SectionContact   Section = "contact"
)

// View is a renderable block of the page. Every section has a view of the
// same name; ViewTestimonials only ever appears inside the home flow and
// cannot be selected directly.
type View string

const (
	ViewHome         View = "home"
	ViewAbout        View = "about"
	ViewSkills       View = "skills"
	ViewPortfolio    View = "portfolio"
	ViewTestimonials View = "testimonials"
	ViewBlog         View = "blog"
	ViewContact      View = "contact"
)

// homeFlow is the fixed render order of the single-page-scroll landing:
// selecting home shows every view concatenated in this order.
var homeFlow = []View{
	ViewHome,
	ViewAbout,
	ViewSkills,
	ViewPortfolio,
	ViewTestimonials,
	ViewBlog,
	ViewContact,
}

// sectionViews maps each non-home section to its single view.
var sectionViews = map[Section]View{
	SectionAbout:     ViewAbout,
	SectionPortfolio: ViewPortfolio,
	SectionBlog:      ViewBlog,
	SectionSkills:    ViewSkills,
	SectionContact:   ViewContact,
}

// SelectSection activates a section. Selection is an idempotent overwrite:
// there are no automatic transitions and no history stack. Unknown values
// are ignored.
func (a *App) SelectSection(s Section) {
	if s == SectionHome {
		a.state.ActiveSection = s
		return
	}
	if _, ok := sectionViews[s]; ok {
		a.state.ActiveSection = s
	}
}

// VisibleViews returns the views to render for the active section. Home
// renders the entire page flow; every other section renders in isolation.
// The asymmetry is the deliberate single-page-scroll design of the landing.
func (a *App) VisibleViews() []View {
	if a.state.ActiveSection == SectionHome {
		views := make([]View, len(homeFlow))
		copy(views, homeFlow)
		return views
	}
	return []View{sectionViews[a.state.ActiveSection]}
}
