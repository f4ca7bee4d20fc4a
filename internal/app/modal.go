// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package app

import "archfolio/internal/models"

// ClickTarget distinguishes where inside an open overlay a click landed.
type ClickTarget int

const (
	// TargetBackdrop is the dimmed area around the modal panel.
	TargetBackdrop ClickTarget = iota
	// TargetContent is the modal panel itself; clicks here never close
	// the modal.
	TargetContent
)

// SelectProject opens the project modal. The blog post slot is untouched;
// the two selections are independent.
func (a *App) SelectProject(p models.Project) {
	a.state.SelectedProject = &p
}

// CloseProject clears the project selection slot.
func (a *App) CloseProject() {
	a.state.SelectedProject = nil
}

// ProjectModalOpen reports whether the project overlay is visible. The
// overlay's visibility is exactly "a project is selected".
func (a *App) ProjectModalOpen() bool {
	return a.state.SelectedProject != nil
}

// ClickProjectOverlay handles a click on the open project overlay: the
// backdrop closes it, the inner panel swallows the click.
func (a *App) ClickProjectOverlay(target ClickTarget) {
	if target == TargetBackdrop {
		a.CloseProject()
	}
}

// SelectPost opens the blog post modal, leaving the project slot untouched.
func (a *App) SelectPost(p models.BlogPost) {
	a.state.SelectedPost = &p
}

// ClosePost clears the blog post selection slot.
func (a *App) ClosePost() {
	a.state.SelectedPost = nil
}

// PostModalOpen reports whether the blog post overlay is visible.
func (a *App) PostModalOpen() bool {
	return a.state.SelectedPost != nil
}

// ClickPostOverlay handles a click on the open blog post overlay.
func (a *App) ClickPostOverlay(target ClickTarget) {
	if target == TargetBackdrop {
		a.ClosePost()
	}
}
