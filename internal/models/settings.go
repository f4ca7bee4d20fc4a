// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the content entities served by the portfolio API:
// the site settings singleton, projects, blog posts, testimonials, and
// contact messages.
package models

// Settings holds the site owner's profile and contact details. There is
// exactly one Settings row at all times; it is never created or deleted
// through the API, only replaced in full.
type Settings struct {
	Name         string            `json:"name"`
	Title        string            `json:"title"`
	Bio          string            `json:"bio"`
	ProfileImage string            `json:"profile_image"`
	CVURL        string            `json:"cv_url"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	Location     string            `json:"location"`
	SocialLinks  map[string]string `json:"social_links"`
}
