// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "github.com/google/uuid"

// Rating bounds for testimonials. The rating renders as a fixed-length
// star row, so values outside this range are rejected on write.
const (
	MinRating = 0
	MaxRating = 5
)

// Testimonial is a client quote shown on the public site.
type Testimonial struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Company  string    `json:"company"`
	Role     string    `json:"role"`
	Content  string    `json:"content"`
	ImageURL string    `json:"image_url"`
	Rating   int       `json:"rating"`
}
