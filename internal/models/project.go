// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a single portfolio entry. The Category label is free text;
// the set of distinct categories across all projects drives the public
// site's filter options.
type Project struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	ImageURL      string    `json:"image_url"`
	GalleryImages []string  `json:"gallery_images"`
	SoftwareUsed  []string  `json:"software_used"`
	CreatedAt     time.Time `json:"created_at"`
}
