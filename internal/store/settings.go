// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides the persistence layer: one store per content
// collection, all backed by PostgreSQL through database/sql.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"archfolio/internal/models"
)

// SettingsStore manages the site settings singleton.
type SettingsStore struct {
	db *sql.DB
}

// NewSettingsStore returns a new SettingsStore backed by the given database.
func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get returns the settings singleton. Returns nil if no row exists yet.
func (s *SettingsStore) Get() (*models.Settings, error) {
	row := s.db.QueryRow(`
		SELECT name, title, bio, profile_image, cv_url, email, phone, location, social_links
		FROM settings WHERE id = 1`)

	var st models.Settings
	var links []byte
	err := row.Scan(
		&st.Name, &st.Title, &st.Bio, &st.ProfileImage,
		&st.CVURL, &st.Email, &st.Phone, &st.Location, &links,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	if err := json.Unmarshal(links, &st.SocialLinks); err != nil {
		return nil, fmt.Errorf("decode social links: %w", err)
	}
	return &st, nil
}

// Replace upserts the singleton row with a full replacement of every field.
// Settings are never partially patched.
func (s *SettingsStore) Replace(st *models.Settings) error {
	links, err := json.Marshal(st.SocialLinks)
	if err != nil {
		return fmt.Errorf("encode social links: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO settings (id, name, title, bio, profile_image, cv_url, email, phone, location, social_links, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			title = EXCLUDED.title,
			bio = EXCLUDED.bio,
			profile_image = EXCLUDED.profile_image,
			cv_url = EXCLUDED.cv_url,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			social_links = EXCLUDED.social_links,
			updated_at = EXCLUDED.updated_at`,
		st.Name, st.Title, st.Bio, st.ProfileImage,
		st.CVURL, st.Email, st.Phone, st.Location, links,
	)
	if err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}
