// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"archfolio/internal/models"
)

// TestimonialStore manages testimonials in the database.
type TestimonialStore struct {
	db *sql.DB
}

// NewTestimonialStore returns a new TestimonialStore.
func NewTestimonialStore(db *sql.DB) *TestimonialStore {
	return &TestimonialStore{db: db}
}

const testimonialColumns = `id, name, company, role, content, image_url, rating`

// scanTestimonial scans a row into a Testimonial struct.
func scanTestimonial(scanner interface{ Scan(...any) error }) (*models.Testimonial, error) {
	var t models.Testimonial
	err := scanner.Scan(
		&t.ID, &t.Name, &t.Company, &t.Role,
		&t.Content, &t.ImageURL, &t.Rating,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all testimonials ordered by author name.
func (s *TestimonialStore) List() ([]models.Testimonial, error) {
	rows, err := s.db.Query(`SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	var items []models.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// FindByID retrieves a testimonial by ID. Returns nil if not found.
func (s *TestimonialStore) FindByID(id uuid.UUID) (*models.Testimonial, error) {
	row := s.db.QueryRow(`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id)
	t, err := scanTestimonial(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find testimonial by id: %w", err)
	}
	return t, nil
}

// Create inserts a new testimonial and returns it with the server-assigned ID.
func (s *TestimonialStore) Create(t *models.Testimonial) (*models.Testimonial, error) {
	row := s.db.QueryRow(`
		INSERT INTO testimonials (name, company, role, content, image_url, rating)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+testimonialColumns,
		t.Name, t.Company, t.Role, t.Content, t.ImageURL, t.Rating,
	)
	result, err := scanTestimonial(row)
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return result, nil
}

// Update modifies an existing testimonial. Returns false if no row matched.
func (s *TestimonialStore) Update(t *models.Testimonial) (bool, error) {
	res, err := s.db.Exec(`
		UPDATE testimonials SET
			name = $1, company = $2, role = $3, content = $4, image_url = $5, rating = $6
		WHERE id = $7`,
		t.Name, t.Company, t.Role, t.Content, t.ImageURL, t.Rating, t.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update testimonial: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update testimonial rows: %w", err)
	}
	return n > 0, nil
}

// Delete removes a testimonial by ID. Returns false if no row matched.
func (s *TestimonialStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete testimonial: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete testimonial rows: %w", err)
	}
	return n > 0, nil
}
