// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"archfolio/internal/models"
)

// ProjectStore manages portfolio projects in the database.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore returns a new ProjectStore.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

const projectColumns = `id, title, description, category, image_url, gallery_images, software_used, created_at`

// scanProject scans a row into a Project, decoding the JSONB sequence columns.
func scanProject(scanner interface{ Scan(...any) error }) (*models.Project, error) {
	var p models.Project
	var gallery, software []byte
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Description, &p.Category,
		&p.ImageURL, &gallery, &software, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(gallery, &p.GalleryImages); err != nil {
		return nil, fmt.Errorf("decode gallery images: %w", err)
	}
	if err := json.Unmarshal(software, &p.SoftwareUsed); err != nil {
		return nil, fmt.Errorf("decode software used: %w", err)
	}
	return &p, nil
}

// List returns all projects, newest first.
func (s *ProjectStore) List() ([]models.Project, error) {
	rows, err := s.db.Query(`SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var items []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// Categories returns the distinct category labels across all projects.
func (s *ProjectStore) Categories() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT category FROM projects ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list project categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// FindByID retrieves a project by ID. Returns nil if not found.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	row := s.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	return p, nil
}

// Create inserts a new project and returns it with the server-assigned ID.
func (s *ProjectStore) Create(p *models.Project) (*models.Project, error) {
	gallery, software, err := encodeProjectLists(p)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`
		INSERT INTO projects (title, description, category, image_url, gallery_images, software_used)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+projectColumns,
		p.Title, p.Description, p.Category, p.ImageURL, gallery, software,
	)
	result, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return result, nil
}

// Update modifies an existing project. Returns false if no row matched.
func (s *ProjectStore) Update(p *models.Project) (bool, error) {
	gallery, software, err := encodeProjectLists(p)
	if err != nil {
		return false, err
	}

	res, err := s.db.Exec(`
		UPDATE projects SET
			title = $1, description = $2, category = $3, image_url = $4,
			gallery_images = $5, software_used = $6
		WHERE id = $7`,
		p.Title, p.Description, p.Category, p.ImageURL, gallery, software, p.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update project rows: %w", err)
	}
	return n > 0, nil
}

// Delete removes a project by ID. Returns false if no row matched.
func (s *ProjectStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete project rows: %w", err)
	}
	return n > 0, nil
}

// encodeProjectLists marshals the sequence fields for storage, treating nil
// slices as empty so the columns never hold JSON null.
func encodeProjectLists(p *models.Project) (gallery, software []byte, err error) {
	gallery, err = json.Marshal(emptyIfNil(p.GalleryImages))
	if err != nil {
		return nil, nil, fmt.Errorf("encode gallery images: %w", err)
	}
	software, err = json.Marshal(emptyIfNil(p.SoftwareUsed))
	if err != nil {
		return nil, nil, fmt.Errorf("encode software used: %w", err)
	}
	return gallery, software, nil
}

// emptyIfNil normalizes a nil slice to an empty one.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
