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

// BlogStore manages blog posts in the database.
type BlogStore struct {
	db *sql.DB
}

// NewBlogStore returns a new BlogStore.
func NewBlogStore(db *sql.DB) *BlogStore {
	return &BlogStore{db: db}
}

const blogColumns = `id, title, content, excerpt, image_url, category, tags, published_at, read_time`

// scanBlogPost scans a row into a BlogPost, decoding the JSONB tags column.
func scanBlogPost(scanner interface{ Scan(...any) error }) (*models.BlogPost, error) {
	var b models.BlogPost
	var tags []byte
	err := scanner.Scan(
		&b.ID, &b.Title, &b.Content, &b.Excerpt, &b.ImageURL,
		&b.Category, &tags, &b.PublishedAt, &b.ReadTime,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &b.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	return &b, nil
}

// List returns all blog posts, newest first.
func (s *BlogStore) List() ([]models.BlogPost, error) {
	rows, err := s.db.Query(`SELECT ` + blogColumns + ` FROM blog_posts ORDER BY published_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var items []models.BlogPost
	for rows.Next() {
		b, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// FindByID retrieves a blog post by ID. Returns nil if not found.
func (s *BlogStore) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	row := s.db.QueryRow(`SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id)
	b, err := scanBlogPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog post by id: %w", err)
	}
	return b, nil
}

// Create inserts a new blog post and returns it with the server-assigned ID
// and publish timestamp.
func (s *BlogStore) Create(b *models.BlogPost) (*models.BlogPost, error) {
	tags, err := json.Marshal(emptyIfNil(b.Tags))
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}

	readTime := b.ReadTime
	if readTime == 0 {
		readTime = 5
	}

	row := s.db.QueryRow(`
		INSERT INTO blog_posts (title, content, excerpt, image_url, category, tags, read_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+blogColumns,
		b.Title, b.Content, b.Excerpt, b.ImageURL, b.Category, tags, readTime,
	)
	result, err := scanBlogPost(row)
	if err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	return result, nil
}

// Update modifies an existing blog post. Returns false if no row matched.
func (s *BlogStore) Update(b *models.BlogPost) (bool, error) {
	tags, err := json.Marshal(emptyIfNil(b.Tags))
	if err != nil {
		return false, fmt.Errorf("encode tags: %w", err)
	}

	res, err := s.db.Exec(`
		UPDATE blog_posts SET
			title = $1, content = $2, excerpt = $3, image_url = $4,
			category = $5, tags = $6, read_time = $7
		WHERE id = $8`,
		b.Title, b.Content, b.Excerpt, b.ImageURL, b.Category, tags, b.ReadTime, b.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update blog post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update blog post rows: %w", err)
	}
	return n > 0, nil
}

// Delete removes a blog post by ID. Returns false if no row matched.
func (s *BlogStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete blog post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete blog post rows: %w", err)
	}
	return n > 0, nil
}
