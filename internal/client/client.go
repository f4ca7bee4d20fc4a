// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package client provides a typed HTTP client for the portfolio content
// API. It is consumed by the public app core and the admin console.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"archfolio/internal/models"
)

// DefaultBaseURL is used when PORTFOLIO_API_URL is not set.
const DefaultBaseURL = "http://localhost:8001"

// Kind names a deletable collection on the API.
type Kind string

const (
	KindProjects     Kind = "projects"
	KindBlog         Kind = "blog"
	KindTestimonials Kind = "testimonials"
)

// APIError is returned for any non-2xx response, carrying the status code
// and the server's error body.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Body)
}

// Client talks to the portfolio content API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client using the PORTFOLIO_API_URL environment variable,
// falling back to the local development default.
func New() *Client {
	base := os.Getenv("PORTFOLIO_API_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return NewWithBaseURL(base)
}

// NewWithBaseURL creates a client against an explicit base URL.
func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Settings fetches the site settings singleton.
func (c *Client) Settings(ctx context.Context) (*models.Settings, error) {
	var st models.Settings
	if err := c.do(ctx, http.MethodGet, "/api/settings", nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// UpdateSettings replaces the settings singleton and returns the stored result.
func (c *Client) UpdateSettings(ctx context.Context, st *models.Settings) (*models.Settings, error) {
	var updated models.Settings
	if err := c.do(ctx, http.MethodPut, "/api/settings", st, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Projects fetches all portfolio projects.
func (c *Client) Projects(ctx context.Context) ([]models.Project, error) {
	var items []models.Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ProjectCategories fetches the distinct project category labels.
func (c *Client) ProjectCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/api/projects/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// BlogPosts fetches all blog posts.
func (c *Client) BlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	var items []models.BlogPost
	if err := c.do(ctx, http.MethodGet, "/api/blog", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Testimonials fetches all testimonials.
func (c *Client) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	var items []models.Testimonial
	if err := c.do(ctx, http.MethodGet, "/api/testimonials", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ContactMessages fetches all submitted contact messages, newest first.
func (c *Client) ContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	var items []models.ContactMessage
	if err := c.do(ctx, http.MethodGet, "/api/contacts", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SubmitContact sends a contact form submission.
func (c *Client) SubmitContact(ctx context.Context, m *models.ContactMessage) error {
	return c.do(ctx, http.MethodPost, "/api/contact", m, nil)
}

// Delete removes an item from one of the deletable collections.
func (c *Client) Delete(ctx context.Context, kind Kind, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/%s/%s", kind, id), nil, nil)
}

// do performs a JSON request against the API. A non-2xx status becomes an
// *APIError; out may be nil when the response body is not needed.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Body: string(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}
