package handlers

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"archfolio/internal/models"
)

// Validation limits for content fields.
const (
	maxTitleLen   = 300
	maxTextLen    = 10_000
	maxContentLen = 100_000
	maxNameLen    = 200
	maxEmailLen   = 320
)

// validateProject checks a project payload and returns the first error found.
func validateProject(p *models.Project) string {
	if strings.TrimSpace(p.Title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(p.Title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if strings.TrimSpace(p.Description) == "" {
		return "Description is required."
	}
	if utf8.RuneCountInString(p.Description) > maxTextLen {
		return "Description is too long (max 10,000 characters)."
	}
	if strings.TrimSpace(p.Category) == "" {
		return "Category is required."
	}
	if strings.TrimSpace(p.ImageURL) == "" {
		return "Image URL is required."
	}
	return ""
}

// validateBlogPost checks a blog post payload and returns the first error found.
func validateBlogPost(b *models.BlogPost) string {
	if strings.TrimSpace(b.Title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(b.Title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if strings.TrimSpace(b.Content) == "" {
		return "Content is required."
	}
	if utf8.RuneCountInString(b.Content) > maxContentLen {
		return "Content is too long (max 100,000 characters)."
	}
	if b.ReadTime < 0 {
		return "Read time must not be negative."
	}
	return ""
}

// validateTestimonial checks a testimonial payload and returns the first
// error found. The rating bound is enforced here: it renders as a
// fixed-length star row, so out-of-range values must never be stored.
func validateTestimonial(t *models.Testimonial) string {
	if strings.TrimSpace(t.Name) == "" {
		return "Name is required."
	}
	if strings.TrimSpace(t.Content) == "" {
		return "Content is required."
	}
	if t.Rating < models.MinRating || t.Rating > models.MaxRating {
		return fmt.Sprintf("Rating must be between %d and %d.", models.MinRating, models.MaxRating)
	}
	return ""
}

// validateContact checks a contact form submission and returns the first
// error found.
func validateContact(m *models.ContactMessage) string {
	if strings.TrimSpace(m.Name) == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(m.Name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	email := strings.TrimSpace(m.Email)
	if email == "" {
		return "Email is required."
	}
	if utf8.RuneCountInString(email) > maxEmailLen || !strings.Contains(email, "@") {
		return "Email address is not valid."
	}
	if strings.TrimSpace(m.Message) == "" {
		return "Message is required."
	}
	if utf8.RuneCountInString(m.Message) > maxTextLen {
		return "Message is too long (max 10,000 characters)."
	}
	return ""
}

// validateSettings checks a settings replacement and returns the first
// error found.
func validateSettings(s *models.Settings) string {
	if strings.TrimSpace(s.Name) == "" {
		return "Name is required."
	}
	if strings.TrimSpace(s.Title) == "" {
		return "Title is required."
	}
	email := strings.TrimSpace(s.Email)
	if email == "" {
		return "Email is required."
	}
	if !strings.Contains(email, "@") {
		return "Email address is not valid."
	}
	return ""
}
