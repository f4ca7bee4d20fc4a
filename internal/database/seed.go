// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Seed populates the database with the default site settings and sample
// content. Each collection is seeded independently and only when empty,
// so rerunning Seed never duplicates data.
func Seed(db *sql.DB) error {
	if err := seedSettings(db); err != nil {
		return err
	}
	if err := seedProjects(db); err != nil {
		return err
	}
	if err := seedBlogPosts(db); err != nil {
		return err
	}
	if err := seedTestimonials(db); err != nil {
		return err
	}
	return nil
}

// seedSettings inserts the settings singleton if it does not exist yet.
func seedSettings(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM settings").Scan(&count); err != nil {
		return fmt.Errorf("seed check settings: %w", err)
	}
	if count > 0 {
		return nil
	}

	links, _ := json.Marshal(map[string]string{
		"linkedin":  "https://linkedin.com/in/rabiul-hasan",
		"behance":   "https://behance.net/rabiul-hasan",
		"instagram": "https://instagram.com/rabiul.archviz",
		"facebook":  "https://facebook.com/rabiul.hasan",
	})

	_, err := db.Exec(`
		INSERT INTO settings (name, title, bio, profile_image, cv_url, email, phone, location, social_links)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		"Rabiul Hasan",
		"Architectural Visualizer | AI Enthusiast",
		"Creative and detail-oriented Architectural Visualizer with a Diploma in Civil Engineering. Passionate about leveraging technology and AI to create stunning and realistic architectural representations.",
		"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
		"/downloads/cv.pdf",
		"rabiul.hasan@example.com",
		"+880 1234 567890",
		"Dhaka, Bangladesh",
		links,
	)
	if err != nil {
		return fmt.Errorf("seed insert settings: %w", err)
	}

	slog.Info("database seeded with default settings")
	return nil
}

// seedProjects inserts sample portfolio projects when the table is empty.
func seedProjects(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM projects").Scan(&count); err != nil {
		return fmt.Errorf("seed check projects: %w", err)
	}
	if count > 0 {
		return nil
	}

	type sample struct {
		title, description, category, imageURL string
		gallery, software                      []string
	}

	samples := []sample{
		{
			title:       "Cozy Living Room",
			description: "An interior design visualization for a cozy and inviting living space. The project focuses on warm lighting, comfortable furniture, and a harmonious color palette.",
			category:    "Interior Design",
			imageURL:    "https://images.unsplash.com/photo-1749464251742-107093fc5650",
			gallery: []string{
				"https://images.unsplash.com/photo-1747538454771-c6500c61266d",
				"https://images.unsplash.com/photo-1747538454763-3c80e36f17bf",
			},
			software: []string{"3ds Max", "Corona Renderer", "Photoshop"},
		},
		{
			title:       "Modern Villa Exterior",
			description: "A photorealistic rendering of a contemporary villa featuring clean lines, large windows, and modern architectural elements.",
			category:    "Exterior Design",
			imageURL:    "https://images.pexels.com/photos/32984408/pexels-photo-32984408.jpeg",
			gallery: []string{
				"https://images.unsplash.com/photo-1618221195710-dd6b41faaea6",
			},
			software: []string{"3ds Max", "V-ray", "AutoCAD"},
		},
		{
			title:       "Corporate Office Interior",
			description: "Professional office space design emphasizing productivity, comfort, and modern aesthetics.",
			category:    "Commercial Design",
			imageURL:    "https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg",
			gallery:     []string{},
			software:    []string{"Revit", "3ds Max", "Lumion"},
		},
	}

	for _, s := range samples {
		gallery, _ := json.Marshal(s.gallery)
		software, _ := json.Marshal(s.software)
		_, err := db.Exec(`
			INSERT INTO projects (title, description, category, image_url, gallery_images, software_used)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			s.title, s.description, s.category, s.imageURL, gallery, software,
		)
		if err != nil {
			return fmt.Errorf("seed insert project %q: %w", s.title, err)
		}
	}

	slog.Info("database seeded with sample projects", "count", len(samples))
	return nil
}

// seedBlogPosts inserts sample blog posts when the table is empty.
func seedBlogPosts(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM blog_posts").Scan(&count); err != nil {
		return fmt.Errorf("seed check blog posts: %w", err)
	}
	if count > 0 {
		return nil
	}

	type sample struct {
		title, content, excerpt, imageURL, category string
		tags                                        []string
		readTime                                    int
	}

	samples := []sample{
		{
			title:    "Mastering Photorealism in 3ds Max and Corona",
			content:  "Achieving photorealism requires a deep understanding of lighting, materials, and composition. In this tutorial, we walk through the essential techniques in 3ds Max and Corona Renderer to take your visualizations from good to breathtakingly realistic.",
			excerpt:  "Learn essential techniques for creating photorealistic architectural visualizations using 3ds Max and Corona Renderer.",
			imageURL: "https://images.unsplash.com/photo-1749464251742-107093fc5650",
			category: "Tutorial",
			tags:     []string{"3ds Max", "Corona", "Photorealism"},
			readTime: 8,
		},
		{
			title:    "The Future of AI in Architectural Visualization",
			content:  "Artificial Intelligence is revolutionizing architectural visualization, from automated material generation to intelligent lighting solutions. Explore how AI tools are transforming our workflow and enhancing creative possibilities.",
			excerpt:  "Discover how AI is transforming the architectural visualization industry and what it means for designers.",
			imageURL: "https://images.unsplash.com/photo-1747538454771-c6500c61266d",
			category: "Technology",
			tags:     []string{"AI", "Future", "Innovation"},
			readTime: 6,
		},
	}

	for _, s := range samples {
		tags, _ := json.Marshal(s.tags)
		_, err := db.Exec(`
			INSERT INTO blog_posts (title, content, excerpt, image_url, category, tags, read_time)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			s.title, s.content, s.excerpt, s.imageURL, s.category, tags, s.readTime,
		)
		if err != nil {
			return fmt.Errorf("seed insert blog post %q: %w", s.title, err)
		}
	}

	slog.Info("database seeded with sample blog posts", "count", len(samples))
	return nil
}

// seedTestimonials inserts sample testimonials when the table is empty.
func seedTestimonials(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM testimonials").Scan(&count); err != nil {
		return fmt.Errorf("seed check testimonials: %w", err)
	}
	if count > 0 {
		return nil
	}

	type sample struct {
		name, company, role, content, imageURL string
		rating                                 int
	}

	samples := []sample{
		{
			name:     "Sarah Johnson",
			company:  "Modern Architecture Studio",
			role:     "Principal Architect",
			content:  "Rabiul's architectural visualizations are exceptional. His attention to detail and ability to bring our designs to life is remarkable.",
			imageURL: "https://images.unsplash.com/photo-1494790108755-2616b612b390?w=150&h=150&fit=crop&crop=face",
			rating:   5,
		},
		{
			name:     "Michael Chen",
			company:  "Urban Design Group",
			role:     "Creative Director",
			content:  "His technical expertise in 3ds Max and Corona, combined with his artistic vision, produces stunning visualizations that exceed client expectations.",
			imageURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
			rating:   5,
		},
		{
			name:     "Emma Rodriguez",
			company:  "Residential Designs Inc.",
			role:     "Interior Designer",
			content:  "Incredibly realistic interior visualizations that help our clients see their future spaces perfectly. His understanding of lighting and materials is outstanding.",
			imageURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
			rating:   5,
		},
	}

	for _, s := range samples {
		_, err := db.Exec(`
			INSERT INTO testimonials (name, company, role, content, image_url, rating)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			s.name, s.company, s.role, s.content, s.imageURL, s.rating,
		)
		if err != nil {
			return fmt.Errorf("seed insert testimonial %q: %w", s.name, err)
		}
	}

	slog.Info("database seeded with sample testimonials", "count", len(samples))
	return nil
}
