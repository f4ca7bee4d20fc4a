// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"archfolio/internal/models"
)

func cleanBlogPosts(t *testing.T, db *sql.DB, titlePrefix string) {
	t.Helper()
	if _, err := db.Exec(`DELETE FROM blog_posts WHERE title LIKE $1 || '%'`, titlePrefix); err != nil {
		t.Errorf("cleanup blog posts: %v", err)
	}
}

func TestBlogStoreCreateDefaultsReadTime(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	title := "test-blog-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanBlogPosts(t, db, title) })

	created, err := s.Create(&models.BlogPost{
		Title:    title,
		Content:  "Full post body",
		Excerpt:  "Short version",
		ImageURL: "https://example.com/post.jpg",
		Category: "Tutorials",
		Tags:     []string{"lighting", "corona"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.ReadTime != 5 {
		t.Errorf("read_time default: got %d, want 5", created.ReadTime)
	}
	if created.PublishedAt.IsZero() {
		t.Error("expected server-assigned published_at")
	}
	if len(created.Tags) != 2 {
		t.Errorf("tags: got %v", created.Tags)
	}
}

func TestBlogStoreListNewestFirst(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	prefix := "test-order-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanBlogPosts(t, db, prefix) })

	first, err := s.Create(&models.BlogPost{
		Title: prefix + "-first", Content: "c", Excerpt: "e",
		ImageURL: "https://example.com/1.jpg", Category: "Tutorials",
	})
	if err != nil {
		t.Fatalf("Create first: %v", err)
	}
	second, err := s.Create(&models.BlogPost{
		Title: prefix + "-second", Content: "c", Excerpt: "e",
		ImageURL: "https://example.com/2.jpg", Category: "Tutorials",
	})
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}

	posts, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	var firstIdx, secondIdx = -1, -1
	for i, p := range posts {
		switch p.ID {
		case first.ID:
			firstIdx = i
		case second.ID:
			secondIdx = i
		}
	}
	if firstIdx == -1 || secondIdx == -1 {
		t.Fatal("created posts missing from List")
	}
	if secondIdx > firstIdx {
		t.Errorf("ordering: newer post at %d, older at %d; want newest first", secondIdx, firstIdx)
	}
}

func TestBlogStoreUpdateAndDelete(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	title := "test-blogupd-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanBlogPosts(t, db, title) })

	created, err := s.Create(&models.BlogPost{
		Title: title, Content: "before", Excerpt: "e",
		ImageURL: "https://example.com/x.jpg", Category: "Tutorials",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	created.Content = "after"
	created.Tags = []string{"updated"}
	matched, err := s.Update(created)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !matched {
		t.Fatal("Update should match the existing row")
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Content != "after" || len(found.Tags) != 1 {
		t.Errorf("after update: got content=%q tags=%v", found.Content, found.Tags)
	}

	matched, err = s.Delete(created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !matched {
		t.Fatal("Delete should match the existing row")
	}

	found, err = s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if found != nil {
		t.Error("post still present after delete")
	}
}
