// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"archfolio/internal/models"
)

func TestNew_BaseURLFromEnv(t *testing.T) {
	t.Setenv("PORTFOLIO_API_URL", "http://api.example.com")
	c := New()
	if c.baseURL != "http://api.example.com" {
		t.Errorf("baseURL: got %q, want %q", c.baseURL, "http://api.example.com")
	}

	t.Setenv("PORTFOLIO_API_URL", "")
	c = New()
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL: got %q, want default %q", c.baseURL, DefaultBaseURL)
	}
}

func TestSettings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/settings" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(models.Settings{Name: "Rabiul Hasan", Email: "r@example.com"})
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	st, err := c.Settings(context.Background())
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if st.Name != "Rabiul Hasan" {
		t.Errorf("name: got %q, want %q", st.Name, "Rabiul Hasan")
	}
}

func TestUpdateSettings_SendsFullPayload(t *testing.T) {
	var received models.Settings
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method: got %s, want PUT", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(received)
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	in := &models.Settings{
		Name:        "Rabiul Hasan",
		Title:       "Architectural Visualizer",
		Email:       "r@example.com",
		SocialLinks: map[string]string{"behance": "https://behance.net/rabiul"},
	}
	out, err := c.UpdateSettings(context.Background(), in)
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if received.SocialLinks["behance"] != in.SocialLinks["behance"] {
		t.Error("social links were not sent with the settings payload")
	}
	if out.Name != in.Name {
		t.Errorf("name: got %q, want %q", out.Name, in.Name)
	}
}

func TestDelete_BuildsKindPath(t *testing.T) {
	id := uuid.New()
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	if err := c.Delete(context.Background(), KindBlog, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("method: got %s, want DELETE", gotMethod)
	}
	if want := "/api/blog/" + id.String(); gotPath != want {
		t.Errorf("path: got %q, want %q", gotPath, want)
	}
}

func TestDo_NonSuccessStatusBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"project not found"}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	_, err := c.Projects(context.Background())
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", apiErr.Status)
	}
	if apiErr.Error() == "" {
		t.Error("error message must not be empty")
	}
}

func TestSubmitContact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/contact" {
			t.Errorf("path: got %q, want /api/contact", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	err := c.SubmitContact(context.Background(), &models.ContactMessage{
		Name: "A", Email: "a@b.com", Message: "hi",
	})
	if err != nil {
		t.Fatalf("SubmitContact: %v", err)
	}
}
