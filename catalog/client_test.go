package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientSearchSendsAPIKey(t *testing.T) {
	var gotKey, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotPath = r.URL.Path
		writeEnvelope(t, w, Envelope{Data: []ContentItem{}, TotalPages: 0})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "front-key")
	if _, err := c.Search(context.Background(), TierVIP, QueryState{Sort: SortMostRecent}); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if gotKey != "front-key" {
		t.Errorf("x-api-key = %q, want front-key", gotKey)
	}
	if gotPath != "/vipcontent/search" {
		t.Errorf("path = %q, want /vipcontent/search", gotPath)
	}
}

func TestClientSearchErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{
			"non-2xx is a network error",
			func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) },
			ErrNetwork,
		},
		{
			"missing data field is an invalid envelope",
			func(w http.ResponseWriter, r *http.Request) { fmt.Fprint(w, `{"something":"else"}`) },
			ErrInvalidEnvelope,
		},
		{
			"garbage payload is a decode error",
			func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, `{"data":"!!"}`)
			},
			ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewClient(srv.URL, "k").Search(context.Background(), TierFree, QueryState{})
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestClientLoginSessionLifecycle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"token":"tok-123","name":"Seven"}`)
		case "/categories":
			if r.Header.Get("Authorization") != "Bearer tok-123" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			fmt.Fprint(w, `[]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	if c.Session() != nil {
		t.Fatal("session should start empty")
	}

	s, err := c.Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if s.Token != "tok-123" || s.Name != "Seven" || s.Email != "a@b.c" {
		t.Errorf("unexpected session: %+v", s)
	}

	// Subsequent requests carry the bearer token.
	if _, err := c.Categories(context.Background()); err != nil {
		t.Errorf("authenticated request failed: %v", err)
	}

	c.Logout()
	if c.Session() != nil {
		t.Error("Logout should clear the session")
	}
}

func TestClientLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"Invalid email or password"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	if _, err := c.Login(context.Background(), "a@b.c", "wrong"); !errors.Is(err, ErrAuth) {
		t.Errorf("error = %v, want ErrAuth", err)
	}
	if c.Session() != nil {
		t.Error("failed login must not populate the session")
	}
}
