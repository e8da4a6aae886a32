package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksrivastava/shortly/internal/domain"
)

func TestClient_Shorten(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/shorten", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req domain.ShortenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://example.com", req.LongURL)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.ShortenResponse{
			ShortCode: "abc123",
			ShortURL:  "http://sho.rt/abc123",
			LongURL:   req.LongURL,
			CreatedAt: time.Now().UTC(),
		})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	result, err := c.Shorten(context.Background(), "https://example.com", "")

	require.NoError(t, err)
	assert.Equal(t, "abc123", result.ShortCode)
	assert.Equal(t, "http://sho.rt/abc123", result.ShortURL)
}

func TestClient_Shorten_Conflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Custom code already taken", http.StatusConflict)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	_, err := c.Shorten(context.Background(), "https://example.com", "docs")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
}

func TestClient_Shorten_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	_, err := c.Shorten(context.Background(), "https://example.com", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestClient_GetStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stats/abc123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.ShortLink{
			ID:         1,
			ShortCode:  "abc123",
			LongURL:    "https://example.com",
			ClickCount: 42,
		})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	link, err := c.GetStats(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, 42, link.ClickCount)
}

func TestClient_GetStats_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	_, err := c.GetStats(context.Background(), "missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestClient_ListLinks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/links", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]*domain.ShortLink{
			{ID: 2, ShortCode: "newer"},
			{ID: 1, ShortCode: "older"},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	links, err := c.ListLinks(context.Background())

	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "newer", links[0].ShortCode)
}

func TestClient_ListLinks_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	_, err := c.ListLinks(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
