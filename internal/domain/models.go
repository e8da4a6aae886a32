package domain

import (
	"time"
)

// ShortLink represents a shortened URL with its click metadata
type ShortLink struct {
	ID            int        `json:"id"`
	ShortCode     string     `json:"short_code"`
	LongURL       string     `json:"long_url"`
	CreatedAt     time.Time  `json:"created_at"`
	LastClickedAt *time.Time `json:"last_clicked_at,omitempty"`
	ClickCount    int        `json:"click_count"`
}

// ShortenRequest represents the request to create a short URL
type ShortenRequest struct {
	LongURL    string `json:"long_url"`
	CustomCode string `json:"custom_code,omitempty"`
}

// ShortenResponse represents the response when creating a short URL
type ShortenResponse struct {
	ShortCode string    `json:"short_code"`
	ShortURL  string    `json:"short_url"`
	LongURL   string    `json:"long_url"`
	CreatedAt time.Time `json:"created_at"`
}
