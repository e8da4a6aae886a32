package service

import (
	"context"
	"time"

	"github.com/jacksrivastava/shortly/internal/domain"
)

// LinkService defines the interface for URL shortening operations
type LinkService interface {
	// Shorten creates a new short link for longURL. When customCode is
	// non-empty it is used as the code and must not be taken; otherwise a
	// random code is generated.
	Shorten(ctx context.Context, longURL, customCode string) (*domain.ShortLink, error)

	// Resolve retrieves the link for a short code and submits a
	// best-effort click update
	Resolve(ctx context.Context, shortCode string) (*domain.ShortLink, error)

	// GetLinkInfo retrieves detailed information about a short link
	// without touching its click count
	GetLinkInfo(ctx context.Context, shortCode string) (*domain.ShortLink, error)

	// GetAllLinks retrieves all short links, newest first
	GetAllLinks(ctx context.Context) ([]*domain.ShortLink, error)

	// Close closes the service and its dependencies
	Close() error
}

// ClickRecorder accepts non-blocking click submissions
type ClickRecorder interface {
	Record(shortCode string, clickedAt time.Time)
}
