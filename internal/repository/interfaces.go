package repository

import (
	"context"
	"time"

	"github.com/jacksrivastava/shortly/internal/domain"
)

// LinkRepository defines the interface for short link data operations
type LinkRepository interface {
	// CreateLink creates a new short link entry. Fails with
	// domain.ErrCodeTaken if the short code already exists.
	CreateLink(ctx context.Context, shortCode, longURL string, createdAt time.Time) (*domain.ShortLink, error)

	// GetLink retrieves a link by its short code. Fails with
	// domain.ErrNotFound if the code is unknown.
	GetLink(ctx context.Context, shortCode string) (*domain.ShortLink, error)

	// GetAllLinks retrieves all links ordered by creation date (desc)
	GetAllLinks(ctx context.Context) ([]*domain.ShortLink, error)

	// LinkExists checks if a short code exists
	LinkExists(ctx context.Context, shortCode string) (bool, error)

	// RecordClick increments the click count and sets the last clicked
	// timestamp for a short code
	RecordClick(ctx context.Context, shortCode string, clickedAt time.Time) error

	// Close closes the repository connection
	Close() error
}
