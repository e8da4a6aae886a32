package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jacksrivastava/shortly/internal/domain"
)

// LinkRepository is a mock implementation of repository.LinkRepository
type LinkRepository struct {
	mock.Mock
}

// CreateLink creates a new short link entry
func (m *LinkRepository) CreateLink(ctx context.Context, shortCode, longURL string, createdAt time.Time) (*domain.ShortLink, error) {
	args := m.Called(ctx, shortCode, longURL, createdAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortLink), args.Error(1)
}

// GetLink retrieves a link by its short code
func (m *LinkRepository) GetLink(ctx context.Context, shortCode string) (*domain.ShortLink, error) {
	args := m.Called(ctx, shortCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortLink), args.Error(1)
}

// GetAllLinks retrieves all links ordered by creation date (desc)
func (m *LinkRepository) GetAllLinks(ctx context.Context) ([]*domain.ShortLink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ShortLink), args.Error(1)
}

// LinkExists checks if a short code exists
func (m *LinkRepository) LinkExists(ctx context.Context, shortCode string) (bool, error) {
	args := m.Called(ctx, shortCode)
	return args.Bool(0), args.Error(1)
}

// RecordClick increments the click count and sets the last clicked timestamp
func (m *LinkRepository) RecordClick(ctx context.Context, shortCode string, clickedAt time.Time) error {
	args := m.Called(ctx, shortCode, clickedAt)
	return args.Error(0)
}

// Close closes the repository connection
func (m *LinkRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}
