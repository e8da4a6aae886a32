package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jacksrivastava/shortly/internal/domain"
)

// LinkService is a mock implementation of service.LinkService
type LinkService struct {
	mock.Mock
}

// Shorten creates a new short link
func (m *LinkService) Shorten(ctx context.Context, longURL, customCode string) (*domain.ShortLink, error) {
	args := m.Called(ctx, longURL, customCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortLink), args.Error(1)
}

// Resolve retrieves the link for a short code and submits a click update
func (m *LinkService) Resolve(ctx context.Context, shortCode string) (*domain.ShortLink, error) {
	args := m.Called(ctx, shortCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortLink), args.Error(1)
}

// GetLinkInfo retrieves detailed information about a short link
func (m *LinkService) GetLinkInfo(ctx context.Context, shortCode string) (*domain.ShortLink, error) {
	args := m.Called(ctx, shortCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortLink), args.Error(1)
}

// GetAllLinks retrieves all short links, newest first
func (m *LinkService) GetAllLinks(ctx context.Context) ([]*domain.ShortLink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ShortLink), args.Error(1)
}

// Close closes the service and its dependencies
func (m *LinkService) Close() error {
	args := m.Called()
	return args.Error(0)
}

// ClickRecorder is a mock implementation of service.ClickRecorder
type ClickRecorder struct {
	mock.Mock
}

// Record accepts a non-blocking click submission
func (m *ClickRecorder) Record(shortCode string, clickedAt time.Time) {
	m.Called(shortCode, clickedAt)
}
