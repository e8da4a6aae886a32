package service

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/jacksrivastava/shortly/internal/domain"
	"github.com/jacksrivastava/shortly/internal/repository"
	"github.com/jacksrivastava/shortly/internal/shortener"
)

// customCodeRe constrains custom codes to the same alphabet generated codes
// use, up to 64 characters.
var customCodeRe = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// linkService implements LinkService
type linkService struct {
	repo      repository.LinkRepository
	generator shortener.Generator
	clicks    ClickRecorder
	nowFunc   func() time.Time
}

// NewLinkService creates a new link service
func NewLinkService(repo repository.LinkRepository, generator shortener.Generator, clicks ClickRecorder) LinkService {
	return &linkService{
		repo:      repo,
		generator: generator,
		clicks:    clicks,
		nowFunc:   time.Now,
	}
}

// Shorten creates a new short link
func (s *linkService) Shorten(ctx context.Context, longURL, customCode string) (*domain.ShortLink, error) {
	if longURL == "" {
		return nil, domain.ErrMissingURL
	}

	parsed, err := url.ParseRequestURI(longURL)
	if err != nil {
		return nil, domain.ErrInvalidURL
	}

	// Only allow HTTP and HTTPS schemes
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, domain.ErrInvalidURL
	}

	shortCode := customCode
	if shortCode != "" {
		if !customCodeRe.MatchString(shortCode) {
			return nil, domain.ErrInvalidCode
		}

		taken, err := s.repo.LinkExists(ctx, shortCode)
		if err != nil {
			return nil, fmt.Errorf("failed to check short code: %w", err)
		}
		if taken {
			return nil, domain.ErrCodeTaken
		}
	} else {
		// Random codes skip a uniqueness pre-check; with 64^6 possible
		// codes a collision is negligible and the store's unique
		// constraint catches the rare one.
		shortCode, err = s.generator.GenerateShortCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate short code: %w", err)
		}
	}

	link, err := s.repo.CreateLink(ctx, shortCode, longURL, s.nowFunc())
	if err != nil {
		if domain.IsConflict(err) {
			return nil, domain.ErrCodeTaken
		}
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	return link, nil
}

// Resolve retrieves the link for a short code and submits a click update.
// The submission does not block and its outcome never affects the result.
func (s *linkService) Resolve(ctx context.Context, shortCode string) (*domain.ShortLink, error) {
	link, err := s.repo.GetLink(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	s.clicks.Record(shortCode, s.nowFunc())

	return link, nil
}

// GetLinkInfo retrieves detailed information about a short link
func (s *linkService) GetLinkInfo(ctx context.Context, shortCode string) (*domain.ShortLink, error) {
	return s.repo.GetLink(ctx, shortCode)
}

// GetAllLinks retrieves all short links, newest first
func (s *linkService) GetAllLinks(ctx context.Context) ([]*domain.ShortLink, error) {
	links, err := s.repo.GetAllLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get links: %w", err)
	}
	return links, nil
}

// Close closes the service and its dependencies
func (s *linkService) Close() error {
	if err := s.repo.Close(); err != nil {
		return fmt.Errorf("failed to close repository: %w", err)
	}
	return nil
}

// Ensure linkService implements LinkService interface
var _ LinkService = (*linkService)(nil)
