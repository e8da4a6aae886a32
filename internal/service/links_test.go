package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jacksrivastava/shortly/internal/domain"
	repoMocks "github.com/jacksrivastava/shortly/internal/repository/mocks"
	svcMocks "github.com/jacksrivastava/shortly/internal/service/mocks"
)

func TestLinkService_Shorten(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		longURL    string
		customCode string
		setupMocks func(*repoMocks.LinkRepository)
		wantCode   string
		wantErr    error
	}{
		{
			name:    "random code",
			longURL: "https://example.com",
			setupMocks: func(repo *repoMocks.LinkRepository) {
				repo.On("CreateLink", ctx, "tst001", "https://example.com", mock.AnythingOfType("time.Time")).
					Return(&domain.ShortLink{
						ID:        1,
						ShortCode: "tst001",
						LongURL:   "https://example.com",
						CreatedAt: time.Now(),
					}, nil)
			},
			wantCode: "tst001",
		},
		{
			name:       "custom code available",
			longURL:    "https://example.com/docs",
			customCode: "docs",
			setupMocks: func(repo *repoMocks.LinkRepository) {
				repo.On("LinkExists", ctx, "docs").Return(false, nil)
				repo.On("CreateLink", ctx, "docs", "https://example.com/docs", mock.AnythingOfType("time.Time")).
					Return(&domain.ShortLink{
						ID:        1,
						ShortCode: "docs",
						LongURL:   "https://example.com/docs",
						CreatedAt: time.Now(),
					}, nil)
			},
			wantCode: "docs",
		},
		{
			name:       "custom code taken",
			longURL:    "https://example.com/docs",
			customCode: "docs",
			setupMocks: func(repo *repoMocks.LinkRepository) {
				repo.On("LinkExists", ctx, "docs").Return(true, nil)
			},
			wantErr: domain.ErrCodeTaken,
		},
		{
			name:       "custom code with bad shape",
			longURL:    "https://example.com",
			customCode: "white space",
			setupMocks: func(repo *repoMocks.LinkRepository) {},
			wantErr:    domain.ErrInvalidCode,
		},
		{
			name:       "missing URL",
			longURL:    "",
			setupMocks: func(repo *repoMocks.LinkRepository) {},
			wantErr:    domain.ErrMissingURL,
		},
		{
			name:       "relative URL",
			longURL:    "not-a-url",
			setupMocks: func(repo *repoMocks.LinkRepository) {},
			wantErr:    domain.ErrInvalidURL,
		},
		{
			name:       "unsupported scheme",
			longURL:    "ftp://example.com/file",
			setupMocks: func(repo *repoMocks.LinkRepository) {},
			wantErr:    domain.ErrInvalidURL,
		},
		{
			name:    "random code lost race on unique constraint",
			longURL: "https://example.com",
			setupMocks: func(repo *repoMocks.LinkRepository) {
				repo.On("CreateLink", ctx, "tst001", "https://example.com", mock.AnythingOfType("time.Time")).
					Return(nil, domain.ErrCodeTaken)
			},
			wantErr: domain.ErrCodeTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &repoMocks.LinkRepository{}
			tt.setupMocks(repo)

			svc := NewLinkService(repo, NewTestGenerator(), &svcMocks.ClickRecorder{})

			link, err := svc.Shorten(ctx, tt.longURL, tt.customCode)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, link)
			} else {
				require.NoError(t, err)
				require.NotNil(t, link)
				assert.Equal(t, tt.wantCode, link.ShortCode)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestLinkService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("known code submits one click", func(t *testing.T) {
		repo := &repoMocks.LinkRepository{}
		recorder := &svcMocks.ClickRecorder{}

		link := &domain.ShortLink{ID: 1, ShortCode: "abc123", LongURL: "https://example.com"}
		repo.On("GetLink", ctx, "abc123").Return(link, nil)
		recorder.On("Record", "abc123", mock.AnythingOfType("time.Time")).Return()

		svc := NewLinkService(repo, NewTestGenerator(), recorder)

		got, err := svc.Resolve(ctx, "abc123")
		require.NoError(t, err)
		assert.Equal(t, link, got)

		recorder.AssertNumberOfCalls(t, "Record", 1)
		repo.AssertExpectations(t)
	})

	t.Run("unknown code submits no click", func(t *testing.T) {
		repo := &repoMocks.LinkRepository{}
		recorder := &svcMocks.ClickRecorder{}

		repo.On("GetLink", ctx, "missing").Return(nil, domain.ErrNotFound)

		svc := NewLinkService(repo, NewTestGenerator(), recorder)

		got, err := svc.Resolve(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, got)

		recorder.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	})
}

func TestLinkService_GetLinkInfo(t *testing.T) {
	ctx := context.Background()
	repo := &repoMocks.LinkRepository{}
	recorder := &svcMocks.ClickRecorder{}

	link := &domain.ShortLink{ID: 1, ShortCode: "abc123", LongURL: "https://example.com", ClickCount: 4}
	repo.On("GetLink", ctx, "abc123").Return(link, nil)

	svc := NewLinkService(repo, NewTestGenerator(), recorder)

	got, err := svc.GetLinkInfo(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, link, got)

	// Stats lookups never count as clicks
	recorder.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestLinkService_GetAllLinks(t *testing.T) {
	ctx := context.Background()
	repo := &repoMocks.LinkRepository{}

	links := []*domain.ShortLink{
		{ID: 2, ShortCode: "newer"},
		{ID: 1, ShortCode: "older"},
	}
	repo.On("GetAllLinks", ctx).Return(links, nil)

	svc := NewLinkService(repo, NewTestGenerator(), &svcMocks.ClickRecorder{})

	got, err := svc.GetAllLinks(ctx)
	require.NoError(t, err)
	assert.Equal(t, links, got)
}

func TestLinkService_GetAllLinks_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := &repoMocks.LinkRepository{}
	repo.On("GetAllLinks", ctx).Return(nil, assert.AnError)

	svc := NewLinkService(repo, NewTestGenerator(), &svcMocks.ClickRecorder{})

	got, err := svc.GetAllLinks(ctx)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestLinkService_Close(t *testing.T) {
	repo := &repoMocks.LinkRepository{}
	repo.On("Close").Return(nil)

	svc := NewLinkService(repo, NewTestGenerator(), &svcMocks.ClickRecorder{})

	require.NoError(t, svc.Close())
	repo.AssertExpectations(t)
}
