package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/jacksrivastava/shortly/internal/domain"
	"github.com/jacksrivastava/shortly/internal/repository"
)

// Repository implements repository.LinkRepository using SQLite
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite repository
func New(databasePath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", databasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys and WAL mode for better performance
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	repo := &Repository{db: db}

	if err := repo.runMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repo, nil
}

// CreateLink creates a new short link entry
func (r *Repository) CreateLink(ctx context.Context, shortCode, longURL string, createdAt time.Time) (*domain.ShortLink, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO links (short_code, long_url, created_at, click_count) VALUES (?, ?, ?, 0)",
		shortCode, longURL, createdAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, domain.ErrCodeTaken
		}
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted id: %w", err)
	}

	return &domain.ShortLink{
		ID:         int(id),
		ShortCode:  shortCode,
		LongURL:    longURL,
		CreatedAt:  createdAt,
		ClickCount: 0,
	}, nil
}

// GetLink retrieves a link by its short code
func (r *Repository) GetLink(ctx context.Context, shortCode string) (*domain.ShortLink, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, short_code, long_url, created_at, last_clicked_at, click_count FROM links WHERE short_code = ?",
		shortCode)

	link, err := scanLink(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	return link, nil
}

// GetAllLinks retrieves all links ordered by creation date (desc)
func (r *Repository) GetAllLinks(ctx context.Context) ([]*domain.ShortLink, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, short_code, long_url, created_at, last_clicked_at, click_count FROM links ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to get all links: %w", err)
	}
	defer rows.Close()

	links := []*domain.ShortLink{}
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate links: %w", err)
	}

	return links, nil
}

// LinkExists checks if a short code exists
func (r *Repository) LinkExists(ctx context.Context, shortCode string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM links WHERE short_code = ?", shortCode).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check link existence: %w", err)
	}
	return count > 0, nil
}

// RecordClick increments the click count and sets the last clicked timestamp
func (r *Repository) RecordClick(ctx context.Context, shortCode string, clickedAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE links SET click_count = click_count + 1, last_clicked_at = ? WHERE short_code = ?",
		clickedAt, shortCode)
	if err != nil {
		return fmt.Errorf("failed to record click: %w", err)
	}
	return nil
}

// Close closes the repository connection
func (r *Repository) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLink(row scanner) (*domain.ShortLink, error) {
	var link domain.ShortLink
	var lastClickedAt sql.NullTime

	err := row.Scan(&link.ID, &link.ShortCode, &link.LongURL, &link.CreatedAt, &lastClickedAt, &link.ClickCount)
	if err != nil {
		return nil, err
	}

	if lastClickedAt.Valid {
		link.LastClickedAt = &lastClickedAt.Time
	}

	return &link, nil
}

// Ensure Repository implements the interface
var _ repository.LinkRepository = (*Repository)(nil)
