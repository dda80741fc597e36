package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// DismissalRepository handles per-viewer flags, one row per (viewer, key)
type DismissalRepository struct {
	db *sqlx.DB
}

// NewDismissalRepository creates a new dismissal repository
func NewDismissalRepository(db *sqlx.DB) *DismissalRepository {
	return &DismissalRepository{db: db}
}

// Get retrieves the stored value for a viewer and key, empty string when absent
func (r *DismissalRepository) Get(ctx context.Context, viewer, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM viewer_flags WHERE viewer = ? AND key = ?", viewer, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get viewer flag: %w", err)
	}
	return value, nil
}

// Set stores a value for a viewer and key, last write wins
func (r *DismissalRepository) Set(ctx context.Context, viewer, key, value string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO viewer_flags (viewer, key, value, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(viewer, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
		`
		if _, err := r.db.ExecContext(ctx, query, viewer, key, value); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set viewer flag: %w", err)}
		}
		return nil
	})
}
