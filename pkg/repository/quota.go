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

// QuotaRepository persists quota window state so a process restart cannot
// reset the external-API budget
type QuotaRepository struct {
	db *sqlx.DB
}

// quotaSQL represents a quota window row
type quotaSQL struct {
	Name        string    `db:"name"`
	WindowStart time.Time `db:"window_start"`
	CallCount   int       `db:"call_count"`
}

// NewQuotaRepository creates a new quota repository
func NewQuotaRepository(db *sqlx.DB) *QuotaRepository {
	return &QuotaRepository{db: db}
}

// LoadWindow retrieves the stored window for a named quota; found is false
// when no window has been persisted yet
func (r *QuotaRepository) LoadWindow(ctx context.Context, name string) (start time.Time, count int, found bool, err error) {
	var row quotaSQL
	err = r.db.GetContext(ctx, &row, "SELECT * FROM quota_windows WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, 0, false, nil
	}
	if err != nil {
		return time.Time{}, 0, false, fmt.Errorf("load quota window: %w", err)
	}
	return row.WindowStart, row.CallCount, true, nil
}

// SaveWindow stores the current window state for a named quota
func (r *QuotaRepository) SaveWindow(ctx context.Context, name string, start time.Time, count int) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO quota_windows (name, window_start, call_count) VALUES (?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET window_start = excluded.window_start, call_count = excluded.call_count
		`
		_, err := r.db.ExecContext(ctx, query, name, start.UTC(), count)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("save quota window: %w", err)}
		}
		return nil
	})
}
