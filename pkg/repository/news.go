package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"deskhub/pkg/domain"
)

// NewsRepository handles news item database operations
type NewsRepository struct {
	db *sqlx.DB
}

// newsSQL represents a news item for SQL operations
type newsSQL struct {
	ID          int64      `db:"id"`
	FeedID      int64      `db:"feed_id"`
	GUID        string     `db:"guid"`
	Title       string     `db:"title"`
	Link        string     `db:"link"`
	Description string     `db:"description"`
	Summary     string     `db:"summary"`
	SummaryByAI bool       `db:"summary_by_ai"`
	Published   *time.Time `db:"published"`
	FetchedAt   time.Time  `db:"fetched_at"`
	Sent        bool       `db:"sent"`
	SentAt      *time.Time `db:"sent_at"`

	// joined data, not stored on the item
	FeedTitle string `db:"feed_title"`
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(database *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: database}
}

// UpsertNews inserts a news item unless its (feed_id, guid) identity already
// exists. Returns true when a row was inserted; a duplicate is a no-op, not an
// error, so repeated job runs after partial failure are safe.
func (r *NewsRepository) UpsertNews(ctx context.Context, item *domain.NewsItem) (bool, error) {
	sqlItem := &newsSQL{
		FeedID:      item.FeedID,
		GUID:        item.GUID,
		Title:       item.Title,
		Link:        item.Link,
		Description: item.Description,
		Summary:     item.Summary,
		SummaryByAI: item.SummaryByAI,
	}
	if !item.Published.IsZero() {
		sqlItem.Published = &item.Published
	}

	inserted := false
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	err := retrier.Do(ctx, func() error {
		query := `
			INSERT INTO news_items (feed_id, guid, title, link, description, summary, summary_by_ai, published)
			VALUES (:feed_id, :guid, :title, :link, :description, :summary, :summary_by_ai, :published)
			ON CONFLICT (feed_id, guid) DO NOTHING
		`
		result, err := r.db.NamedExecContext(ctx, query, sqlItem)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("upsert news item: %w", err)}
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", err)}
		}
		if rows > 0 {
			id, err := result.LastInsertId()
			if err != nil {
				return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
			}
			item.ID = id
			inserted = true
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

// NewsExists checks if a news item with the given identity is already stored
func (r *NewsRepository) NewsExists(ctx context.Context, feedID int64, guid string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM news_items WHERE feed_id = ? AND guid = ?)",
		feedID, guid)
	if err != nil {
		return false, fmt.Errorf("check news exists: %w", err)
	}
	return exists, nil
}

// ListUnsentNews retrieves news items not yet delivered to the webhook,
// oldest first so digests come out in fetch order
func (r *NewsRepository) ListUnsentNews(ctx context.Context, limit int) ([]*domain.NewsItem, error) {
	query := `
		SELECT n.*, f.title AS feed_title
		FROM news_items n
		JOIN feeds f ON n.feed_id = f.id
		WHERE n.sent = 0
		ORDER BY n.fetched_at ASC, n.id ASC
		LIMIT ?
	`
	var sqlItems []newsSQL
	err := r.db.SelectContext(ctx, &sqlItems, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list unsent news: %w", err)
	}

	items := make([]*domain.NewsItem, len(sqlItems))
	for i, item := range sqlItems {
		items[i] = r.toDomainNews(&item)
	}
	return items, nil
}

// ListNews retrieves recent news items for display
func (r *NewsRepository) ListNews(ctx context.Context, limit int) ([]*domain.NewsItem, error) {
	query := `
		SELECT n.*, f.title AS feed_title
		FROM news_items n
		JOIN feeds f ON n.feed_id = f.id
		ORDER BY n.published DESC, n.fetched_at DESC
		LIMIT ?
	`
	var sqlItems []newsSQL
	err := r.db.SelectContext(ctx, &sqlItems, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}

	items := make([]*domain.NewsItem, len(sqlItems))
	for i, item := range sqlItems {
		items[i] = r.toDomainNews(&item)
	}
	return items, nil
}

// MarkNewsSent marks the given news items as delivered in a single
// transaction, so a failure midway leaves nothing half-marked
func (r *NewsRepository) MarkNewsSent(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	return inTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		query := "UPDATE news_items SET sent = 1, sent_at = datetime('now') WHERE id = ?"
		for _, id := range ids {
			if _, err := tx.ExecContext(ctx, query, id); err != nil {
				return fmt.Errorf("mark news sent: %w", err)
			}
		}
		return nil
	})
}

// toDomainNews converts newsSQL to domain.NewsItem
func (r *NewsRepository) toDomainNews(sqlItem *newsSQL) *domain.NewsItem {
	item := &domain.NewsItem{
		ID:          sqlItem.ID,
		FeedID:      sqlItem.FeedID,
		GUID:        sqlItem.GUID,
		Title:       sqlItem.Title,
		Link:        sqlItem.Link,
		Description: sqlItem.Description,
		Summary:     sqlItem.Summary,
		SummaryByAI: sqlItem.SummaryByAI,
		FetchedAt:   sqlItem.FetchedAt,
		Sent:        sqlItem.Sent,
		SentAt:      sqlItem.SentAt,
		FeedTitle:   sqlItem.FeedTitle,
	}
	if sqlItem.Published != nil {
		item.Published = *sqlItem.Published
	}
	return item
}
