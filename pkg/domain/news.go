package domain

import "time"

// NewsItem represents a stored news entry. Identity is (FeedID, GUID) - at most
// one stored row per identity, refetching a seen guid is a no-op.
type NewsItem struct {
	ID          int64
	FeedID      int64
	GUID        string
	Title       string
	Link        string
	Description string
	Summary     string
	SummaryByAI bool
	Published   time.Time
	FetchedAt   time.Time
	Sent        bool
	SentAt      *time.Time
	FeedTitle   string // joined from feeds, not stored on the item
}
