package domain

import "time"

// Feed represents a news feed source
type Feed struct {
	ID          int64
	URL         string
	Title       string
	LastFetched *time.Time
	ErrorCount  int
	LastError   string
	Enabled     bool
	CreatedAt   time.Time
}

// ParsedFeed represents a parsed syndication document
type ParsedFeed struct {
	Title       string
	Description string
	Link        string
	Items       []ParsedItem
}

// ParsedItem represents a single entry from a parsed feed
type ParsedItem struct {
	GUID        string
	Title       string
	Link        string
	Description string
	Published   time.Time
}
