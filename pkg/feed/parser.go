// Package feed fetches and parses RSS/Atom sources.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"deskhub/pkg/domain"
)

// Parser parses RSS/Atom feeds
type Parser struct {
	client    *http.Client
	userAgent string
	sanitizer *bluemonday.Policy
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Parse fetches and parses a feed from the given URL
func (p *Parser) Parse(ctx context.Context, url string) (*domain.ParsedFeed, error) {
	// fetch feed content
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	// parse feed
	parser := gofeed.NewParser()
	feed, err := parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	// convert to our types
	result := &domain.ParsedFeed{
		Title:       feed.Title,
		Description: p.cleanText(feed.Description),
		Link:        feed.Link,
		Items:       make([]domain.ParsedItem, 0, len(feed.Items)),
	}

	for _, item := range feed.Items {
		parsedItem := domain.ParsedItem{
			Title:       strings.TrimSpace(item.Title),
			Link:        item.Link,
			Description: p.cleanText(item.Description),
		}

		// set GUID, falling back to link then to a synthetic identity
		switch {
		case item.GUID != "":
			parsedItem.GUID = item.GUID
		case item.Link != "":
			parsedItem.GUID = item.Link
		default:
			parsedItem.GUID = fmt.Sprintf("%s-%s", feed.Title, item.Title)
		}

		// set published time
		if item.PublishedParsed != nil {
			parsedItem.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			parsedItem.Published = *item.UpdatedParsed
		}

		result.Items = append(result.Items, parsedItem)
	}

	return result, nil
}

// cleanText strips markup from feed-provided text, descriptions often arrive
// as HTML fragments
func (p *Parser) cleanText(s string) string {
	return strings.TrimSpace(p.sanitizer.Sanitize(s))
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)

	// add browser-like headers
	addBrowserHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
