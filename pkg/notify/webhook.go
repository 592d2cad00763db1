// Package notify delivers digests to a Discord-compatible webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"golang.org/x/time/rate"
)

// Config holds webhook delivery parameters
type Config struct {
	ChunkLimit int           // max characters per message
	MaxRetries int           // attempts per chunk
	RatePerSec float64       // message pacing
	Timeout    time.Duration // per-request timeout
	Username   string        // sender name shown in the channel
}

// Client posts messages to a webhook URL, splitting long text into ordered
// chunks. The URL is passed per call, it lives in settings and may change
// between job runs.
type Client struct {
	client  *http.Client
	limiter *rate.Limiter
	cfg     Config
}

// DeliveryError reports a partial delivery, Sent chunks made it out before
// the failure and later chunks were not attempted
type DeliveryError struct {
	Sent  int
	Total int
	Err   error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivered %d of %d chunks: %v", e.Sent, e.Total, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// payload is the webhook request body
type payload struct {
	Content  string `json:"content"`
	Username string `json:"username,omitempty"`
}

// NewClient creates a webhook client
func NewClient(cfg Config) *Client {
	if cfg.ChunkLimit <= 0 {
		cfg.ChunkLimit = 2000
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1),
		cfg:     cfg,
	}
}

// Send splits text and posts the chunks in order. A chunk is retried with
// backoff, but once a chunk fails for good the remaining ones are not sent,
// the returned DeliveryError tells the caller how far delivery got.
func (c *Client) Send(ctx context.Context, webhookURL, text string) error {
	if webhookURL == "" {
		return fmt.Errorf("webhook URL is empty")
	}
	if text == "" {
		return nil
	}

	chunks := Split(text, c.cfg.ChunkLimit)
	for i, chunk := range chunks {
		if err := c.limiter.Wait(ctx); err != nil {
			return &DeliveryError{Sent: i, Total: len(chunks), Err: err}
		}
		if err := c.sendChunk(ctx, webhookURL, chunk); err != nil {
			return &DeliveryError{Sent: i, Total: len(chunks), Err: err}
		}
	}

	if len(chunks) > 1 {
		lgr.Printf("[DEBUG] delivered %d webhook chunks", len(chunks))
	}
	return nil
}

// sendChunk posts a single message with bounded retries
func (c *Client) sendChunk(ctx context.Context, webhookURL, chunk string) error {
	body, err := json.Marshal(payload{Content: chunk, Username: c.cfg.Username})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	retrier := repeater.NewBackoff(c.cfg.MaxRetries, 500*time.Millisecond, repeater.WithMaxDelay(5*time.Second))

	return retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("post webhook: %w", err)
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("webhook returned status %d", resp.StatusCode)
		}
		return nil
	})
}
