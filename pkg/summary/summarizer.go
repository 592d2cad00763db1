// Package summary condenses news item text via an OpenAI-compatible API,
// falling back to plain truncation when the API is unavailable or the daily
// quota is exhausted.
package summary

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"deskhub/pkg/config"
	"deskhub/pkg/domain"
)

//go:generate moq -out mocks/quota.go -pkg mocks -skip-ensure -fmt goimports . Quota
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . Settings

// Quota gates access to the metered API
type Quota interface {
	TryConsume(ctx context.Context, n int) (bool, error)
}

// Settings reads a single runtime setting
type Settings interface {
	GetSetting(ctx context.Context, key string) (string, error)
}

// Summarizer produces short summaries of news item descriptions
type Summarizer struct {
	cfg      config.SummaryConfig
	quota    Quota
	settings Settings

	mu        sync.Mutex
	client    *openai.Client
	clientKey string
}

const systemPrompt = `You summarize news snippets for a compact desktop digest.
Respond with a single plain-text summary of at most %d characters.
Start with the subject matter directly, never with "The article" or similar.
Keep the language of the original text.`

// NewSummarizer creates a summarizer backed by an OpenAI-compatible endpoint.
// A nil settings makes the API key fixed to the configured one.
func NewSummarizer(cfg config.SummaryConfig, quota Quota, settings Settings) *Summarizer {
	s := &Summarizer{
		cfg:      cfg,
		quota:    quota,
		settings: settings,
	}
	s.client = s.newClient(cfg.APIKey)
	s.clientKey = cfg.APIKey
	return s
}

// newClient builds the API client, the request timeout bounds a stalled
// endpoint so a hung call cannot block the tick loop
func (s *Summarizer) newClient(key string) *openai.Client {
	clientConfig := openai.DefaultConfig(key)
	if s.cfg.Endpoint != "" {
		clientConfig.BaseURL = s.cfg.Endpoint
	}

	timeout := s.cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	clientConfig.HTTPClient = &http.Client{Timeout: timeout}

	return openai.NewClientWithConfig(clientConfig)
}

// apiClient returns the client for the current API key, read from settings on
// every call so a rotated key applies without restart
func (s *Summarizer) apiClient(ctx context.Context) *openai.Client {
	key := s.cfg.APIKey
	if s.settings != nil {
		v, err := s.settings.GetSetting(ctx, domain.SettingAPIKey)
		switch {
		case err != nil:
			lgr.Printf("[WARN] failed to read API key setting: %v", err)
		case v != "":
			key = v
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if key != s.clientKey {
		lgr.Printf("[INFO] summary API key changed, rebuilding client")
		s.client = s.newClient(key)
		s.clientKey = key
	}
	return s.client
}

// Summarize returns a summary of the text and whether the API produced it.
// Text already within the length budget passes through untouched and costs
// no quota. The API gets exactly one attempt, any failure degrades to
// truncation rather than propagating an error.
func (s *Summarizer) Summarize(ctx context.Context, title, text string) (summary string, usedAI bool) {
	text = strings.TrimSpace(text)
	if len([]rune(text)) <= s.cfg.MaxChars {
		return text, false
	}

	ok, err := s.quota.TryConsume(ctx, 1)
	if err != nil {
		lgr.Printf("[WARN] quota check failed for %q: %v", title, err)
		return Truncate(text, s.cfg.MaxChars), false
	}
	if !ok {
		lgr.Printf("[INFO] summary quota exhausted, truncating %q", title)
		return Truncate(text, s.cfg.MaxChars), false
	}

	result, err := s.request(ctx, title, text)
	if err != nil {
		lgr.Printf("[WARN] summary request failed for %q: %v", title, err)
		return Truncate(text, s.cfg.MaxChars), false
	}
	return result, true
}

// request makes a single chat completion call
func (s *Summarizer) request(ctx context.Context, title, text string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       s.cfg.Model,
		Temperature: float32(s.cfg.Temperature),
		MaxTokens:   s.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(systemPrompt, s.cfg.MaxChars),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Title: %s\n\n%s", title, text),
			},
		},
	}

	resp, err := s.apiClient(ctx).CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	result := strings.TrimSpace(resp.Choices[0].Message.Content)
	if result == "" {
		return "", fmt.Errorf("empty summary in response")
	}
	return result, nil
}

// Truncate shortens text to at most limit runes, cutting at a word boundary
// when one is close enough and marking the cut with an ellipsis
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if limit <= 1 {
		return "…"
	}

	cut := limit - 1 // leave room for the ellipsis
	window := runes[:cut]

	// prefer a word boundary unless it throws away too much
	for i := cut - 1; i > cut/2; i-- {
		if window[i] == ' ' {
			window = window[:i]
			break
		}
	}

	return strings.TrimRight(string(window), " ,;:.") + "…"
}
