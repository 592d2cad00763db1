// Package quota tracks daily consumption of a metered external API.
// The window resets at local midnight and the counter is persisted, so a
// process restart cannot hand out a fresh budget mid-day.
package quota

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . SettingReader

// Store persists window state between runs
type Store interface {
	LoadWindow(ctx context.Context, name string) (start time.Time, count int, found bool, err error)
	SaveWindow(ctx context.Context, name string, start time.Time, count int) error
}

// SettingReader reads a single runtime setting
type SettingReader interface {
	GetSetting(ctx context.Context, key string) (string, error)
}

// Tracker counts calls against a fixed daily limit
type Tracker struct {
	name      string
	store     Store
	settings  SettingReader
	limitKey  string
	baseLimit int

	mu          sync.Mutex
	limit       int
	windowStart time.Time
	count       int

	nowFunc func() time.Time // injectable for tests
}

// Option adjusts a tracker at construction
type Option func(*Tracker)

// WithLimitSetting makes the tracker re-read its daily limit from the named
// setting on every consumption attempt, so edits apply without restart. An
// unset or invalid value keeps the configured limit.
func WithLimitSetting(settings SettingReader, key string) Option {
	return func(t *Tracker) {
		t.settings = settings
		t.limitKey = key
	}
}

// NewTracker creates a tracker for the named quota, restoring any persisted
// window state. A stored window from a previous day is discarded.
func NewTracker(ctx context.Context, name string, limit int, store Store, opts ...Option) (*Tracker, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("quota limit must be positive, got %d", limit)
	}

	t := &Tracker{
		name:      name,
		baseLimit: limit,
		limit:     limit,
		store:     store,
		nowFunc:   time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.refreshLimit(ctx)
	if err := t.restore(ctx); err != nil {
		return nil, err
	}

	return t, nil
}

// restore loads the persisted window. The start is stored in UTC, the day
// boundary is evaluated in the current clock's location.
func (t *Tracker) restore(ctx context.Context) error {
	start, count, found, err := t.store.LoadWindow(ctx, t.name)
	if err != nil {
		return fmt.Errorf("restore quota window: %w", err)
	}

	now := t.nowFunc()
	start = start.In(now.Location())

	if found && sameDay(start, now) {
		t.windowStart = start
		t.count = count
		lgr.Printf("[INFO] quota %q restored, %d/%d calls used", t.name, count, t.limit)
	} else {
		t.windowStart = dayStart(now)
		t.count = 0
	}
	return nil
}

// TryConsume reserves n calls from the current window. Returns false without
// side effects when the reservation would exceed the limit.
func (t *Tracker) TryConsume(ctx context.Context, n int) (bool, error) {
	if n <= 0 {
		return true, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.refreshLimit(ctx)
	t.rollWindow()

	if t.count+n > t.limit {
		return false, nil
	}

	t.count += n
	if err := t.store.SaveWindow(ctx, t.name, t.windowStart, t.count); err != nil {
		// the call is still allowed, the persisted counter just lags
		lgr.Printf("[WARN] failed to persist quota %q: %v", t.name, err)
	}
	return true, nil
}

// Remaining reports calls left in the current window
func (t *Tracker) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollWindow()
	return t.limit - t.count
}

// UsageRatio reports the consumed fraction of the window, between 0 and 1
func (t *Tracker) UsageRatio() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollWindow()
	return float64(t.count) / float64(t.limit)
}

// Limit reports the effective daily limit
func (t *Tracker) Limit() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.limit
}

// refreshLimit re-reads the limit override from settings. Caller must hold
// the lock (or own the tracker exclusively, as during construction).
func (t *Tracker) refreshLimit(ctx context.Context) {
	if t.settings == nil {
		return
	}

	raw, err := t.settings.GetSetting(ctx, t.limitKey)
	if err != nil {
		lgr.Printf("[WARN] failed to read quota limit setting %s: %v", t.limitKey, err)
		return
	}

	limit := t.baseLimit
	if raw != "" {
		v, perr := strconv.Atoi(strings.TrimSpace(raw))
		if perr != nil || v <= 0 {
			lgr.Printf("[WARN] invalid quota limit %q in setting %s, keeping %d", raw, t.limitKey, t.limit)
			return
		}
		limit = v
	}

	if limit != t.limit {
		lgr.Printf("[INFO] quota %q limit changed from %d to %d", t.name, t.limit, limit)
		t.limit = limit
	}
}

// rollWindow resets the counter when the wall clock has crossed midnight
// since the window started. Caller must hold the lock.
func (t *Tracker) rollWindow() {
	now := t.nowFunc()
	if sameDay(t.windowStart, now) {
		return
	}
	t.windowStart = dayStart(now)
	t.count = 0
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func dayStart(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
}
