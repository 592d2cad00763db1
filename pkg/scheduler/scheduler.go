// Package scheduler runs the background jobs on a fixed tick: news fetching,
// digest delivery, task reminders and recurring-task rollover.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"deskhub/pkg/config"
	"deskhub/pkg/domain"
)

//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// Database is the store surface the jobs need
type Database interface {
	GetFeeds(ctx context.Context, enabledOnly bool) ([]*domain.Feed, error)
	UpdateFeedFetched(ctx context.Context, feedID int64) error
	UpdateFeedError(ctx context.Context, feedID int64, errMsg string) error

	NewsExists(ctx context.Context, feedID int64, guid string) (bool, error)
	UpsertNews(ctx context.Context, item *domain.NewsItem) (bool, error)
	ListUnsentNews(ctx context.Context, limit int) ([]*domain.NewsItem, error)
	MarkNewsSent(ctx context.Context, ids []int64) error

	ListDueTasks(ctx context.Context, asOf time.Time) ([]*domain.Task, error)
	ListTasksForRollover(ctx context.Context) ([]*domain.Task, error)
	RolloverTask(ctx context.Context, task *domain.Task, nextDue time.Time) (*domain.Task, error)
	MarkTasksReminded(ctx context.Context, ids []int64, at time.Time) error

	GetSetting(ctx context.Context, key string) (string, error)
}

// Parser fetches and parses a feed URL
type Parser interface {
	Parse(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

// Summarizer condenses item text
type Summarizer interface {
	Summarize(ctx context.Context, title, text string) (summary string, usedAI bool)
}

// Notifier delivers a digest to a webhook URL
type Notifier interface {
	Send(ctx context.Context, webhookURL, text string) error
}

// State describes where a job is in its lifecycle
type State string

// job states; Failed is recorded, never terminal, the job stays schedulable
const (
	StateIdle    State = "idle"
	StateDue     State = "due"
	StateRunning State = "running"
	StateFailed  State = "failed"
)

// JobStatus is a snapshot of one job for the foreground
type JobStatus struct {
	Name        string    `json:"name"`
	State       State     `json:"state"`
	LastStarted time.Time `json:"last_started,omitempty"`
	LastSuccess time.Time `json:"last_success,omitempty"`
	LastError   string    `json:"last_error,omitempty"`
	Runs        int       `json:"runs"`
	Failures    int       `json:"failures"`
}

// trigger decides whether a job should run at the given instant
type trigger interface {
	due(ctx context.Context, now, lastSuccess time.Time) bool
}

// job couples a trigger with its work function and status
type job struct {
	name    string
	trigger trigger
	run     func(ctx context.Context) error

	mu      sync.Mutex
	running bool
	status  JobStatus
}

// Scheduler drives registered jobs from a single tick loop
type Scheduler struct {
	tickInterval time.Duration
	nowFunc      func() time.Time

	jobs   []*job
	byName map[string]*job

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler creates an empty scheduler, jobs are registered before Start
func NewScheduler(tickInterval time.Duration) *Scheduler {
	if tickInterval <= 0 {
		tickInterval = time.Minute
	}
	return &Scheduler{
		tickInterval: tickInterval,
		nowFunc:      time.Now,
		byName:       map[string]*job{},
	}
}

// AddIntervalJob registers a job that runs when the given duration has passed
// since its last successful run. A job that has never succeeded is due at once.
func (s *Scheduler) AddIntervalJob(name string, every time.Duration, run func(ctx context.Context) error) {
	s.addJob(name, &intervalTrigger{every: every}, run)
}

// AddDailyJob registers a job that runs once per calendar day at a wall-clock
// time. When settingKey is non-empty the time is read from settings on every
// tick, so edits take effect without a restart; fallback covers a missing or
// malformed value.
func (s *Scheduler) AddDailyJob(name, settingKey string, fallback config.TimeOfDay, settings SettingReader, run func(ctx context.Context) error) {
	s.addJob(name, &dailyTrigger{settingKey: settingKey, fallback: fallback, settings: settings}, run)
}

// SettingReader reads a single runtime setting
type SettingReader interface {
	GetSetting(ctx context.Context, key string) (string, error)
}

func (s *Scheduler) addJob(name string, tr trigger, run func(ctx context.Context) error) {
	j := &job{
		name:    name,
		trigger: tr,
		run:     run,
		status:  JobStatus{Name: name, State: StateIdle},
	}
	s.jobs = append(s.jobs, j)
	s.byName[name] = j
}

// Start launches the tick loop
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.tickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.tick(ctx)
			}
		}
	}()

	lgr.Printf("[INFO] scheduler started with %d jobs, tick %v", len(s.jobs), s.tickInterval)
}

// Stop cancels the tick loop and waits for an in-flight job to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// tick evaluates triggers and runs due jobs sequentially, in registration order
func (s *Scheduler) tick(ctx context.Context) {
	now := s.nowFunc()
	for _, j := range s.jobs {
		if ctx.Err() != nil {
			return
		}
		j.mu.Lock()
		lastSuccess := j.status.LastSuccess
		j.mu.Unlock()

		if !j.trigger.due(ctx, now, lastSuccess) {
			continue
		}
		j.mu.Lock()
		if !j.running {
			j.status.State = StateDue
		}
		j.mu.Unlock()
		s.runJob(ctx, j)
	}
}

// RunJobNow triggers a job immediately, regardless of its schedule
func (s *Scheduler) RunJobNow(ctx context.Context, name string) error {
	j, ok := s.byName[name]
	if !ok {
		return fmt.Errorf("unknown job %q", name)
	}
	if !s.runJob(ctx, j) {
		return fmt.Errorf("job %q is already running", name)
	}
	return nil
}

// runJob executes a job with the re-entrancy guard, an overlapping invocation
// is skipped rather than queued. Reports whether the job actually ran.
func (s *Scheduler) runJob(ctx context.Context, j *job) bool {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		lgr.Printf("[WARN] job %s still running, skipping this round", j.name)
		return false
	}
	j.running = true
	j.status.State = StateRunning
	j.status.LastStarted = s.nowFunc()
	j.status.Runs++
	j.mu.Unlock()

	lgr.Printf("[DEBUG] job %s started", j.name)
	err := j.run(ctx)

	j.mu.Lock()
	defer j.mu.Unlock()
	j.running = false
	if err != nil {
		j.status.State = StateFailed
		j.status.LastError = err.Error()
		j.status.Failures++
		lgr.Printf("[ERROR] job %s failed: %v", j.name, err)
		return true
	}
	j.status.State = StateIdle
	j.status.LastSuccess = s.nowFunc()
	j.status.LastError = ""
	lgr.Printf("[DEBUG] job %s completed", j.name)
	return true
}

// Statuses returns snapshots of all jobs in registration order
func (s *Scheduler) Statuses() []JobStatus {
	statuses := make([]JobStatus, 0, len(s.jobs))
	for _, j := range s.jobs {
		j.mu.Lock()
		st := j.status
		j.mu.Unlock()
		statuses = append(statuses, st)
	}
	return statuses
}

// intervalTrigger fires when the interval has elapsed since the last success
type intervalTrigger struct {
	every time.Duration
}

func (t *intervalTrigger) due(_ context.Context, now, lastSuccess time.Time) bool {
	if lastSuccess.IsZero() {
		return true
	}
	return now.Sub(lastSuccess) >= t.every
}

// dailyTrigger fires once per calendar day at a wall-clock time, optionally
// read from settings on each evaluation
type dailyTrigger struct {
	settingKey string
	fallback   config.TimeOfDay
	settings   SettingReader

	lastDay string // YYYY-MM-DD of the last firing
}

func (t *dailyTrigger) due(ctx context.Context, now, _ time.Time) bool {
	at := t.fallback
	if t.settingKey != "" && t.settings != nil {
		if raw, err := t.settings.GetSetting(ctx, t.settingKey); err == nil && raw != "" {
			if parsed, perr := config.ParseTimeOfDay(raw); perr == nil {
				at = parsed
			} else {
				lgr.Printf("[WARN] bad time of day %q in setting %s: %v", raw, t.settingKey, perr)
			}
		}
	}

	day := now.Format("2006-01-02")
	if day == t.lastDay {
		return false
	}
	if now.Hour() < at.Hour || (now.Hour() == at.Hour && now.Minute() < at.Minute) {
		return false
	}

	// mark the day on firing, a failed run is not retried until tomorrow
	t.lastDay = day
	return true
}
