package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"deskhub/pkg/domain"
)

// job names as registered and exposed over the API
const (
	JobNewsFetch    = "news_fetch"
	JobNewsSend     = "news_send"
	JobTaskRemind   = "task_remind"
	JobTaskRollover = "task_rollover"
)

// newsSendBatch caps how many unsent items one digest carries, the rest wait
// for the next round
const newsSendBatch = 50

// Jobs implements the background job bodies. Runtime knobs (webhook URL,
// toggles) are read from settings on every invocation so edits in the
// foreground apply to the next run without a restart.
type Jobs struct {
	db         Database
	parser     Parser
	summarizer Summarizer
	notifier   Notifier
	maxWorkers int
	nowFunc    func() time.Time

	mu     sync.Mutex
	warned map[string]bool
}

// NewJobs wires the job bodies to their dependencies
func NewJobs(db Database, parser Parser, summarizer Summarizer, notifier Notifier, maxWorkers int) *Jobs {
	if maxWorkers <= 0 {
		maxWorkers = 5
	}
	return &Jobs{
		db:         db,
		parser:     parser,
		summarizer: summarizer,
		notifier:   notifier,
		maxWorkers: maxWorkers,
		nowFunc:    time.Now,
		warned:     map[string]bool{},
	}
}

// NewsFetch pulls all enabled feeds concurrently, summarizes new entries and
// stores them. A broken feed is recorded on its row and never affects the
// others.
func (j *Jobs) NewsFetch(ctx context.Context) error {
	feeds, err := j.db.GetFeeds(ctx, true)
	if err != nil {
		return fmt.Errorf("get enabled feeds: %w", err)
	}
	if len(feeds) == 0 {
		return nil
	}

	lgr.Printf("[INFO] fetching %d feeds", len(feeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(j.maxWorkers)
	for _, f := range feeds {
		g.Go(func() error {
			j.fetchFeed(gctx, f)
			return nil
		})
	}
	_ = g.Wait() // per-feed errors are isolated, nothing propagates

	return nil
}

// fetchFeed processes a single feed end to end
func (j *Jobs) fetchFeed(ctx context.Context, f *domain.Feed) {
	parsed, err := j.parser.Parse(ctx, f.URL)
	if err != nil {
		lgr.Printf("[WARN] fetch failed for %s: %v", f.URL, err)
		if uerr := j.db.UpdateFeedError(ctx, f.ID, err.Error()); uerr != nil {
			lgr.Printf("[ERROR] failed to record feed error: %v", uerr)
		}
		return
	}

	newCount := 0
	for _, entry := range parsed.Items {
		if ctx.Err() != nil {
			return
		}

		exists, err := j.db.NewsExists(ctx, f.ID, entry.GUID)
		if err != nil {
			lgr.Printf("[ERROR] failed to check news existence: %v", err)
			continue
		}
		if exists {
			continue
		}

		// summarize only genuinely new entries, the quota is precious
		summary, usedAI := j.summarizer.Summarize(ctx, entry.Title, entry.Description)

		item := &domain.NewsItem{
			FeedID:      f.ID,
			GUID:        entry.GUID,
			Title:       entry.Title,
			Link:        entry.Link,
			Description: entry.Description,
			Summary:     summary,
			SummaryByAI: usedAI,
			Published:   entry.Published,
		}
		inserted, err := j.db.UpsertNews(ctx, item)
		if err != nil {
			lgr.Printf("[ERROR] failed to store news item: %v", err)
			continue
		}
		if inserted {
			newCount++
		}
	}

	if err := j.db.UpdateFeedFetched(ctx, f.ID); err != nil {
		lgr.Printf("[ERROR] failed to update feed fetch time: %v", err)
	}

	if newCount > 0 {
		lgr.Printf("[INFO] added %d new items from %s", newCount, f.Title)
	}
}

// NewsSend delivers unsent news as a digest and marks the items sent only
// after every chunk went out. A partial delivery leaves everything unsent, the
// next run re-sends, duplicates beat holes here.
func (j *Jobs) NewsSend(ctx context.Context) error {
	if !j.settingEnabled(ctx, domain.SettingAutoSendNews) {
		return nil
	}

	webhookURL, err := j.db.GetSetting(ctx, domain.SettingWebhookURL)
	if err != nil {
		return fmt.Errorf("read webhook URL: %w", err)
	}
	if webhookURL == "" {
		j.warnOnce(JobNewsSend, "webhook URL not configured, news delivery disabled")
		return nil
	}
	j.clearWarn(JobNewsSend)

	items, err := j.db.ListUnsentNews(ctx, newsSendBatch)
	if err != nil {
		return fmt.Errorf("list unsent news: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	digest := formatNewsDigest(items)
	if err := j.notifier.Send(ctx, webhookURL, digest); err != nil {
		return fmt.Errorf("deliver news digest: %w", err)
	}

	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	if err := j.db.MarkNewsSent(ctx, ids); err != nil {
		return fmt.Errorf("mark news sent: %w", err)
	}

	lgr.Printf("[INFO] delivered news digest with %d items", len(items))
	return nil
}

// TaskRemind sends the daily digest of overdue and due-today tasks and stamps
// them reminded on full success
func (j *Jobs) TaskRemind(ctx context.Context) error {
	if !j.settingEnabled(ctx, domain.SettingAutoRemind) {
		return nil
	}

	webhookURL, err := j.taskWebhookURL(ctx)
	if err != nil {
		return err
	}
	if webhookURL == "" {
		j.warnOnce(JobTaskRemind, "webhook URL not configured, task reminders disabled")
		return nil
	}
	j.clearWarn(JobTaskRemind)

	now := j.nowFunc()
	tasks, err := j.db.ListDueTasks(ctx, now)
	if err != nil {
		return fmt.Errorf("list due tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil
	}

	mention, err := j.db.GetSetting(ctx, domain.SettingMentionID)
	if err != nil {
		return fmt.Errorf("read mention id: %w", err)
	}

	digest := formatTaskDigest(tasks, now, mention)
	if err := j.notifier.Send(ctx, webhookURL, digest); err != nil {
		return fmt.Errorf("deliver task digest: %w", err)
	}

	ids := make([]int64, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	if err := j.db.MarkTasksReminded(ctx, ids, now); err != nil {
		return fmt.Errorf("mark tasks reminded: %w", err)
	}

	lgr.Printf("[INFO] reminded about %d due tasks", len(tasks))
	return nil
}

// TaskRollover spawns successors for completed recurring tasks. Each rollover
// is its own transaction, one failure does not block the rest.
func (j *Jobs) TaskRollover(ctx context.Context) error {
	tasks, err := j.db.ListTasksForRollover(ctx)
	if err != nil {
		return fmt.Errorf("list tasks for rollover: %w", err)
	}
	if len(tasks) == 0 {
		return nil
	}

	failed := 0
	for _, task := range tasks {
		base := j.nowFunc()
		if task.DueAt != nil {
			base = *task.DueAt
		}
		nextDue := domain.NextDueAt(base, task.Recurrence)

		next, err := j.db.RolloverTask(ctx, task, nextDue)
		if err != nil {
			lgr.Printf("[ERROR] rollover failed for task %d (%s): %v", task.ID, task.Title, err)
			failed++
			continue
		}
		lgr.Printf("[INFO] rolled over task %q to %d, due %s", task.Title, next.ID, nextDue.Format("2006-01-02"))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d rollovers failed", failed, len(tasks))
	}
	return nil
}

// taskWebhookURL prefers the dedicated task webhook and falls back to the
// shared one
func (j *Jobs) taskWebhookURL(ctx context.Context) (string, error) {
	url, err := j.db.GetSetting(ctx, domain.SettingTaskWebhookURL)
	if err != nil {
		return "", fmt.Errorf("read task webhook URL: %w", err)
	}
	if url != "" {
		return url, nil
	}
	url, err = j.db.GetSetting(ctx, domain.SettingWebhookURL)
	if err != nil {
		return "", fmt.Errorf("read webhook URL: %w", err)
	}
	return url, nil
}

// settingEnabled treats a missing toggle as enabled, the jobs are on by
// default and settings only switch them off
func (j *Jobs) settingEnabled(ctx context.Context, key string) bool {
	raw, err := j.db.GetSetting(ctx, key)
	if err != nil {
		lgr.Printf("[WARN] failed to read setting %s: %v", key, err)
		return true
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "false", "0", "off", "no", "disabled":
		return false
	}
	return true
}

// warnOnce logs a configuration problem on the first occurrence only, the
// message would otherwise repeat every tick
func (j *Jobs) warnOnce(key, msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.warned[key] {
		return
	}
	j.warned[key] = true
	lgr.Printf("[WARN] %s", msg)
}

// clearWarn re-arms the warning after the configuration is fixed
func (j *Jobs) clearWarn(key string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	delete(j.warned, key)
}
