package scheduler

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskhub/pkg/domain"
	"deskhub/pkg/scheduler/mocks"
)

func TestJobs_NewsFetch(t *testing.T) {
	feeds := []*domain.Feed{
		{ID: 1, URL: "https://a.example.com/rss", Title: "Feed A", Enabled: true},
		{ID: 2, URL: "https://b.example.com/rss", Title: "Feed B", Enabled: true},
	}

	db := &mocks.DatabaseMock{
		GetFeedsFunc: func(ctx context.Context, enabledOnly bool) ([]*domain.Feed, error) {
			assert.True(t, enabledOnly)
			return feeds, nil
		},
		NewsExistsFunc: func(ctx context.Context, feedID int64, guid string) (bool, error) {
			return guid == "known", nil
		},
		UpsertNewsFunc: func(ctx context.Context, item *domain.NewsItem) (bool, error) {
			return true, nil
		},
		UpdateFeedFetchedFunc: func(ctx context.Context, feedID int64) error { return nil },
	}
	parser := &mocks.ParserMock{
		ParseFunc: func(ctx context.Context, url string) (*domain.ParsedFeed, error) {
			return &domain.ParsedFeed{Items: []domain.ParsedItem{
				{GUID: "known", Title: "Old", Description: "seen before"},
				{GUID: "fresh", Title: "New", Description: "long description to summarize"},
			}}, nil
		},
	}
	summarizer := &mocks.SummarizerMock{
		SummarizeFunc: func(ctx context.Context, title, text string) (string, bool) {
			return "short: " + title, true
		},
	}

	jobs := NewJobs(db, parser, summarizer, &mocks.NotifierMock{}, 2)
	require.NoError(t, jobs.NewsFetch(context.Background()))

	assert.Len(t, parser.ParseCalls(), 2)
	// only the fresh item per feed is summarized and stored
	assert.Len(t, summarizer.SummarizeCalls(), 2)
	require.Len(t, db.UpsertNewsCalls(), 2)
	for _, call := range db.UpsertNewsCalls() {
		assert.Equal(t, "fresh", call.Item.GUID)
		assert.Equal(t, "short: New", call.Item.Summary)
		assert.True(t, call.Item.SummaryByAI)
	}
	assert.Len(t, db.UpdateFeedFetchedCalls(), 2)
	assert.Empty(t, db.UpdateFeedErrorCalls())
}

func TestJobs_NewsFetch_FeedFailureIsolated(t *testing.T) {
	feeds := []*domain.Feed{
		{ID: 1, URL: "https://broken.example.com/rss", Title: "Broken"},
		{ID: 2, URL: "https://ok.example.com/rss", Title: "OK"},
	}

	db := &mocks.DatabaseMock{
		GetFeedsFunc: func(ctx context.Context, enabledOnly bool) ([]*domain.Feed, error) {
			return feeds, nil
		},
		NewsExistsFunc: func(ctx context.Context, feedID int64, guid string) (bool, error) {
			return false, nil
		},
		UpsertNewsFunc: func(ctx context.Context, item *domain.NewsItem) (bool, error) {
			return true, nil
		},
		UpdateFeedFetchedFunc: func(ctx context.Context, feedID int64) error { return nil },
		UpdateFeedErrorFunc:   func(ctx context.Context, feedID int64, errMsg string) error { return nil },
	}
	parser := &mocks.ParserMock{
		ParseFunc: func(ctx context.Context, url string) (*domain.ParsedFeed, error) {
			if strings.Contains(url, "broken") {
				return nil, errors.New("connection refused")
			}
			return &domain.ParsedFeed{Items: []domain.ParsedItem{
				{GUID: "g1", Title: "Item", Description: "text"},
			}}, nil
		},
	}
	summarizer := &mocks.SummarizerMock{
		SummarizeFunc: func(ctx context.Context, title, text string) (string, bool) { return text, false },
	}

	jobs := NewJobs(db, parser, summarizer, &mocks.NotifierMock{}, 2)
	require.NoError(t, jobs.NewsFetch(context.Background()), "one broken feed is not a job failure")

	// broken feed recorded, healthy feed fully processed
	require.Len(t, db.UpdateFeedErrorCalls(), 1)
	assert.EqualValues(t, 1, db.UpdateFeedErrorCalls()[0].FeedID)
	require.Len(t, db.UpsertNewsCalls(), 1)
	require.Len(t, db.UpdateFeedFetchedCalls(), 1)
	assert.EqualValues(t, 2, db.UpdateFeedFetchedCalls()[0].FeedID)
}

func TestJobs_NewsSend(t *testing.T) {
	items := []*domain.NewsItem{
		{ID: 10, Title: "One", Summary: "first summary", Link: "https://x/1", FeedTitle: "Feed"},
		{ID: 11, Title: "Two", Summary: "second summary", Link: "https://x/2", FeedTitle: "Feed"},
	}

	db := &mocks.DatabaseMock{
		GetSettingFunc: func(ctx context.Context, key string) (string, error) {
			if key == domain.SettingWebhookURL {
				return "https://hooks.example.com/news", nil
			}
			return "", nil
		},
		ListUnsentNewsFunc: func(ctx context.Context, limit int) ([]*domain.NewsItem, error) {
			return items, nil
		},
		MarkNewsSentFunc: func(ctx context.Context, ids []int64) error { return nil },
	}
	notifier := &mocks.NotifierMock{
		SendFunc: func(ctx context.Context, webhookURL, text string) error { return nil },
	}

	jobs := NewJobs(db, &mocks.ParserMock{}, &mocks.SummarizerMock{}, notifier, 2)
	require.NoError(t, jobs.NewsSend(context.Background()))

	require.Len(t, notifier.SendCalls(), 1)
	call := notifier.SendCalls()[0]
	assert.Equal(t, "https://hooks.example.com/news", call.WebhookURL)
	assert.Contains(t, call.Text, "One")
	assert.Contains(t, call.Text, "second summary")

	require.Len(t, db.MarkNewsSentCalls(), 1)
	assert.Equal(t, []int64{10, 11}, db.MarkNewsSentCalls()[0].IDs)
}

func TestJobs_NewsSend_DeliveryFailureMarksNothing(t *testing.T) {
	db := &mocks.DatabaseMock{
		GetSettingFunc: func(ctx context.Context, key string) (string, error) {
			if key == domain.SettingWebhookURL {
				return "https://hooks.example.com/news", nil
			}
			return "", nil
		},
		ListUnsentNewsFunc: func(ctx context.Context, limit int) ([]*domain.NewsItem, error) {
			return []*domain.NewsItem{{ID: 1, Title: "One"}}, nil
		},
		MarkNewsSentFunc: func(ctx context.Context, ids []int64) error { return nil },
	}
	notifier := &mocks.NotifierMock{
		SendFunc: func(ctx context.Context, webhookURL, text string) error {
			return errors.New("webhook down")
		},
	}

	jobs := NewJobs(db, &mocks.ParserMock{}, &mocks.SummarizerMock{}, notifier, 2)
	err := jobs.NewsSend(context.Background())
	require.Error(t, err)

	assert.Empty(t, db.MarkNewsSentCalls(), "failed delivery leaves items unsent for the next run")
}

func TestJobs_NewsSend_SkipsWithoutWebhook(t *testing.T) {
	db := &mocks.DatabaseMock{
		GetSettingFunc: func(ctx context.Context, key string) (string, error) { return "", nil },
	}
	notifier := &mocks.NotifierMock{}

	jobs := NewJobs(db, &mocks.ParserMock{}, &mocks.SummarizerMock{}, notifier, 2)
	require.NoError(t, jobs.NewsSend(context.Background()))
	require.NoError(t, jobs.NewsSend(context.Background()), "repeat skip stays quiet")
	assert.Empty(t, notifier.SendCalls())
}

func TestJobs_NewsSend_DisabledByToggle(t *testing.T) {
	db := &mocks.DatabaseMock{
		GetSettingFunc: func(ctx context.Context, key string) (string, error) {
			if key == domain.SettingAutoSendNews {
				return "false", nil
			}
			return "https://hooks.example.com/news", nil
		},
	}
	notifier := &mocks.NotifierMock{}

	jobs := NewJobs(db, &mocks.ParserMock{}, &mocks.SummarizerMock{}, notifier, 2)
	require.NoError(t, jobs.NewsSend(context.Background()))
	assert.Empty(t, notifier.SendCalls())
}

func TestJobs_TaskRemind(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	overdue := now.AddDate(0, 0, -3)
	today := now.Add(-time.Hour)
	tasks := []*domain.Task{
		{ID: 1, Title: "Pay rent", DueAt: &overdue, Priority: domain.PriorityHigh},
		{ID: 2, Title: "Water plants", DueAt: &today, Priority: domain.PriorityLow},
	}

	db := &mocks.DatabaseMock{
		GetSettingFunc: func(ctx context.Context, key string) (string, error) {
			switch key {
			case domain.SettingTaskWebhookURL:
				return "https://hooks.example.com/tasks", nil
			case domain.SettingMentionID:
				return "12345", nil
			}
			return "", nil
		},
		ListDueTasksFunc: func(ctx context.Context, asOf time.Time) ([]*domain.Task, error) {
			return tasks, nil
		},
		MarkTasksRemindedFunc: func(ctx context.Context, ids []int64, at time.Time) error { return nil },
	}
	notifier := &mocks.NotifierMock{
		SendFunc: func(ctx context.Context, webhookURL, text string) error { return nil },
	}

	jobs := NewJobs(db, &mocks.ParserMock{}, &mocks.SummarizerMock{}, notifier, 2)
	jobs.nowFunc = func() time.Time { return now }
	require.NoError(t, jobs.TaskRemind(context.Background()))

	require.Len(t, notifier.SendCalls(), 1)
	call := notifier.SendCalls()[0]
	assert.Equal(t, "https://hooks.example.com/tasks", call.WebhookURL, "task webhook preferred over shared one")
	assert.Contains(t, call.Text, "<@12345>")
	assert.Contains(t, call.Text, "OVERDUE")
	assert.Contains(t, call.Text, "DUE TODAY")
	assert.Contains(t, call.Text, "Pay rent")
	assert.Less(t, strings.Index(call.Text, "Pay rent"), strings.Index(call.Text, "Water plants"))

	require.Len(t, db.MarkTasksRemindedCalls(), 1)
	assert.Equal(t, []int64{1, 2}, db.MarkTasksRemindedCalls()[0].IDs)
	assert.True(t, now.Equal(db.MarkTasksRemindedCalls()[0].At))
}

func TestJobs_TaskRemind_NothingDue(t *testing.T) {
	db := &mocks.DatabaseMock{
		GetSettingFunc: func(ctx context.Context, key string) (string, error) {
			return "https://hooks.example.com/tasks", nil
		},
		ListDueTasksFunc: func(ctx context.Context, asOf time.Time) ([]*domain.Task, error) {
			return nil, nil
		},
	}
	notifier := &mocks.NotifierMock{}

	jobs := NewJobs(db, &mocks.ParserMock{}, &mocks.SummarizerMock{}, notifier, 2)
	require.NoError(t, jobs.TaskRemind(context.Background()))
	assert.Empty(t, notifier.SendCalls(), "empty digest is not sent")
}

func TestJobs_TaskRollover(t *testing.T) {
	due := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)
	tasks := []*domain.Task{
		{ID: 1, Title: "Daily standup", DueAt: &due, Recurrence: domain.RecurrenceDaily, Completed: true},
		{ID: 2, Title: "Monthly report", DueAt: &due, Recurrence: domain.RecurrenceMonthly, Completed: true},
	}

	db := &mocks.DatabaseMock{
		ListTasksForRolloverFunc: func(ctx context.Context) ([]*domain.Task, error) {
			return tasks, nil
		},
		RolloverTaskFunc: func(ctx context.Context, task *domain.Task, nextDue time.Time) (*domain.Task, error) {
			next := *task
			next.ID = task.ID + 100
			next.DueAt = &nextDue
			return &next, nil
		},
	}

	jobs := NewJobs(db, &mocks.ParserMock{}, &mocks.SummarizerMock{}, &mocks.NotifierMock{}, 2)
	require.NoError(t, jobs.TaskRollover(context.Background()))

	calls := db.RolloverTaskCalls()
	require.Len(t, calls, 2)
	assert.True(t, due.AddDate(0, 0, 1).Equal(calls[0].NextDue), "daily advances one day from the original due")
	assert.True(t, due.AddDate(0, 1, 0).Equal(calls[1].NextDue), "monthly advances one month")
}

func TestJobs_TaskRollover_PartialFailure(t *testing.T) {
	due := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)
	tasks := []*domain.Task{
		{ID: 1, Title: "Good", DueAt: &due, Recurrence: domain.RecurrenceDaily},
		{ID: 2, Title: "Bad", DueAt: &due, Recurrence: domain.RecurrenceDaily},
	}

	db := &mocks.DatabaseMock{
		ListTasksForRolloverFunc: func(ctx context.Context) ([]*domain.Task, error) {
			return tasks, nil
		},
		RolloverTaskFunc: func(ctx context.Context, task *domain.Task, nextDue time.Time) (*domain.Task, error) {
			if task.ID == 2 {
				return nil, errors.New("locked")
			}
			return task, nil
		},
	}

	jobs := NewJobs(db, &mocks.ParserMock{}, &mocks.SummarizerMock{}, &mocks.NotifierMock{}, 2)
	err := jobs.TaskRollover(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Len(t, db.RolloverTaskCalls(), 2, "failure of one task does not stop the others")
}

func TestFormatNewsDigest(t *testing.T) {
	items := []*domain.NewsItem{
		{Title: "First", FeedTitle: "Feed A", Summary: "summary one", Link: "https://x/1"},
		{Title: "Second", Summary: "summary two"},
	}
	digest := formatNewsDigest(items)
	assert.Contains(t, digest, "2 new item(s)")
	assert.Contains(t, digest, "**First** · Feed A")
	assert.Contains(t, digest, "<https://x/1>")
	assert.Contains(t, digest, "**Second**")
}

func TestFormatTaskDigest_NoDueDateCountsAsToday(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	tasks := []*domain.Task{{ID: 1, Title: "Untimed"}}
	digest := formatTaskDigest(tasks, now, "")
	assert.Contains(t, digest, "DUE TODAY")
	assert.Contains(t, digest, "Untimed")
	assert.NotContains(t, digest, "OVERDUE")
	assert.NotContains(t, digest, "<@")
}
