package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskhub/pkg/domain"
	"deskhub/server/mocks"
)

func TestServer_runJobHandler(t *testing.T) {
	t.Run("job triggered", func(t *testing.T) {
		sched := &mocks.SchedulerMock{
			RunJobNowFunc: func(ctx context.Context, name string) error {
				assert.Equal(t, "news_fetch", name)
				return nil
			},
		}
		srv := New(testConfig(), &mocks.DatabaseMock{}, sched, testQuota(), "test", false)

		req := httptest.NewRequest("POST", "/api/v1/jobs/news_fetch/run", http.NoBody)
		req.SetPathValue("name", "news_fetch")
		w := httptest.NewRecorder()

		srv.runJobHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, sched.RunJobNowCalls(), 1)
	})

	t.Run("job busy", func(t *testing.T) {
		sched := &mocks.SchedulerMock{
			RunJobNowFunc: func(ctx context.Context, name string) error {
				return fmt.Errorf("job %q already running", name)
			},
		}
		srv := New(testConfig(), &mocks.DatabaseMock{}, sched, testQuota(), "test", false)

		req := httptest.NewRequest("POST", "/api/v1/jobs/news_fetch/run", http.NoBody)
		req.SetPathValue("name", "news_fetch")
		w := httptest.NewRecorder()

		srv.runJobHandler(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "already running")
	})
}

func TestServer_listNewsHandler(t *testing.T) {
	database := &mocks.DatabaseMock{
		ListNewsFunc: func(ctx context.Context, limit int) ([]*domain.NewsItem, error) {
			assert.Equal(t, 10, limit)
			return []*domain.NewsItem{
				{ID: 1, Title: "First Article", FeedTitle: "Tech Feed"},
				{ID: 2, Title: "Second Article", FeedTitle: "Tech Feed"},
			}, nil
		},
	}
	srv := New(testConfig(), database, &mocks.SchedulerMock{}, testQuota(), "test", false)

	req := httptest.NewRequest("GET", "/api/v1/news?limit=10", http.NoBody)
	w := httptest.NewRecorder()

	srv.listNewsHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "First Article")
	assert.Contains(t, w.Body.String(), "Second Article")
}

func TestServer_listNewsHandler_defaultLimit(t *testing.T) {
	database := &mocks.DatabaseMock{
		ListNewsFunc: func(ctx context.Context, limit int) ([]*domain.NewsItem, error) {
			assert.Equal(t, 50, limit)
			return []*domain.NewsItem{}, nil
		},
	}
	srv := New(testConfig(), database, &mocks.SchedulerMock{}, testQuota(), "test", false)

	req := httptest.NewRequest("GET", "/api/v1/news", http.NoBody)
	w := httptest.NewRecorder()

	srv.listNewsHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, database.ListNewsCalls(), 1)
}

func TestServer_createFeedHandler(t *testing.T) {
	t.Run("valid feed", func(t *testing.T) {
		database := &mocks.DatabaseMock{
			CreateFeedFunc: func(ctx context.Context, feed *domain.Feed) error {
				assert.Equal(t, "https://example.com/rss", feed.URL)
				assert.Equal(t, "Example", feed.Title)
				assert.True(t, feed.Enabled)
				feed.ID = 7
				return nil
			},
		}
		srv := New(testConfig(), database, &mocks.SchedulerMock{}, testQuota(), "test", false)

		body := strings.NewReader(`{"url":"https://example.com/rss","title":"Example"}`)
		req := httptest.NewRequest("POST", "/api/v1/feeds", body)
		w := httptest.NewRecorder()

		srv.createFeedHandler(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Len(t, database.CreateFeedCalls(), 1)
	})

	t.Run("missing url", func(t *testing.T) {
		srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.SchedulerMock{}, testQuota(), "test", false)

		req := httptest.NewRequest("POST", "/api/v1/feeds", strings.NewReader(`{"title":"no url"}`))
		w := httptest.NewRecorder()

		srv.createFeedHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "feed URL is required")
	})

	t.Run("bad json", func(t *testing.T) {
		srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.SchedulerMock{}, testQuota(), "test", false)

		req := httptest.NewRequest("POST", "/api/v1/feeds", strings.NewReader("not json"))
		w := httptest.NewRecorder()

		srv.createFeedHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_feedStatusHandlers(t *testing.T) {
	database := &mocks.DatabaseMock{
		UpdateFeedStatusFunc: func(ctx context.Context, feedID int64, enabled bool) error {
			assert.Equal(t, int64(5), feedID)
			return nil
		},
	}
	srv := New(testConfig(), database, &mocks.SchedulerMock{}, testQuota(), "test", false)

	req := httptest.NewRequest("POST", "/api/v1/feeds/5/disable", http.NoBody)
	req.SetPathValue("id", "5")
	w := httptest.NewRecorder()

	srv.disableFeedHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, database.UpdateFeedStatusCalls(), 1)
	assert.False(t, database.UpdateFeedStatusCalls()[0].Enabled)

	req = httptest.NewRequest("POST", "/api/v1/feeds/5/enable", http.NoBody)
	req.SetPathValue("id", "5")
	w = httptest.NewRecorder()

	srv.enableFeedHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, database.UpdateFeedStatusCalls(), 2)
	assert.True(t, database.UpdateFeedStatusCalls()[1].Enabled)
}

func TestServer_deleteFeedHandler(t *testing.T) {
	database := &mocks.DatabaseMock{
		DeleteFeedFunc: func(ctx context.Context, feedID int64) error {
			assert.Equal(t, int64(3), feedID)
			return nil
		},
	}
	srv := New(testConfig(), database, &mocks.SchedulerMock{}, testQuota(), "test", false)

	req := httptest.NewRequest("DELETE", "/api/v1/feeds/3", http.NoBody)
	req.SetPathValue("id", "3")
	w := httptest.NewRecorder()

	srv.deleteFeedHandler(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Len(t, database.DeleteFeedCalls(), 1)
}

func TestServer_deleteFeedHandler_badID(t *testing.T) {
	srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.SchedulerMock{}, testQuota(), "test", false)

	req := httptest.NewRequest("DELETE", "/api/v1/feeds/abc", http.NoBody)
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()

	srv.deleteFeedHandler(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid id")
}

func TestServer_createTaskHandler(t *testing.T) {
	t.Run("task with due date", func(t *testing.T) {
		database := &mocks.DatabaseMock{
			CreateTaskFunc: func(ctx context.Context, task *domain.Task) error {
				assert.Equal(t, "Pay rent", task.Title)
				assert.Equal(t, domain.PriorityHigh, task.Priority)
				assert.Equal(t, domain.RecurrenceMonthly, task.Recurrence)
				require.NotNil(t, task.DueAt)
				assert.Equal(t, 2026, task.DueAt.Year())
				task.ID = 1
				return nil
			},
		}
		srv := New(testConfig(), database, &mocks.SchedulerMock{}, testQuota(), "test", false)

		body := strings.NewReader(`{"title":"Pay rent","due_at":"2026-09-01T09:00:00Z","priority":"high","recurrence":"monthly"}`)
		req := httptest.NewRequest("POST", "/api/v1/tasks", body)
		w := httptest.NewRecorder()

		srv.createTaskHandler(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Len(t, database.CreateTaskCalls(), 1)
	})

	t.Run("missing title", func(t *testing.T) {
		srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.SchedulerMock{}, testQuota(), "test", false)

		req := httptest.NewRequest("POST", "/api/v1/tasks", strings.NewReader(`{"description":"no title"}`))
		w := httptest.NewRecorder()

		srv.createTaskHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "task title is required")
	})

	t.Run("bad due date", func(t *testing.T) {
		srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.SchedulerMock{}, testQuota(), "test", false)

		body := strings.NewReader(`{"title":"Pay rent","due_at":"tomorrow"}`)
		req := httptest.NewRequest("POST", "/api/v1/tasks", body)
		w := httptest.NewRecorder()

		srv.createTaskHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "RFC3339")
	})
}

func TestServer_completeTaskHandler(t *testing.T) {
	database := &mocks.DatabaseMock{
		CompleteTaskFunc: func(ctx context.Context, id int64) error {
			assert.Equal(t, int64(9), id)
			return nil
		},
	}
	srv := New(testConfig(), database, &mocks.SchedulerMock{}, testQuota(), "test", false)

	req := httptest.NewRequest("POST", "/api/v1/tasks/9/complete", http.NoBody)
	req.SetPathValue("id", "9")
	w := httptest.NewRecorder()

	srv.completeTaskHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, database.CompleteTaskCalls(), 1)
}

func TestServer_listTasksHandler(t *testing.T) {
	due := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	database := &mocks.DatabaseMock{
		ListTasksFunc: func(ctx context.Context, includeCompleted bool) ([]*domain.Task, error) {
			assert.True(t, includeCompleted)
			return []*domain.Task{{ID: 1, Title: "Pay rent", DueAt: &due}}, nil
		},
	}
	srv := New(testConfig(), database, &mocks.SchedulerMock{}, testQuota(), "test", false)

	req := httptest.NewRequest("GET", "/api/v1/tasks?all=true", http.NoBody)
	w := httptest.NewRecorder()

	srv.listTasksHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pay rent")
}

func TestServer_listGamesHandler(t *testing.T) {
	database := &mocks.DatabaseMock{
		ListGamesFunc: func(ctx context.Context, platform domain.Platform) ([]*domain.GameRecord, error) {
			assert.Equal(t, domain.PlatformSteam, platform)
			return []*domain.GameRecord{{ID: 1, Title: "Half-Life", Platform: domain.PlatformSteam}}, nil
		},
	}
	srv := New(testConfig(), database, &mocks.SchedulerMock{}, testQuota(), "test", false)

	req := httptest.NewRequest("GET", "/api/v1/games?platform=steam", http.NoBody)
	w := httptest.NewRecorder()

	srv.listGamesHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Half-Life")
}

func TestServer_listGamesHandler_incomplete(t *testing.T) {
	database := &mocks.DatabaseMock{
		ListIncompleteGamesFunc: func(ctx context.Context) ([]*domain.GameRecord, error) {
			return []*domain.GameRecord{{ID: 2, Title: "Hades", Platform: domain.PlatformEpic}}, nil
		},
	}
	srv := New(testConfig(), database, &mocks.SchedulerMock{}, testQuota(), "test", false)

	req := httptest.NewRequest("GET", "/api/v1/games?incomplete=true", http.NoBody)
	w := httptest.NewRecorder()

	srv.listGamesHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hades")
	assert.Len(t, database.ListIncompleteGamesCalls(), 1)
}

func TestServer_upsertGameHandler(t *testing.T) {
	t.Run("valid game", func(t *testing.T) {
		database := &mocks.DatabaseMock{
			UpsertGameFunc: func(ctx context.Context, game *domain.GameRecord) error {
				assert.Equal(t, domain.PlatformSteam, game.Platform)
				assert.Equal(t, "70", game.ExternalID)
				assert.Equal(t, "Half-Life", game.Title)
				assert.Equal(t, 320, game.PlaytimeMinutes)
				game.ID = 11
				return nil
			},
		}
		srv := New(testConfig(), database, &mocks.SchedulerMock{}, testQuota(), "test", false)

		body := strings.NewReader(`{"platform":"steam","external_id":"70","title":"Half-Life","playtime_minutes":320}`)
		req := httptest.NewRequest("POST", "/api/v1/games", body)
		w := httptest.NewRecorder()

		srv.upsertGameHandler(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Len(t, database.UpsertGameCalls(), 1)
	})

	t.Run("missing identity", func(t *testing.T) {
		srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.SchedulerMock{}, testQuota(), "test", false)

		req := httptest.NewRequest("POST", "/api/v1/games", strings.NewReader(`{"title":"no identity"}`))
		w := httptest.NewRecorder()

		srv.upsertGameHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "platform and external_id are required")
	})

	t.Run("bad json", func(t *testing.T) {
		srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.SchedulerMock{}, testQuota(), "test", false)

		req := httptest.NewRequest("POST", "/api/v1/games", strings.NewReader("not json"))
		w := httptest.NewRecorder()

		srv.upsertGameHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_setGameCompletedHandler(t *testing.T) {
	database := &mocks.DatabaseMock{
		SetGameCompletedFunc: func(ctx context.Context, id int64, completed bool) error {
			assert.Equal(t, int64(4), id)
			assert.True(t, completed)
			return nil
		},
	}
	srv := New(testConfig(), database, &mocks.SchedulerMock{}, testQuota(), "test", false)

	req := httptest.NewRequest("POST", "/api/v1/games/4/completed", strings.NewReader(`{"completed":true}`))
	req.SetPathValue("id", "4")
	w := httptest.NewRecorder()

	srv.setGameCompletedHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, database.SetGameCompletedCalls(), 1)
}

func TestServer_settingsHandlers(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetSettingFunc: func(ctx context.Context, key string) (string, error) {
			assert.Equal(t, "webhook_url", key)
			return "https://hooks.example.com/x", nil
		},
		SetSettingFunc: func(ctx context.Context, key, value string) error {
			assert.Equal(t, "remind_time", key)
			assert.Equal(t, "08:30", value)
			return nil
		},
	}
	srv := New(testConfig(), database, &mocks.SchedulerMock{}, testQuota(), "test", false)

	req := httptest.NewRequest("GET", "/api/v1/settings/webhook_url", http.NoBody)
	req.SetPathValue("key", "webhook_url")
	w := httptest.NewRecorder()

	srv.getSettingHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://hooks.example.com/x")

	req = httptest.NewRequest("PUT", "/api/v1/settings/remind_time", strings.NewReader(`{"value":"08:30"}`))
	req.SetPathValue("key", "remind_time")
	w = httptest.NewRecorder()

	srv.setSettingHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, database.SetSettingCalls(), 1)
}

func TestServer_quotaHandler(t *testing.T) {
	srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.SchedulerMock{}, testQuota(), "test", false)

	req := httptest.NewRequest("GET", "/api/v1/quota", http.NoBody)
	w := httptest.NewRecorder()

	srv.quotaHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.InDelta(t, 42, result["remaining"], 0.001)
	assert.InDelta(t, 50, result["limit"], 0.001)
	assert.InDelta(t, 0.16, result["usage"], 0.001)
}

func TestServer_listFeedsHandler_error(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetFeedsFunc: func(ctx context.Context, enabledOnly bool) ([]*domain.Feed, error) {
			return nil, fmt.Errorf("db down")
		},
	}
	srv := New(testConfig(), database, &mocks.SchedulerMock{}, testQuota(), "test", false)

	req := httptest.NewRequest("GET", "/api/v1/feeds", http.NoBody)
	w := httptest.NewRecorder()

	srv.listFeedsHandler(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "db down")
}
