package server

import (
	"context"

	"deskhub/pkg/domain"
	"deskhub/pkg/repository"
)

// RepositoryAdapter adapts repositories to server.Database interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// GetFeeds returns feeds from repository
func (r *RepositoryAdapter) GetFeeds(ctx context.Context, enabledOnly bool) ([]*domain.Feed, error) {
	return r.repos.Feed.GetFeeds(ctx, enabledOnly)
}

// CreateFeed adds a feed source
func (r *RepositoryAdapter) CreateFeed(ctx context.Context, feed *domain.Feed) error {
	return r.repos.Feed.CreateFeed(ctx, feed)
}

// UpdateFeedStatus enables or disables a feed
func (r *RepositoryAdapter) UpdateFeedStatus(ctx context.Context, feedID int64, enabled bool) error {
	return r.repos.Feed.UpdateFeedStatus(ctx, feedID, enabled)
}

// DeleteFeed removes a feed and its news items
func (r *RepositoryAdapter) DeleteFeed(ctx context.Context, feedID int64) error {
	return r.repos.Feed.DeleteFeed(ctx, feedID)
}

// ListNews returns recent news items
func (r *RepositoryAdapter) ListNews(ctx context.Context, limit int) ([]*domain.NewsItem, error) {
	return r.repos.News.ListNews(ctx, limit)
}

// ListTasks returns tasks
func (r *RepositoryAdapter) ListTasks(ctx context.Context, includeCompleted bool) ([]*domain.Task, error) {
	return r.repos.Task.ListTasks(ctx, includeCompleted)
}

// CreateTask adds a task
func (r *RepositoryAdapter) CreateTask(ctx context.Context, task *domain.Task) error {
	return r.repos.Task.CreateTask(ctx, task)
}

// CompleteTask marks a task done
func (r *RepositoryAdapter) CompleteTask(ctx context.Context, id int64) error {
	return r.repos.Task.CompleteTask(ctx, id)
}

// DeleteTask removes a task
func (r *RepositoryAdapter) DeleteTask(ctx context.Context, id int64) error {
	return r.repos.Task.DeleteTask(ctx, id)
}

// ListGames returns the game library
func (r *RepositoryAdapter) ListGames(ctx context.Context, platform domain.Platform) ([]*domain.GameRecord, error) {
	return r.repos.Game.ListGames(ctx, platform)
}

// ListIncompleteGames returns games not yet finished
func (r *RepositoryAdapter) ListIncompleteGames(ctx context.Context) ([]*domain.GameRecord, error) {
	return r.repos.Game.ListIncompleteGames(ctx)
}

// UpsertGame inserts or updates a game keyed by platform and external id
func (r *RepositoryAdapter) UpsertGame(ctx context.Context, game *domain.GameRecord) error {
	return r.repos.Game.UpsertGame(ctx, game)
}

// SetGameCompleted toggles the user-controlled completed flag
func (r *RepositoryAdapter) SetGameCompleted(ctx context.Context, id int64, completed bool) error {
	return r.repos.Game.SetGameCompleted(ctx, id, completed)
}

// GetSetting reads a single setting value
func (r *RepositoryAdapter) GetSetting(ctx context.Context, key string) (string, error) {
	return r.repos.Setting.GetSetting(ctx, key)
}

// SetSetting stores a single setting value
func (r *RepositoryAdapter) SetSetting(ctx context.Context, key, value string) error {
	return r.repos.Setting.SetSetting(ctx, key, value)
}
