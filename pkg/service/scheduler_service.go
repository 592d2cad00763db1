// Package service provides unified repository access for the background jobs.
package service

import (
	"context"
	"time"

	"deskhub/pkg/domain"
	"deskhub/pkg/repository"
)

// SchedulerService provides unified access to repositories for the scheduler
type SchedulerService struct {
	feedRepo    *repository.FeedRepository
	newsRepo    *repository.NewsRepository
	taskRepo    *repository.TaskRepository
	settingRepo *repository.SettingRepository
}

// NewSchedulerService creates a new scheduler service
func NewSchedulerService(feedRepo *repository.FeedRepository, newsRepo *repository.NewsRepository, taskRepo *repository.TaskRepository, settingRepo *repository.SettingRepository) *SchedulerService {
	return &SchedulerService{
		feedRepo:    feedRepo,
		newsRepo:    newsRepo,
		taskRepo:    taskRepo,
		settingRepo: settingRepo,
	}
}

// Feed management methods

func (s *SchedulerService) GetFeeds(ctx context.Context, enabledOnly bool) ([]*domain.Feed, error) {
	return s.feedRepo.GetFeeds(ctx, enabledOnly)
}

func (s *SchedulerService) UpdateFeedFetched(ctx context.Context, feedID int64) error {
	return s.feedRepo.UpdateFeedFetched(ctx, feedID)
}

func (s *SchedulerService) UpdateFeedError(ctx context.Context, feedID int64, errMsg string) error {
	return s.feedRepo.UpdateFeedError(ctx, feedID, errMsg)
}

// News processing methods

func (s *SchedulerService) NewsExists(ctx context.Context, feedID int64, guid string) (bool, error) {
	return s.newsRepo.NewsExists(ctx, feedID, guid)
}

func (s *SchedulerService) UpsertNews(ctx context.Context, item *domain.NewsItem) (bool, error) {
	return s.newsRepo.UpsertNews(ctx, item)
}

func (s *SchedulerService) ListUnsentNews(ctx context.Context, limit int) ([]*domain.NewsItem, error) {
	return s.newsRepo.ListUnsentNews(ctx, limit)
}

func (s *SchedulerService) MarkNewsSent(ctx context.Context, ids []int64) error {
	return s.newsRepo.MarkNewsSent(ctx, ids)
}

// Task methods

func (s *SchedulerService) ListDueTasks(ctx context.Context, asOf time.Time) ([]*domain.Task, error) {
	return s.taskRepo.ListDueTasks(ctx, asOf)
}

func (s *SchedulerService) ListTasksForRollover(ctx context.Context) ([]*domain.Task, error) {
	return s.taskRepo.ListTasksForRollover(ctx)
}

func (s *SchedulerService) RolloverTask(ctx context.Context, task *domain.Task, nextDue time.Time) (*domain.Task, error) {
	return s.taskRepo.RolloverTask(ctx, task, nextDue)
}

func (s *SchedulerService) MarkTasksReminded(ctx context.Context, ids []int64, at time.Time) error {
	return s.taskRepo.MarkTasksReminded(ctx, ids, at)
}

// Setting methods

func (s *SchedulerService) GetSetting(ctx context.Context, key string) (string, error) {
	return s.settingRepo.GetSetting(ctx, key)
}

func (s *SchedulerService) SetSetting(ctx context.Context, key, value string) error {
	return s.settingRepo.SetSetting(ctx, key, value)
}
