// Package server exposes the HTTP API the desktop foreground talks to: job
// statuses and manual triggers, stored news, games, tasks, feeds, settings
// and quota usage.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"deskhub/pkg/domain"
	"deskhub/pkg/scheduler"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/quota.go -pkg mocks -skip-ensure -fmt goimports . Quota

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	db        Database
	scheduler Scheduler
	quota     Quota
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for server operations
type Database interface {
	GetFeeds(ctx context.Context, enabledOnly bool) ([]*domain.Feed, error)
	CreateFeed(ctx context.Context, feed *domain.Feed) error
	UpdateFeedStatus(ctx context.Context, feedID int64, enabled bool) error
	DeleteFeed(ctx context.Context, feedID int64) error

	ListNews(ctx context.Context, limit int) ([]*domain.NewsItem, error)

	ListTasks(ctx context.Context, includeCompleted bool) ([]*domain.Task, error)
	CreateTask(ctx context.Context, task *domain.Task) error
	CompleteTask(ctx context.Context, id int64) error
	DeleteTask(ctx context.Context, id int64) error

	ListGames(ctx context.Context, platform domain.Platform) ([]*domain.GameRecord, error)
	ListIncompleteGames(ctx context.Context) ([]*domain.GameRecord, error)
	UpsertGame(ctx context.Context, game *domain.GameRecord) error
	SetGameCompleted(ctx context.Context, id int64, completed bool) error

	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Scheduler interface for job status and manual triggers
type Scheduler interface {
	Statuses() []scheduler.JobStatus
	RunJobNow(ctx context.Context, name string) error
}

// Quota reports external-API budget usage
type Quota interface {
	Remaining() int
	Limit() int
	UsageRatio() float64
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, sched Scheduler, quota Quota, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		db:        db,
		scheduler: sched,
		quota:     quota,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("deskhub", "deskhub", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /jobs", s.jobsHandler)
		r.HandleFunc("POST /jobs/{name}/run", s.runJobHandler)

		r.HandleFunc("GET /news", s.listNewsHandler)

		r.HandleFunc("GET /feeds", s.listFeedsHandler)
		r.HandleFunc("POST /feeds", s.createFeedHandler)
		r.HandleFunc("POST /feeds/{id}/enable", s.enableFeedHandler)
		r.HandleFunc("POST /feeds/{id}/disable", s.disableFeedHandler)
		r.HandleFunc("DELETE /feeds/{id}", s.deleteFeedHandler)

		r.HandleFunc("GET /tasks", s.listTasksHandler)
		r.HandleFunc("POST /tasks", s.createTaskHandler)
		r.HandleFunc("POST /tasks/{id}/complete", s.completeTaskHandler)
		r.HandleFunc("DELETE /tasks/{id}", s.deleteTaskHandler)

		r.HandleFunc("GET /games", s.listGamesHandler)
		r.HandleFunc("POST /games", s.upsertGameHandler)
		r.HandleFunc("POST /games/{id}/completed", s.setGameCompletedHandler)

		r.HandleFunc("GET /settings/{key}", s.getSettingHandler)
		r.HandleFunc("PUT /settings/{key}", s.setSettingHandler)

		r.HandleFunc("GET /quota", s.quotaHandler)
	})
}
