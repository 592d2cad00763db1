package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"deskhub/pkg/config"
	"deskhub/pkg/domain"
	"deskhub/pkg/feed"
	"deskhub/pkg/notify"
	"deskhub/pkg/quota"
	"deskhub/pkg/repository"
	"deskhub/pkg/scheduler"
	"deskhub/pkg/service"
	"deskhub/pkg/summary"
	"deskhub/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"deskhub.yml" description:"config file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg := loadConfig(opts.Config)
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	setupLog(opts.Debug, cfg.Summary.APIKey)

	log.Printf("[INFO] starting deskhub version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] deskhub failed: %v", err)
		cancel()
		os.Exit(1)
	}

	cancel()
	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, debug bool) error {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("create repositories: %w", err)
	}
	defer func() {
		if closeErr := repos.Close(); closeErr != nil {
			log.Printf("[WARN] failed to close database: %v", closeErr)
		}
	}()

	tracker, err := quota.NewTracker(ctx, "summary", cfg.Summary.DailyLimit, repos.Quota,
		quota.WithLimitSetting(repos.Setting, domain.SettingQuotaLimit))
	if err != nil {
		return fmt.Errorf("create quota tracker: %w", err)
	}

	feedParser := feed.NewParser(cfg.Feed.FetchTimeout, cfg.Feed.UserAgent)
	summarizer := summary.NewSummarizer(cfg.Summary, tracker, repos.Setting)
	notifier := notify.NewClient(notify.Config{
		ChunkLimit: cfg.Webhook.ChunkLimit,
		MaxRetries: cfg.Webhook.MaxRetries,
		RatePerSec: cfg.Webhook.RatePerSec,
		Timeout:    cfg.Webhook.Timeout,
		Username:   cfg.Webhook.Username,
	})

	schedulerService := service.NewSchedulerService(repos.Feed, repos.News, repos.Task, repos.Setting)
	jobs := scheduler.NewJobs(schedulerService, feedParser, summarizer, notifier, cfg.Schedule.MaxWorkers)

	remindTime, err := config.ParseTimeOfDay(cfg.Schedule.RemindTime)
	if err != nil {
		return fmt.Errorf("parse remind time: %w", err)
	}
	rolloverTime, err := config.ParseTimeOfDay(cfg.Schedule.RolloverTime)
	if err != nil {
		return fmt.Errorf("parse rollover time: %w", err)
	}

	sched := scheduler.NewScheduler(cfg.Schedule.TickInterval)
	sched.AddIntervalJob(scheduler.JobNewsFetch, cfg.Schedule.NewsInterval, jobs.NewsFetch)
	sched.AddIntervalJob(scheduler.JobNewsSend, cfg.Schedule.SendInterval, jobs.NewsSend)
	sched.AddDailyJob(scheduler.JobTaskRemind, domain.SettingRemindTime, remindTime, schedulerService, jobs.TaskRemind)
	sched.AddDailyJob(scheduler.JobTaskRollover, domain.SettingRolloverTime, rolloverTime, schedulerService, jobs.TaskRollover)

	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, server.NewRepositoryAdapter(repos), sched, tracker, revision, debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// loadConfig reads the config file, falling back to defaults when missing
func loadConfig(path string) *config.Config {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("[WARN] config file %s not found, using defaults", path)
		return config.Default()
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("[ERROR] failed to load config: %v", err)
		os.Exit(1)
	}
	return cfg
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
