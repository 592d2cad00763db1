package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration. Only infrastructure settings
// live here; runtime settings (webhook URL, API key, schedule times) are kept
// in the database so edits apply without restart.
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"server"`

	Database struct {
		DSN             string `yaml:"dsn"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
	} `yaml:"database"`

	Schedule struct {
		TickInterval time.Duration `yaml:"tick_interval"`
		NewsInterval time.Duration `yaml:"news_interval"`
		SendInterval time.Duration `yaml:"send_interval"`
		RemindTime   string        `yaml:"remind_time"`
		RolloverTime string        `yaml:"rollover_time"`
		MaxWorkers   int           `yaml:"max_workers"`
	} `yaml:"schedule"`

	Feed struct {
		FetchTimeout time.Duration `yaml:"fetch_timeout"`
		UserAgent    string        `yaml:"user_agent"`
	} `yaml:"feed"`

	Webhook WebhookConfig `yaml:"webhook"`

	Summary SummaryConfig `yaml:"summary"`
}

// WebhookConfig holds outbound webhook delivery settings
type WebhookConfig struct {
	ChunkLimit int           `yaml:"chunk_limit"`
	MaxRetries int           `yaml:"max_retries"`
	RatePerSec float64       `yaml:"rate_per_sec"`
	Timeout    time.Duration `yaml:"timeout"`
	Username   string        `yaml:"username"`
}

// SummaryConfig holds AI summarization settings for an OpenAI-compatible endpoint
type SummaryConfig struct {
	Endpoint    string        `yaml:"endpoint"`
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model"`
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxChars    int           `yaml:"max_chars"`
	DailyLimit  int           `yaml:"daily_limit"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used when no
// config file is given
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

func setDefaults(cfg *Config) {
	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:deskhub.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for schedule
	if cfg.Schedule.TickInterval == 0 {
		cfg.Schedule.TickInterval = time.Minute
	}
	if cfg.Schedule.NewsInterval == 0 {
		cfg.Schedule.NewsInterval = time.Hour
	}
	if cfg.Schedule.SendInterval == 0 {
		cfg.Schedule.SendInterval = time.Hour
	}
	if cfg.Schedule.RemindTime == "" {
		cfg.Schedule.RemindTime = "09:00"
	}
	if cfg.Schedule.RolloverTime == "" {
		cfg.Schedule.RolloverTime = "00:00"
	}
	if cfg.Schedule.MaxWorkers == 0 {
		cfg.Schedule.MaxWorkers = 5
	}

	// set defaults for feed fetching
	if cfg.Feed.FetchTimeout == 0 {
		cfg.Feed.FetchTimeout = 30 * time.Second
	}
	if cfg.Feed.UserAgent == "" {
		cfg.Feed.UserAgent = "deskhub/1.0"
	}

	// set defaults for webhook delivery
	if cfg.Webhook.ChunkLimit == 0 {
		cfg.Webhook.ChunkLimit = 2000
	}
	if cfg.Webhook.MaxRetries == 0 {
		cfg.Webhook.MaxRetries = 3
	}
	if cfg.Webhook.RatePerSec == 0 {
		cfg.Webhook.RatePerSec = 1
	}
	if cfg.Webhook.Timeout == 0 {
		cfg.Webhook.Timeout = 10 * time.Second
	}
	if cfg.Webhook.Username == "" {
		cfg.Webhook.Username = "deskhub"
	}

	// set defaults for summarization
	if cfg.Summary.Model == "" {
		cfg.Summary.Model = "gpt-4o-mini"
	}
	if cfg.Summary.Temperature == 0 {
		cfg.Summary.Temperature = 0.3
	}
	if cfg.Summary.MaxTokens == 0 {
		cfg.Summary.MaxTokens = 300
	}
	if cfg.Summary.Timeout == 0 {
		cfg.Summary.Timeout = 10 * time.Second
	}
	if cfg.Summary.MaxChars == 0 {
		cfg.Summary.MaxChars = 300
	}
	if cfg.Summary.DailyLimit == 0 {
		cfg.Summary.DailyLimit = 200
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Schedule.TickInterval < time.Second {
		return fmt.Errorf("schedule.tick_interval must be at least 1 second")
	}
	if _, err := ParseTimeOfDay(cfg.Schedule.RemindTime); err != nil {
		return fmt.Errorf("schedule.remind_time: %w", err)
	}
	if _, err := ParseTimeOfDay(cfg.Schedule.RolloverTime); err != nil {
		return fmt.Errorf("schedule.rollover_time: %w", err)
	}
	if cfg.Webhook.ChunkLimit < 16 {
		return fmt.Errorf("webhook.chunk_limit must be at least 16")
	}
	if cfg.Summary.Temperature < 0 || cfg.Summary.Temperature > 2 {
		return fmt.Errorf("summary.temperature must be between 0 and 2")
	}
	return nil
}

// TimeOfDay is a wall-clock HH:MM trigger time
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a "HH:MM" string
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var tod TimeOfDay
	if _, err := fmt.Sscanf(s, "%d:%d", &tod.Hour, &tod.Minute); err != nil {
		return tod, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	if tod.Hour < 0 || tod.Hour > 23 || tod.Minute < 0 || tod.Minute > 59 {
		return tod, fmt.Errorf("time of day %q out of range", s)
	}
	return tod, nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
