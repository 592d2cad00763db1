package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deskhub.yml")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s

database:
  dsn: "file:test.db"
  max_open_conns: 20

schedule:
  tick_interval: 30s
  news_interval: 2h
  remind_time: "08:30"

feed:
  fetch_timeout: 15s
  user_agent: "custom-agent/2.0"

webhook:
  chunk_limit: 1500
  username: "my-bot"

summary:
  endpoint: "https://api.example.com/v1"
  api_key: "secret-key"
  model: "gpt-4o"
  max_chars: 400
  daily_limit: 100
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:test.db", cfg.Database.DSN)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, 30*time.Second, cfg.Schedule.TickInterval)
	assert.Equal(t, 2*time.Hour, cfg.Schedule.NewsInterval)
	assert.Equal(t, "08:30", cfg.Schedule.RemindTime)
	assert.Equal(t, 15*time.Second, cfg.Feed.FetchTimeout)
	assert.Equal(t, "custom-agent/2.0", cfg.Feed.UserAgent)
	assert.Equal(t, 1500, cfg.Webhook.ChunkLimit)
	assert.Equal(t, "my-bot", cfg.Webhook.Username)
	assert.Equal(t, "https://api.example.com/v1", cfg.Summary.Endpoint)
	assert.Equal(t, "secret-key", cfg.Summary.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Summary.Model)
	assert.Equal(t, 400, cfg.Summary.MaxChars)
	assert.Equal(t, 100, cfg.Summary.DailyLimit)

	// unset values fall back to defaults
	assert.Equal(t, time.Hour, cfg.Schedule.SendInterval)
	assert.Equal(t, "00:00", cfg.Schedule.RolloverTime)
	assert.Equal(t, 3, cfg.Webhook.MaxRetries)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Contains(t, cfg.Database.DSN, "deskhub.db")
	assert.Equal(t, time.Minute, cfg.Schedule.TickInterval)
	assert.Equal(t, time.Hour, cfg.Schedule.NewsInterval)
	assert.Equal(t, "09:00", cfg.Schedule.RemindTime)
	assert.Equal(t, "00:00", cfg.Schedule.RolloverTime)
	assert.Equal(t, 5, cfg.Schedule.MaxWorkers)
	assert.Equal(t, 30*time.Second, cfg.Feed.FetchTimeout)
	assert.Equal(t, "deskhub/1.0", cfg.Feed.UserAgent)
	assert.Equal(t, 2000, cfg.Webhook.ChunkLimit)
	assert.Equal(t, "deskhub", cfg.Webhook.Username)
	assert.Equal(t, "gpt-4o-mini", cfg.Summary.Model)
	assert.Equal(t, 300, cfg.Summary.MaxChars)
	assert.Equal(t, 200, cfg.Summary.DailyLimit)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_API_KEY", "key-from-env")
	t.Setenv("TEST_LISTEN", ":7070")

	path := writeConfig(t, `
server:
  listen: "${TEST_LISTEN}"
summary:
  api_key: "${TEST_API_KEY}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Listen)
	assert.Equal(t, "key-from-env", cfg.Summary.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/deskhub.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, "server:\n  listen: [broken")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("bad remind time", func(t *testing.T) {
		path := writeConfig(t, "schedule:\n  remind_time: \"25:99\"")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "remind_time")
	})

	t.Run("tick interval too short", func(t *testing.T) {
		path := writeConfig(t, "schedule:\n  tick_interval: 100ms")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tick_interval")
	})

	t.Run("chunk limit too small", func(t *testing.T) {
		path := writeConfig(t, "webhook:\n  chunk_limit: 5")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chunk_limit")
	})

	t.Run("temperature out of range", func(t *testing.T) {
		path := writeConfig(t, "summary:\n  temperature: 3.5")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "temperature")
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, time.Minute, cfg.Schedule.TickInterval)
	assert.Equal(t, 200, cfg.Summary.DailyLimit)
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{input: "09:00", want: TimeOfDay{Hour: 9, Minute: 0}},
		{input: "00:00", want: TimeOfDay{Hour: 0, Minute: 0}},
		{input: "23:59", want: TimeOfDay{Hour: 23, Minute: 59}},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "-1:30", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetServerConfig(t *testing.T) {
	cfg := Default()
	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":8080", listen)
	assert.Equal(t, 30*time.Second, timeout)
}
