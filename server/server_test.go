package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskhub/pkg/scheduler"
	"deskhub/server/mocks"
)

func testConfig() *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return ":8080", 30 * time.Second
		},
	}
}

func testQuota() *mocks.QuotaMock {
	return &mocks.QuotaMock{
		RemainingFunc:  func() int { return 42 },
		LimitFunc:      func() int { return 50 },
		UsageRatioFunc: func() float64 { return 0.16 },
	}
}

func TestServer_New(t *testing.T) {
	srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.SchedulerMock{}, testQuota(), "1.0.0", false)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	err = listener.Close()
	require.NoError(t, err)

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
		},
	}

	srv := New(cfg, &mocks.DatabaseMock{}, &mocks.SchedulerMock{}, testQuota(), "1.0.0", false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start server in background
	go func() {
		_ = srv.Run(ctx)
	}()

	// wait for server to start
	time.Sleep(100 * time.Millisecond)

	// make test request
	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	// shutdown server
	cancel()
	time.Sleep(100 * time.Millisecond)
}

func TestServer_statusHandler(t *testing.T) {
	sched := &mocks.SchedulerMock{
		StatusesFunc: func() []scheduler.JobStatus {
			return []scheduler.JobStatus{{Name: "news_fetch", State: scheduler.StateIdle, Runs: 3}}
		},
	}

	srv := New(testConfig(), &mocks.DatabaseMock{}, sched, testQuota(), "1.2.3", false)

	req := httptest.NewRequest("GET", "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()

	srv.statusHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var status map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &status)
	require.NoError(t, err)

	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "1.2.3", status["version"])
	assert.NotEmpty(t, status["time"])

	jobs, ok := status["jobs"].([]interface{})
	require.True(t, ok)
	require.Len(t, jobs, 1)

	quota, ok := status["quota"].(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 42, quota["remaining"], 0.001)
	assert.InDelta(t, 50, quota["limit"], 0.001)
}

func TestRenderJSON(t *testing.T) {
	data := map[string]string{
		"message": "test",
		"status":  "ok",
	}

	req := httptest.NewRequest("GET", "/test", http.NoBody)
	w := httptest.NewRecorder()

	renderJSON(w, req, http.StatusOK, data)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var result map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Equal(t, data, result)
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     int
		expected string
	}{
		{name: "with error", err: fmt.Errorf("something broke"), code: http.StatusInternalServerError, expected: "something broke"},
		{name: "nil error", err: nil, code: http.StatusBadRequest, expected: "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", http.NoBody)
			w := httptest.NewRecorder()

			renderError(w, req, tt.err, tt.code)

			assert.Equal(t, tt.code, w.Code)

			var result map[string]string
			err := json.Unmarshal(w.Body.Bytes(), &result)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result["error"])
		})
	}
}
