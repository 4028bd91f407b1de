package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"shipment-monitor/internal/core/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

type pingRoute struct{}

func (pingRoute) Register(router fiber.Router) {
	router.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
}

// TestNew verifies that New creates a Server with the correct configuration.
func TestNew(t *testing.T) {
	cfg := &config.AppConfig{
		ServerPort: 8080,
	}

	srv := New(cfg, nil)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.App)
	assert.Equal(t, cfg, srv.cfg)
}

func TestServer_Health(t *testing.T) {
	tests := []struct {
		name       string
		cache      Pinger
		wantStatus int
		want       HealthResponse
	}{
		{name: "NoCache", cache: nil, wantStatus: fiber.StatusOK, want: HealthResponse{Status: "ok"}},
		{name: "Healthy", cache: stubPinger{}, wantStatus: fiber.StatusOK, want: HealthResponse{Status: "ok"}},
		{
			name:       "CacheDown",
			cache:      stubPinger{err: errors.New("redis ping failed")},
			wantStatus: fiber.StatusServiceUnavailable,
			want:       HealthResponse{Status: "degraded", Error: "redis ping failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := New(&config.AppConfig{}, tt.cache)

			resp, err := srv.App.Test(httptest.NewRequest("GET", "/health", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))

			var body HealthResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.want, body)
		})
	}
}

func TestServer_Metrics(t *testing.T) {
	srv := New(&config.AppConfig{}, nil)
	srv.Register(pingRoute{})

	_, err := srv.App.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "shipmon_http_request_duration_seconds")
}

func TestServer_Register(t *testing.T) {
	srv := New(&config.AppConfig{}, nil)
	srv.Register(pingRoute{})

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// TestServer_Run_Error verifies that Run returns an error when binding fails (e.g., privileged port).
func TestServer_Run_Error(t *testing.T) {
	// Privileged port 1 should fail
	cfg := &config.AppConfig{
		ServerPort: 1,
	}

	srv := New(cfg, nil)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		assert.Error(t, err)
	case <-time.After(1 * time.Second):
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, srv.Shutdown(ctx))
		t.Log("Server unexpectedly started or timed out on Error test")
	}
}
