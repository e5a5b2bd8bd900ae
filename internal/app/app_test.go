package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/aislechef-backend/internal/config"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.HTTP.Addr = "127.0.0.1:0"
	cfg.HTTP.ShutdownTimeout = config.Duration{Duration: time.Second}
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.DSN = "file:app_test?mode=memory&cache=shared"
	cfg.Telemetry.MetricsEnabled = true
	cfg.Seed.OnStart = true
	return cfg
}

func TestNewSeedsAndServes(t *testing.T) {
	a, err := New(context.Background(), testConfig(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/recipes/2/route", nil))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"layout_version":"v1"`)

	rr = httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := testConfig()
	cfg.Database.DSN = "file:app_run_test?mode=memory&cache=shared"
	cfg.Seed.OnStart = false
	a, err := New(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNewRejectsNilConfig(t *testing.T) {
	_, err := New(context.Background(), nil, logger.Nop())
	require.Error(t, err)
}
