package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"waitwise/api/routes"
	"waitwise/internal/shared/config"
	"waitwise/internal/shared/database"
	"waitwise/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		APIVersion: "v1",
		Auth:       config.AuthConfig{DemoToken: "demo-token", DemoAPIKey: "demo-api-key", TokenTTL: time.Hour},
	}
	engine := gin.New()
	routes.NewRouter(cfg, &database.DB{}, store.NewMemoryStore(), nil).SetupRoutes(engine)

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return srv
}

func TestSeedAllFillsEveryEventKind(t *testing.T) {
	srv := newAPI(t)
	seeder := NewSeeder(srv.Client(), srv.URL+"/v1/", "demo-api-key")

	summary, err := seeder.SeedAll(context.Background(), 14)
	require.NoError(t, err)
	require.Len(t, summary.Events, 3)

	for _, ev := range summary.Events {
		assert.NotEmpty(t, ev.ID)
		assert.Equal(t, 14, ev.Joined)
	}
	assert.Equal(t, 2, summary.Events[0].Promoted)
	assert.Equal(t, 0, summary.Events[2].Promoted)
}

func TestSeedAllReportsAuthFailure(t *testing.T) {
	srv := newAPI(t)
	seeder := NewSeeder(srv.Client(), srv.URL+"/v1", "wrong-key")

	_, err := seeder.SeedAll(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestSeedAllStopsOnTransportError(t *testing.T) {
	seeder := NewSeeder(&http.Client{Timeout: time.Second}, "http://127.0.0.1:1/v1", "demo-api-key")
	_, err := seeder.SeedAll(context.Background(), 1)
	assert.Error(t, err)
}
