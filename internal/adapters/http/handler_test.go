package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slipway-ci/slipway/internal/adapters/store"
	"github.com/slipway-ci/slipway/internal/core/domain"
)

func newBuildApp(t *testing.T) (*fiber.App, *store.Memory) {
	t.Helper()
	builds := store.NewMemory()
	h := NewBuildHandler(builds)

	app := fiber.New()
	app.Get("/api/v1/builds", h.ListBuilds)
	app.Get("/api/v1/builds/:id", h.GetBuild)
	return app, builds
}

func TestListBuilds(t *testing.T) {
	app, builds := newBuildApp(t)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, builds.Create(domain.Build{ID: "b1", Status: domain.StatusSucceeded, StartedAt: base}))
	require.NoError(t, builds.Create(domain.Build{ID: "b2", Status: domain.StatusRunning, StartedAt: base.Add(time.Minute)}))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/builds", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got []domain.Build
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "b2", got[0].ID)
}

func TestGetBuild(t *testing.T) {
	app, builds := newBuildApp(t)
	require.NoError(t, builds.Create(domain.Build{ID: "b1", Status: domain.StatusFailed, Error: "push denied"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/builds/b1", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got domain.Build
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, domain.StatusFailed, got.Status)
	assert.Equal(t, "push denied", got.Error)
}

func TestGetBuildNotFound(t *testing.T) {
	app, _ := newBuildApp(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/builds/missing", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
