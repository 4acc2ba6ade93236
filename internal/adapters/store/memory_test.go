package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slipway-ci/slipway/internal/core/domain"
	"github.com/slipway-ci/slipway/internal/core/ports"
)

func TestMemoryCreateGet(t *testing.T) {
	m := NewMemory()
	build := domain.Build{ID: "b1", Status: domain.StatusQueued}
	require.NoError(t, m.Create(build))

	got, err := m.Get("b1")
	require.NoError(t, err)
	assert.Equal(t, build, got)
}

func TestMemoryGetUnknown(t *testing.T) {
	m := NewMemory()
	_, err := m.Get("nope")
	assert.ErrorIs(t, err, ports.ErrBuildNotFound)
}

func TestMemoryUpdate(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Create(domain.Build{ID: "b1", Status: domain.StatusQueued}))

	require.NoError(t, m.Update(domain.Build{ID: "b1", Status: domain.StatusSucceeded}))
	got, err := m.Get("b1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSucceeded, got.Status)

	assert.ErrorIs(t, m.Update(domain.Build{ID: "missing"}), ports.ErrBuildNotFound)
}

func TestMemoryListNewestFirst(t *testing.T) {
	m := NewMemory()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, m.Create(domain.Build{ID: "old", StartedAt: base}))
	require.NoError(t, m.Create(domain.Build{ID: "new", StartedAt: base.Add(time.Minute)}))

	builds, err := m.List()
	require.NoError(t, err)
	require.Len(t, builds, 2)
	assert.Equal(t, "new", builds[0].ID)
	assert.Equal(t, "old", builds[1].ID)
}
