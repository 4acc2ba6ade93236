// Package store keeps build records in memory.
package store

import (
	"sort"
	"sync"

	"github.com/slipway-ci/slipway/internal/core/domain"
	"github.com/slipway-ci/slipway/internal/core/ports"
)

// Memory is a mutex-guarded ports.BuildStore.
type Memory struct {
	mu     sync.RWMutex
	builds map[string]domain.Build
}

func NewMemory() *Memory {
	return &Memory{builds: make(map[string]domain.Build)}
}

func (m *Memory) Create(build domain.Build) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.builds[build.ID] = build
	return nil
}

func (m *Memory) Update(build domain.Build) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.builds[build.ID]; !ok {
		return ports.ErrBuildNotFound
	}
	m.builds[build.ID] = build
	return nil
}

func (m *Memory) Get(id string) (domain.Build, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.builds[id]
	if !ok {
		return domain.Build{}, ports.ErrBuildNotFound
	}
	return b, nil
}

// List returns all builds, most recent first.
func (m *Memory) List() ([]domain.Build, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]domain.Build, 0, len(m.builds))
	for _, b := range m.builds {
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartedAt.After(result[j].StartedAt)
	})
	return result, nil
}
