package ports

import (
	"errors"

	"github.com/slipway-ci/slipway/internal/core/domain"
)

// ErrBuildNotFound is returned by BuildStore lookups for unknown IDs.
var ErrBuildNotFound = errors.New("build not found")

// BuildStore persists build records so the API can report progress.
type BuildStore interface {
	Create(build domain.Build) error
	Update(build domain.Build) error
	Get(id string) (domain.Build, error)
	// List returns all builds, most recent first.
	List() ([]domain.Build, error)
}
