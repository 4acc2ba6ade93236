package ports

import (
	"context"

	"github.com/slipway-ci/slipway/internal/core/domain"
)

// PipelineService records and runs builds for accepted pushes.
type PipelineService interface {
	// Enqueue records a queued build for a push and returns it.
	Enqueue(repoURL, ref, sha string) (domain.Build, error)
	// Run executes the checkout/build/push sequence for an enqueued build.
	Run(ctx context.Context, build domain.Build) error
}
