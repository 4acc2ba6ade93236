// Package pipeline runs the checkout, build and push sequence for one
// commit.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/slipway-ci/slipway/internal/core/domain"
	"github.com/slipway-ci/slipway/internal/core/ports"
)

const latestTag = "latest"

// Pipeline ties the source, builder and registry ports together and records
// progress in the build store.
type Pipeline struct {
	source    ports.SourceService
	builder   ports.BuilderService
	registry  ports.RegistryService
	store     ports.BuildStore
	imageRepo string
	log       *zap.Logger
}

func New(source ports.SourceService, builder ports.BuilderService, registry ports.RegistryService, store ports.BuildStore, imageRepo string, log *zap.Logger) *Pipeline {
	return &Pipeline{
		source:    source,
		builder:   builder,
		registry:  registry,
		store:     store,
		imageRepo: imageRepo,
		log:       log,
	}
}

// Enqueue records a queued build for a push and returns it. The caller
// decides whether Run happens synchronously or in a goroutine.
func (p *Pipeline) Enqueue(repoURL, ref, sha string) (domain.Build, error) {
	build := domain.Build{
		ID:        uuid.NewString(),
		RepoURL:   repoURL,
		Ref:       ref,
		CommitSHA: sha,
		Status:    domain.StatusQueued,
		StartedAt: time.Now().UTC(),
	}
	if err := p.store.Create(build); err != nil {
		return domain.Build{}, fmt.Errorf("failed to record build: %w", err)
	}
	return build, nil
}

// Run executes the pipeline for a previously enqueued build: checkout,
// image build with the latest and short-SHA tags, registry login, and a
// push per tag. The store is updated at every transition.
func (p *Pipeline) Run(ctx context.Context, build domain.Build) error {
	log := p.log.With(zap.String("build", build.ID), zap.String("repo", build.RepoURL))

	build.Status = domain.StatusRunning
	if err := p.store.Update(build); err != nil {
		return err
	}

	err := p.run(ctx, &build, log)
	finished := time.Now().UTC()
	build.FinishedAt = &finished
	if err != nil {
		build.Status = domain.StatusFailed
		build.Error = err.Error()
		log.Error("build failed", zap.Error(err))
	} else {
		build.Status = domain.StatusSucceeded
		log.Info("build succeeded", zap.Strings("tags", build.Tags))
	}
	if storeErr := p.store.Update(build); storeErr != nil {
		return storeErr
	}
	return err
}

func (p *Pipeline) run(ctx context.Context, build *domain.Build, log *zap.Logger) error {
	ws, err := p.source.Checkout(ctx, build.RepoURL, build.CommitSHA)
	if err != nil {
		return err
	}
	defer ws.Cleanup()

	build.CommitSHA = ws.CommitSHA
	build.ShortSHA = domain.ShortSHA(ws.CommitSHA)
	build.Tags = p.tagsFor(build.ShortSHA)
	if err := p.store.Update(*build); err != nil {
		return err
	}
	log.Info("checked out commit", zap.String("sha", build.CommitSHA))

	if err := p.registry.Login(ctx); err != nil {
		return err
	}
	if err := p.builder.BuildImage(ctx, ws.Dir, build.Tags); err != nil {
		return err
	}
	for _, tag := range build.Tags {
		if err := p.registry.Push(ctx, tag); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) tagsFor(shortSHA string) []string {
	return []string{
		domain.ImageRef{Repository: p.imageRepo, Tag: latestTag}.String(),
		domain.ImageRef{Repository: p.imageRepo, Tag: shortSHA}.String(),
	}
}
