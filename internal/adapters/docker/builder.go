// Package docker implements image building and registry pushing on top of
// the Docker Engine API.
package docker

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/archive"
	"go.uber.org/zap"
)

// Builder implements ports.BuilderService using the Docker SDK.
type Builder struct {
	cli *client.Client
	log *zap.Logger
}

func NewBuilder(log *zap.Logger) (*Builder, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return &Builder{cli: cli, log: log}, nil
}

// BuildImage tars contextDir, builds the Dockerfile at its root, and tags
// the result with every entry in tags.
func (b *Builder) BuildImage(ctx context.Context, contextDir string, tags []string) error {
	buildCtx, err := archive.TarWithOptions(contextDir, &archive.TarOptions{})
	if err != nil {
		return fmt.Errorf("failed to create build context: %w", err)
	}
	defer buildCtx.Close()

	b.log.Info("building image", zap.Strings("tags", tags))
	resp, err := b.cli.ImageBuild(ctx, buildCtx, types.ImageBuildOptions{
		Tags:       tags,
		Dockerfile: "Dockerfile",
		Remove:     true,
	})
	if err != nil {
		return fmt.Errorf("failed to build image: %w", err)
	}
	defer resp.Body.Close()

	// A failing build step is reported inside the stream, not by ImageBuild.
	if err := drainStream(resp.Body); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	return nil
}
