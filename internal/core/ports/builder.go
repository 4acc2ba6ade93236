package ports

import "context"

// BuilderService defines operations for building container images from
// checked-out source code.
type BuilderService interface {
	// BuildImage builds the Dockerfile at the root of contextDir and
	// applies every tag in tags to the resulting image.
	BuildImage(ctx context.Context, contextDir string, tags []string) error
}
