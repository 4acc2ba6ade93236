package ports

import "context"

// RegistryService pushes built images to a container registry.
type RegistryService interface {
	// Login verifies the configured registry credentials.
	Login(ctx context.Context) error
	// Push uploads one image reference (repo:tag) to the registry.
	Push(ctx context.Context, ref string) error
}
