package docker

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/client"
	"go.uber.org/zap"

	"github.com/slipway-ci/slipway/internal/config"
)

// Registry implements ports.RegistryService using the Docker SDK.
type Registry struct {
	cli  *client.Client
	auth registry.AuthConfig
	log  *zap.Logger
}

func NewRegistry(cfg config.Registry, log *zap.Logger) (*Registry, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	auth := registry.AuthConfig{
		ServerAddress: cfg.Server,
		Username:      cfg.Username,
		Password:      cfg.Password,
	}
	return &Registry{cli: cli, auth: auth, log: log}, nil
}

// Login verifies the credentials against the registry before any push.
func (r *Registry) Login(ctx context.Context) error {
	r.log.Info("logging in to registry", zap.String("server", r.auth.ServerAddress))
	if _, err := r.cli.RegistryLogin(ctx, r.auth); err != nil {
		return fmt.Errorf("registry login failed: %w", err)
	}
	return nil
}

// Push uploads one image reference to the registry.
func (r *Registry) Push(ctx context.Context, ref string) error {
	authHeader, err := encodeAuth(r.auth)
	if err != nil {
		return err
	}

	r.log.Info("pushing image", zap.String("ref", ref))
	body, err := r.cli.ImagePush(ctx, ref, types.ImagePushOptions{
		RegistryAuth: authHeader,
	})
	if err != nil {
		return fmt.Errorf("failed to push %s: %w", ref, err)
	}
	defer body.Close()

	// Push errors (denied, manifest problems) arrive inside the stream.
	if err := drainStream(body); err != nil {
		return fmt.Errorf("push of %s failed: %w", ref, err)
	}
	return nil
}

// encodeAuth renders the X-Registry-Auth header value the Engine expects:
// base64url over the JSON auth config.
func encodeAuth(auth registry.AuthConfig) (string, error) {
	buf, err := json.Marshal(auth)
	if err != nil {
		return "", fmt.Errorf("failed to encode registry auth: %w", err)
	}
	return base64.URLEncoding.EncodeToString(buf), nil
}
