// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Registry holds credentials for the target container registry. These come
// from the environment and must never be logged or returned by the API.
type Registry struct {
	Server   string
	Username string
	Password string
}

// Config is the full service configuration.
type Config struct {
	ListenAddr    string
	Branch        string
	ImageRepo     string
	WebhookSecret string
	LogLevel      string
	Registry      Registry
}

// Load reads configuration from SLIPWAY_* environment variables.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("slipway")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":3000")
	v.SetDefault("branch", "main")
	v.SetDefault("log_level", "info")

	cfg := Config{
		ListenAddr:    v.GetString("listen_addr"),
		Branch:        v.GetString("branch"),
		ImageRepo:     v.GetString("image_repo"),
		WebhookSecret: v.GetString("webhook_secret"),
		LogLevel:      v.GetString("log_level"),
		Registry: Registry{
			Server:   v.GetString("registry_server"),
			Username: v.GetString("registry_username"),
			Password: v.GetString("registry_password"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that everything the pipeline needs to push is present.
func (c Config) Validate() error {
	if c.ImageRepo == "" {
		return fmt.Errorf("SLIPWAY_IMAGE_REPO is required")
	}
	if c.Registry.Username == "" || c.Registry.Password == "" {
		return fmt.Errorf("SLIPWAY_REGISTRY_USERNAME and SLIPWAY_REGISTRY_PASSWORD are required")
	}
	if c.WebhookSecret == "" {
		return fmt.Errorf("SLIPWAY_WEBHOOK_SECRET is required")
	}
	return nil
}
