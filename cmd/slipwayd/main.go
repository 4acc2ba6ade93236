package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/slipway-ci/slipway/internal/adapters/docker"
	"github.com/slipway-ci/slipway/internal/adapters/git"
	slphttp "github.com/slipway-ci/slipway/internal/adapters/http"
	"github.com/slipway-ci/slipway/internal/adapters/store"
	"github.com/slipway-ci/slipway/internal/config"
	"github.com/slipway-ci/slipway/internal/core/pipeline"
	"github.com/slipway-ci/slipway/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Adapters (Infrastructure)
	source := git.NewAdapter(logger)
	builder, err := docker.NewBuilder(logger)
	if err != nil {
		logger.Fatal("Failed to initialize Docker builder", zap.Error(err))
	}
	registry, err := docker.NewRegistry(cfg.Registry, logger)
	if err != nil {
		logger.Fatal("Failed to initialize registry client", zap.Error(err))
	}
	builds := store.NewMemory()

	// Core
	pipe := pipeline.New(source, builder, registry, builds, cfg.ImageRepo, logger)

	// HTTP Handlers (Interface Adapters)
	webhookHandler := slphttp.NewWebhookHandler(pipe, cfg.WebhookSecret, cfg.Branch, logger)
	buildHandler := slphttp.NewBuildHandler(builds)

	app := fiber.New()

	app.Post("/hooks/github", webhookHandler.HandlePush)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	v1.Get("/builds", buildHandler.ListBuilds)
	v1.Get("/builds/:id", buildHandler.GetBuild)

	logger.Info("server starting",
		zap.String("addr", cfg.ListenAddr),
		zap.String("branch", cfg.Branch),
		zap.String("image_repo", cfg.ImageRepo))
	if err := app.Listen(cfg.ListenAddr); err != nil {
		logger.Fatal("Server failed to start", zap.Error(err))
	}
}
