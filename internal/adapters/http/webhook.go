package http

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/slipway-ci/slipway/internal/core/domain"
	"github.com/slipway-ci/slipway/internal/core/ports"
)

const (
	headerEvent     = "X-GitHub-Event"
	headerSignature = "X-Hub-Signature-256"
	signaturePrefix = "sha256="
)

// WebhookHandler receives GitHub push events and starts builds for pushes
// to the configured branch.
type WebhookHandler struct {
	pipeline ports.PipelineService
	secret   string
	branch   string
	log      *zap.Logger
}

func NewWebhookHandler(p ports.PipelineService, secret, branch string, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{pipeline: p, secret: secret, branch: branch, log: log}
}

// HandlePush validates the webhook signature, filters to push events on the
// configured branch, and enqueues a build that runs in the background.
func (h *WebhookHandler) HandlePush(c *fiber.Ctx) error {
	body := c.Body()
	if !h.verifySignature(body, c.Get(headerSignature)) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid webhook signature",
		})
	}

	if event := c.Get(headerEvent); event != "push" {
		h.log.Debug("ignoring event", zap.String("event", event))
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"status": "ignored",
		})
	}

	var push domain.PushEvent
	if err := json.Unmarshal(body, &push); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid push payload",
		})
	}

	if !push.ShouldBuild(h.branch) {
		h.log.Info("skipping push",
			zap.String("ref", push.Ref),
			zap.String("repo", push.Repository.FullName))
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"status": "ignored",
		})
	}

	build, err := h.pipeline.Enqueue(push.Repository.CloneURL, push.Ref, push.After)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	h.log.Info("accepted push",
		zap.String("build", build.ID),
		zap.String("repo", push.Repository.FullName),
		zap.String("sha", push.After),
		zap.String("pusher", push.Pusher.Name))

	// The webhook must respond fast; the pipeline runs detached from the
	// request's lifetime.
	go func() {
		if err := h.pipeline.Run(context.Background(), build); err != nil {
			h.log.Error("pipeline run failed", zap.String("build", build.ID), zap.Error(err))
		}
	}()

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"id":     build.ID,
		"status": string(build.Status),
	})
}

// verifySignature checks the HMAC-SHA256 signature GitHub attaches to every
// delivery. Comparison is constant-time. Without a configured secret no
// delivery can be authenticated, so everything is rejected.
func (h *WebhookHandler) verifySignature(body []byte, header string) bool {
	if h.secret == "" {
		return false
	}
	if !strings.HasPrefix(header, signaturePrefix) {
		return false
	}
	got, err := hex.DecodeString(strings.TrimPrefix(header, signaturePrefix))
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}
