package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/slipway-ci/slipway/internal/core/ports"
)

// BuildHandler serves the build history API.
type BuildHandler struct {
	store ports.BuildStore
}

func NewBuildHandler(store ports.BuildStore) *BuildHandler {
	return &BuildHandler{store: store}
}

func (h *BuildHandler) ListBuilds(c *fiber.Ctx) error {
	builds, err := h.store.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(builds)
}

func (h *BuildHandler) GetBuild(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Build ID is required",
		})
	}

	build, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, ports.ErrBuildNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Build not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(build)
}
