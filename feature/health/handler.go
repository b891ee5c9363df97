package health

import (
	"github.com/gofiber/fiber/v2"
)

// Path is the liveness probe route.
const Path = "/healthz"

// Handler handles the liveness probe.
type Handler struct{}

// NewHandler creates a new HTTP handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes registers the health route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get(Path, h.HandleHealth)
}

// HandleHealth answers 200 with the plain text body "ok".
// @Summary Liveness probe
// @Description Returns "ok" while the process is serving.
// @Tags general
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString("ok")
}
