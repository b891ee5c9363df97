package greeting

import (
	"github.com/gofiber/fiber/v2"
)

// DefaultMessage is the greeting returned by GET /.
const DefaultMessage = "Hello from DevSecOps secure pipeline 👋"

// Response is the JSON body of GET /.
type Response struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Handler handles HTTP requests for the greeting route.
type Handler struct {
	message string
}

// NewHandler creates a new HTTP handler. An empty message falls back to DefaultMessage.
func NewHandler(message string) *Handler {
	if message == "" {
		message = DefaultMessage
	}
	return &Handler{message: message}
}

// RegisterRoutes registers the greeting route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleGreeting)
}

// HandleGreeting returns the static greeting.
// @Summary Greeting
// @Description Returns a static greeting.
// @Tags general
// @Produce json
// @Success 200 {object} greeting.Response
// @Router / [get]
func (h *Handler) HandleGreeting(c *fiber.Ctx) error {
	return c.JSON(Response{OK: true, Message: h.message})
}
