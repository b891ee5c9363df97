package rayid

import (
	"devsecops-app/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request id.
const HeaderName = "X-Ray-ID"

// Config configures the RayID middleware.
type Config struct {
	// Header is the header read from the request and written to the response.
	Header string
	// Generator produces a new id when the request carries none.
	Generator func() string
}

// New creates the RayID middleware.
// An id supplied by the client in the header is reused; otherwise a UUID is generated.
func New(config ...Config) fiber.Handler {
	cfg := Config{Header: HeaderName, Generator: uuid.NewString}
	if len(config) > 0 {
		if config[0].Header != "" {
			cfg.Header = config[0].Header
		}
		if config[0].Generator != nil {
			cfg.Generator = config[0].Generator
		}
	}

	return func(c *fiber.Ctx) error {
		rid := c.Get(cfg.Header)
		if rid == "" {
			rid = cfg.Generator()
		}
		c.Locals(logger.RayIDKey, rid)
		c.Set(cfg.Header, rid)
		return c.Next()
	}
}
