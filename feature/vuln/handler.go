package vuln

import (
	"devsecops-app/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EvalResponse is the JSON body of a successful evaluation.
type EvalResponse struct {
	OK     bool `json:"ok"`
	Result any  `json:"result"`
}

// ErrorResponse is the JSON body of a failed evaluation.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// Handler handles HTTP requests for the vulnerable routes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the vulnerable routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/vuln-eval", h.HandleEval)
	app.Get("/reflect", h.HandleReflect)
}

// HandleEval evaluates the code query parameter.
// @Summary Evaluate expression
// @Description Evaluates the arithmetic expression in code. Kept as a target for static analysis.
// @Tags vuln
// @Produce json
// @Param code query string false "Expression to evaluate" default(1+1)
// @Success 200 {object} vuln.EvalResponse
// @Failure 400 {object} vuln.ErrorResponse
// @Router /vuln-eval [get]
func (h *Handler) HandleEval(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	code := c.Query("code", DefaultExpression)

	result, err := h.service.Evaluate(code)
	if err != nil {
		l.Warn("Expression evaluation failed", zap.String("code", code), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{OK: false, Error: err.Error()})
	}

	l.Warn("Evaluated client supplied expression", zap.String("code", code), zap.Float64("result", result))
	return c.JSON(EvalResponse{OK: true, Result: result})
}

// HandleReflect echoes the msg query parameter inside an HTML page.
// @Summary Reflect message
// @Description Embeds msg in an HTML document without escaping unless VULN_ESCAPE_REFLECT is set. Kept as a target for dynamic scanners.
// @Tags vuln
// @Produce html
// @Param msg query string false "Message to reflect"
// @Success 200 {string} string "HTML document"
// @Router /reflect [get]
func (h *Handler) HandleReflect(c *fiber.Ctx) error {
	msg := c.Query("msg")
	if msg != "" {
		logger.WithRayID(h.service.logger, c).Warn("Reflecting client supplied message",
			zap.Int("length", len(msg)),
			zap.Bool("escaped", h.service.cfg.EscapeReflect))
	}

	c.Type("html", "utf-8")
	return c.SendString(h.service.Render(msg))
}
