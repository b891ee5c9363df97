package vuln

import (
	"fmt"
	"html"

	"devsecops-app/core/expr"

	"go.uber.org/zap"
)

// DefaultExpression is evaluated when no code is supplied.
const DefaultExpression = "1+1"

const reflectTemplate = "<html><body><h1>Message</h1><div>%s</div></body></html>"

// Service holds the logic behind the vulnerable routes.
type Service struct {
	cfg    Config
	logger *zap.Logger
}

// NewService creates a new vuln service.
func NewService(cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cfg: cfg, logger: logger}
}

// Evaluate evaluates code as an arithmetic expression.
// An empty code evaluates DefaultExpression.
func (s *Service) Evaluate(code string) (float64, error) {
	if code == "" {
		code = DefaultExpression
	}
	return expr.Eval(code)
}

// Render builds the /reflect document around msg.
// msg is embedded verbatim unless EscapeReflect is set.
func (s *Service) Render(msg string) string {
	if s.cfg.EscapeReflect {
		msg = html.EscapeString(msg)
	}
	return fmt.Sprintf(reflectTemplate, msg)
}
