package server

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"devsecops-app/core/loader"
	"devsecops-app/core/middleware/rayid"
	"devsecops-app/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// AppName is reported by Fiber in its server header.
const AppName = "devsecops-app"

// Server wraps the Fiber application built from a feature registry.
type Server struct {
	cfg    Config
	app    *fiber.App
	logger *zap.Logger
}

// New builds the Fiber application: global middleware first, then the
// optional swagger routes, then every enabled feature of the manager.
// The manager is read once; features registered afterwards are ignored.
func New(cfg Config, logger *zap.Logger, features *loader.Manager) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               AppName,
		DisableStartupMessage: true, // We log our own startup message
		ReadTimeout:           cfg.ReadTimeout(),
		WriteTimeout:          cfg.WriteTimeout(),
	})

	// RayID must be first to trace everything
	app.Use(rayid.New())
	app.Use(requestlog.New(logger))

	if cfg.Swagger {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	if err := features.LoadAll(app); err != nil {
		return nil, err
	}

	return &Server{cfg: cfg, app: app, logger: logger}, nil
}

// App exposes the underlying Fiber application, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen binds the configured address and logs the bound port.
// A bind failure is returned to the caller, which treats it as fatal.
func (s *Server) Listen() (net.Listener, error) {
	addr := s.cfg.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", addr, err)
	}

	port := ln.Addr().String()
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		port = strconv.Itoa(tcp.Port)
	}
	s.logger.Info("App listening on port "+port, zap.String("port", port))

	return ln, nil
}

// Serve handles connections on ln until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	return s.app.Listener(ln)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.app.ShutdownWithContext(ctx)
}
