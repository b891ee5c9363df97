package probe_test

import (
	"context"
	"errors"
	"net"
	"strconv"
	"testing"
	"time"

	"devsecops-app/core/probe"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serve starts app on a random local port and returns that port.
func serve(t *testing.T, app *fiber.App) string {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)
}

func newApp(status int) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.Status(status).SendString("ok")
	})
	return app
}

func TestOptions_URL(t *testing.T) {
	assert.Equal(t, "http://localhost:3000/healthz", probe.Options{}.URL())
	assert.Equal(t, "http://127.0.0.1:8080/ready", probe.Options{Host: "127.0.0.1", Port: "8080", Path: "/ready"}.URL())
	assert.Equal(t, "http://[::1]:3000/healthz", probe.Options{Host: "::1"}.URL())
}

func TestCheck_Healthy(t *testing.T) {
	port := serve(t, newApp(fiber.StatusOK))

	res, err := probe.Check(context.Background(), probe.Options{Host: "127.0.0.1", Port: port})
	require.NoError(t, err)
	assert.Equal(t, 200, res.Status)
	assert.Equal(t, "ok", res.Body)
}

func TestCheck_Unhealthy(t *testing.T) {
	port := serve(t, newApp(fiber.StatusServiceUnavailable))

	res, err := probe.Check(context.Background(), probe.Options{Host: "127.0.0.1", Port: port})
	require.Error(t, err)
	assert.True(t, errors.Is(err, probe.ErrUnhealthy))
	assert.Equal(t, 503, res.Status)
}

func TestCheck_NotFound(t *testing.T) {
	port := serve(t, newApp(fiber.StatusOK))

	_, err := probe.Check(context.Background(), probe.Options{Host: "127.0.0.1", Port: port, Path: "/missing"})
	assert.ErrorIs(t, err, probe.ErrUnhealthy)
}

func TestCheck_ConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)
	require.NoError(t, ln.Close())

	_, err = probe.Check(context.Background(), probe.Options{Host: "127.0.0.1", Port: port, Timeout: time.Second})
	require.Error(t, err)
	assert.False(t, errors.Is(err, probe.ErrUnhealthy))
}

func TestCheck_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := probe.Check(ctx, probe.Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
