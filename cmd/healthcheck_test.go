package cmd

import (
	"bytes"
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"devsecops-app/core/probe"

	"github.com/fatih/color"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	color.NoColor = true
	var stdout, stderr bytes.Buffer
	c := &cobra.Command{}
	c.SetContext(context.Background())
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	return c, &stdout, &stderr
}

func serveHealth(t *testing.T, status int) string {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.Status(status).SendString("ok") })

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)
}

func TestRunHealthcheck_Passed(t *testing.T) {
	c, stdout, stderr := newTestCommand()
	port := serveHealth(t, fiber.StatusOK)

	err := runHealthcheck(c, probe.Options{Host: "127.0.0.1", Port: port})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Unit test passed")
	assert.Empty(t, stderr.String())
}

func TestRunHealthcheck_BadStatus(t *testing.T) {
	c, stdout, stderr := newTestCommand()
	port := serveHealth(t, fiber.StatusInternalServerError)

	err := runHealthcheck(c, probe.Options{Host: "127.0.0.1", Port: port})
	assert.ErrorIs(t, err, probe.ErrUnhealthy)
	assert.Contains(t, stderr.String(), "Health check failed: status 500")
	assert.Empty(t, stdout.String())
}

func TestRunHealthcheck_Refused(t *testing.T) {
	c, _, stderr := newTestCommand()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)
	require.NoError(t, ln.Close())

	err = runHealthcheck(c, probe.Options{Host: "127.0.0.1", Port: port, Timeout: time.Second})
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "Health check failed")
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["start"])
	assert.True(t, names["healthcheck"])
}
