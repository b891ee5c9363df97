package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrUnhealthy is returned when the probe answers with a status other than 200.
var ErrUnhealthy = errors.New("health check failed")

// Options configures a probe.
type Options struct {
	// Host is the target host. Defaults to localhost.
	Host string
	// Port is the target port. Defaults to 3000.
	Port string
	// Path is the probed route. Defaults to /healthz.
	Path string
	// Timeout bounds the whole request. Defaults to 5 seconds.
	Timeout time.Duration
}

// Result describes a completed probe request.
type Result struct {
	URL      string
	Status   int
	Body     string
	Duration time.Duration
}

func (o Options) withDefaults() Options {
	if o.Host == "" {
		o.Host = "localhost"
	}
	if o.Port == "" {
		o.Port = "3000"
	}
	if o.Path == "" {
		o.Path = "/healthz"
	}
	if o.Timeout <= 0 {
		o.Timeout = 5 * time.Second
	}
	return o
}

// URL returns the address the probe requests.
func (o Options) URL() string {
	o = o.withDefaults()
	return "http://" + net.JoinHostPort(o.Host, o.Port) + o.Path
}

// Check performs a single GET against the probe route. No retries.
// A transport failure (e.g. connection refused) is returned as is; a non-200
// answer returns the Result together with an error wrapping ErrUnhealthy.
func Check(ctx context.Context, opts Options) (Result, error) {
	opts = opts.withDefaults()
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	timeout := opts.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	target := opts.URL()
	agent := fiber.Get(target).Timeout(timeout)

	start := time.Now()
	code, body, errs := agent.Bytes()
	res := Result{URL: target, Status: code, Body: string(body), Duration: time.Since(start)}

	if len(errs) > 0 {
		return res, fmt.Errorf("GET %s: %w", target, errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return res, fmt.Errorf("%w: GET %s returned status %d", ErrUnhealthy, target, code)
	}
	return res, nil
}
