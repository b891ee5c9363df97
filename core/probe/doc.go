// Package probe performs the one-shot liveness check used by the healthcheck command.
//
// It issues a single GET to /healthz of a running instance through Fiber's HTTP
// client and reports either success, ErrUnhealthy (the service answered with a
// non-200 status) or the transport error.
package probe
