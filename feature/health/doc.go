// Package health serves the liveness probe at GET /healthz.
//
// The probe always answers 200 with the plain text body "ok"; it has no
// dependencies to check. The healthcheck command (core/probe) calls it.
package health
