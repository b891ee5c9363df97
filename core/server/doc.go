// Package server builds and runs the HTTP server.
//
// # Configuration
//
// The Config struct defines the port (read from PORT, default 3000), the bind
// host, request timeouts and whether the swagger routes are served.
//
// # Lifecycle
//
// New assembles the Fiber application from a loader.Manager: RayID and request
// logging middleware, the swagger UI, then each enabled feature. Listen binds the
// socket and writes the "App listening on port N" line; Serve blocks until
// Shutdown.
//
//	srv, err := server.New(cfg.Server, log, mgr)
//	ln, err := srv.Listen()
//	go srv.Serve(ln)
//	...
//	srv.Shutdown(ctx)
package server
