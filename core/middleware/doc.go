// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - RequestLog: Logs every incoming request with its RayID and any error
//     returned by the handler chain.
//
// These middleware components are registered globally by core/server, RayID first.
package middleware
