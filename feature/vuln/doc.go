// Package vuln serves the two routes that exist to be found by security scanners.
//
// # HTTP Endpoints
//
//   - GET /vuln-eval?code=... : evaluates code and returns {"ok":true,"result":...},
//     or 400 with {"ok":false,"error":"..."} when the expression is invalid.
//     An absent or empty code evaluates "1+1". Evaluation goes through core/expr,
//     which only knows arithmetic, so the route is an evaluation sink for static
//     analysis without giving callers code execution.
//   - GET /reflect?msg=... : returns an HTML page with msg inside a div.
//
// # Reflected Input
//
// /reflect embeds msg unescaped. This is a reflected XSS on purpose: it is what
// the dynamic scan is expected to flag. Setting VULN_ESCAPE_REFLECT=true
// HTML-escapes the message instead, and VULN_ENABLED=false removes both routes.
package vuln
