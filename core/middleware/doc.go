// Package middleware groups the HTTP middleware used by the dev server.
//
// Each middleware lives in its own subpackage and exposes a New() constructor
// returning a fiber.Handler, following the convention of Fiber's bundled
// middleware:
//
//   - rayid: assigns a unique ray ID (UUID) to every request for log correlation.
//   - headers: attaches the fixed CORS and cache-control headers the game client
//     requires to every response.
//
// Middleware are registered in order in the serve command: rayid first so that
// every later log line can be traced, then headers, then request logging.
package middleware
