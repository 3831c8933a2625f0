// Package files serves the game client's static files over HTTP.
//
// It maps every GET request path to a file under the configured base directory
// and returns its raw contents. This is the only HTTP surface of the dev server.
//
// # Behavior
//
//   - Paths resolving to a directory serve that directory's index.html if present.
//   - Paths escaping the base directory are rejected with 404.
//   - Missing files return 404, unreadable files 403; neither stops the server.
//   - Content types come from an override table (.js -> application/javascript,
//     .css -> text/css) before falling back to system MIME inference, so module
//     scripts load correctly regardless of the host's MIME database.
//
// # HTTP Endpoints
//
//   - GET /* : Serves the file at the request path.
package files
