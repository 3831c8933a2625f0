// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and resolution helpers for server settings,
// such as the listen port and the base directory to serve files from.
//
// # Configuration
//
// The Config struct defines the HTTP port, the base directory (defaulting to the
// directory containing the running binary), and the client start page used in the
// startup URL hint.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the serve command to resolve the directory before binding the listener.
package server
