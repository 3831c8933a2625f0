package server

import (
	"os"
	"path/filepath"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// Directory is the base directory to serve files from.
	// When empty, the directory containing the running binary is used.
	Directory string `mapstructure:"directory" default:""`
	// StartPage is the client entry page shown in the startup URL hint.
	StartPage string `mapstructure:"start_page" default:"index.html"`
}

// ResolveDirectory returns the absolute base directory to serve from.
// An empty Directory falls back to the directory of the running executable,
// mirroring how the client files ship next to the server binary.
func (c Config) ResolveDirectory() (string, error) {
	if c.Directory != "" {
		return filepath.Abs(c.Directory)
	}

	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Abs(filepath.Dir(exe))
}

// StartURL returns the URL hint printed at startup.
func (c Config) StartURL() string {
	url := "http://localhost:" + c.Port + "/"
	if c.StartPage != "" {
		url += c.StartPage
	}
	return url
}
