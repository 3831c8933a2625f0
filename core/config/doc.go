// Package config provides configuration management for the dev server.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file loaded through godotenv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, serve directory, start page)
//   - Storage: S3/MinIO credentials and bucket settings for the pull command
//   - Log: Logging level and format
//
// Defaults come from the 'default' struct tags on each section and can be
// overridden with environment variables such as SERVER_PORT or STORAGE_BUCKET.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
