package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dev-server/core/config"
	"dev-server/core/loader"
	"dev-server/core/logger"
	"dev-server/core/middleware/headers"
	"dev-server/core/middleware/rayid"

	"dev-server/feature/files"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local client file server",
	Long:  `Starts the HTTP server and serves the client files from the configured directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Resolve the serve directory
		dir, err := cfg.Server.ResolveDirectory()
		if err != nil {
			logg.Fatal("Failed to resolve serve directory", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Fixed headers the client requires on every response
		app.Use(headers.New())

		// 3. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			err := c.Next()
			l := logger.WithRayID(logg, c)
			if err != nil {
				l.Error("Request error",
					zap.String("method", c.Method()),
					zap.String("path", c.Path()),
					zap.Error(err),
				)
				return err
			}
			l.Info("Request",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", c.Response().StatusCode()),
				zap.String("ip", c.IP()),
			)
			return nil
		})

		// 5. Load Features
		// The files feature registers a catch-all route, so it loads last.
		mgr := loader.NewManager()
		mgr.Register(files.NewFeature(dir, logg))
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Startup hints on stdout, request log stays on stderr
		fmt.Printf("Starting server on port %s\n", cfg.Server.Port)
		fmt.Printf("Serving files from: %s\n", dir)
		fmt.Printf("Open your browser and navigate to: %s\n", cfg.Server.StartURL())
		fmt.Println("Press Ctrl+C to stop the server")

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.String("directory", dir))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		fmt.Println("\nServer stopped by user.")
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
