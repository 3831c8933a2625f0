package cmd

import (
	"context"
	"fmt"
	"os"

	"dev-server/core/config"
	"dev-server/core/logger"
	"dev-server/core/storage"
	"dev-server/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// pullCmd represents the pull command
var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download the client files from object storage",
	Long:  `Downloads the client build from the configured bucket into the serve directory, skipping files that are already up to date.`,
	Run: func(cmd *cobra.Command, args []string) {
		runPull(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(pullCmd)
}

func runPull(ctx context.Context) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Fatal("Failed to create storage client", zap.Error(err))
	}

	dir, err := cfg.Server.ResolveDirectory()
	if err != nil {
		logg.Fatal("Failed to resolve serve directory", zap.Error(err))
	}

	svc := sync.NewService(store, cfg.Storage.Bucket, cfg.Storage.Prefix, dir, logg)

	logg.Info("Pulling client files...",
		zap.String("bucket", cfg.Storage.Bucket),
		zap.String("directory", dir),
	)
	report, err := svc.Pull(ctx)
	if err != nil {
		logg.Fatal("Pull failed", zap.Error(err))
	}

	// Pretty Console Output
	fmt.Println("\n--- Pull Summary ---")
	fmt.Printf("Bucket:       %s\n", cfg.Storage.Bucket)
	fmt.Printf("Directory:    %s\n", dir)
	fmt.Printf("Downloaded:   %d\n", report.Downloaded)
	fmt.Printf("Skipped:      %d\n", report.Skipped)
	fmt.Printf("Bytes:        %d\n", report.Bytes)
	fmt.Println("--------------------")
}
