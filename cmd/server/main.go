package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/yukikurage/task-tracker-api/internal/config"
	"github.com/yukikurage/task-tracker-api/internal/database"
	"github.com/yukikurage/task-tracker-api/internal/logger"
	"gorm.io/gorm"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "task-tracker",
	Short:         "Task tracking API server",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional config file (yaml, toml or json)")
	rootCmd.AddCommand(serveCmd, migrateCmd, summaryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap loads configuration, installs the logger and opens the store
func bootstrap() (*config.Config, *slog.Logger, *gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	log, w := logger.Setup(cfg.Log)

	db, err := database.Open(cfg.Database, w)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, log, db, nil
}

func closeDB(db *gorm.DB) {
	if err := database.Close(db); err != nil {
		slog.Error("failed to close database", "error", err)
	}
}

// out is where user-facing command output goes
var out io.Writer = os.Stdout
