package main

import (
	"context"
	"encoding/json"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/yukikurage/task-tracker-api/internal/dto"
	"github.com/yukikurage/task-tracker-api/internal/repository"
	"github.com/yukikurage/task-tracker-api/internal/services"
)

var watchInterval time.Duration

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the task summary, optionally refreshing it on an interval",
	Example: `  task-tracker summary
  task-tracker summary --watch 30s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer closeDB(db)

		analytics := services.NewAnalyticsService(repository.NewStore(db), nil)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return watchSummary(ctx, analytics, watchInterval, out)
	},
}

func init() {
	summaryCmd.Flags().DurationVar(&watchInterval, "watch", 0, "refresh interval (0 prints once)")
}

// watchSummary prints the summary, then again on every tick until ctx ends.
// A zero interval prints once.
func watchSummary(ctx context.Context, analytics *services.AnalyticsService, interval time.Duration, w io.Writer) error {
	if err := printSummary(ctx, analytics, w); err != nil {
		return err
	}
	if interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := printSummary(ctx, analytics, w); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}
	}
}

func printSummary(ctx context.Context, analytics *services.AnalyticsService, w io.Writer) error {
	summary, err := analytics.Summary(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.ToSummaryDTO(*summary))
}
