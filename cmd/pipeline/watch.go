package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/chapter-flow/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Process existing videos, then every new video dropped into the input directory",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log, err := setup(ctx)
	if err != nil {
		return err
	}

	proc, err := newProcessor(cfg, log)
	if err != nil {
		return err
	}

	// Start watching before the initial scan so nothing dropped in between is missed.
	w, err := watcher.New(watcher.Options{
		InputDir:      cfg.Paths.Input,
		IsVideo:       cfg.IsVideo,
		SettleDelay:   cfg.Watch.SettleDelay,
		MaxConcurrent: cfg.Performance.MaxConcurrent,
	}, func(ctx context.Context, filePath string) error {
		return proc.Process(ctx, filePath).Err
	}, log)
	if err != nil {
		return err
	}
	defer w.Stop()

	results, err := proc.RunDir(ctx)
	if err != nil && results == nil {
		return err
	}
	if failed := logResults(ctx, log, results, err); failed > 0 {
		log.Warn(ctx, "%d of %d existing videos failed, continuing with new ones", failed, len(results))
	}
	if ctx.Err() != nil {
		return nil
	}

	log.Info(ctx, "Monitoring %s, output %s. Press Ctrl+C to stop", cfg.Paths.Input, cfg.Paths.Output)
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info(ctx, "Pipeline stopped")
	return nil
}
