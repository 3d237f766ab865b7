package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/chapter-flow/internal/logger"
	"github.com/nguyentantai21042004/chapter-flow/internal/processor"
)

// failedFilesError makes the process exit with code 2.
type failedFilesError struct {
	failed int
}

func (e *failedFilesError) Error() string {
	return fmt.Sprintf("%d videos failed", e.failed)
}

var runCmd = &cobra.Command{
	Use:   "run [video...]",
	Short: "Process the given videos, or every video in the input directory",
	RunE:  runBatch,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
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

	var results []processor.Result
	if len(args) > 0 {
		results, err = proc.Run(ctx, args)
	} else {
		results, err = proc.RunDir(ctx)
	}
	if results == nil && err != nil {
		return err
	}

	return report(ctx, log, results, err)
}

// report prints one line per video and turns failures into an exit status.
func report(ctx context.Context, log logger.Logger, results []processor.Result, runErr error) error {
	if failed := logResults(ctx, log, results, runErr); failed > 0 {
		return &failedFilesError{failed: failed}
	}
	return nil
}

// logResults prints one line per video and returns how many did not succeed.
func logResults(ctx context.Context, log logger.Logger, results []processor.Result, runErr error) int {
	failed := 0
	for _, r := range results {
		name := filepath.Base(r.VideoPath)
		switch {
		case r.OK():
			log.Info(ctx, "OK      %s -> %s (%s)", name, r.ChaptersPath, r.Duration.Round(time.Millisecond))
		case r.Kind == processor.KindNone:
			failed++
			log.Warn(ctx, "SKIPPED %s: %v", name, r.Err)
		default:
			failed++
			log.Error(ctx, "FAILED  %s [%s]: %v", name, r.Kind, r.Err)
		}
	}

	if runErr != nil {
		log.Warn(ctx, "Batch interrupted: %v", runErr)
	}
	return failed
}
