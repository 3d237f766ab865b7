package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/chapter-flow/internal/config"
	"github.com/nguyentantai21042004/chapter-flow/internal/logger"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Turn videos into timestamped chapter lists",
	Long: `pipeline extracts the audio of each video, transcribes it, and asks a
language model for chapter markers. Every video gets a validated
<name>_chapters.txt with one "HH:MM:SS - Title" line per chapter.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// setup loads the config, builds the logger and makes sure every working
// directory exists.
func setup(ctx context.Context) (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "System: %s/%s, %d CPUs", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	log.Info(ctx, "Transcription: %s, chapters: %s (%s), max concurrent: %d",
		cfg.Transcription.Backend, cfg.Chapters.Provider, cfg.Chapters.Model, cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Audio,
		cfg.Paths.Transcripts,
		cfg.Paths.Output,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
