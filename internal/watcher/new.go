package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/chapter-flow/internal/logger"
)

// Options configures which files are handed to the handler and when.
type Options struct {
	InputDir string
	// IsVideo filters file names; nil accepts everything.
	IsVideo func(name string) bool
	// SettleDelay is waited after a CREATE so the writer can finish.
	SettleDelay   time.Duration
	MaxConcurrent int
}

// New creates a new Watcher instance with concurrency control
func New(opts Options, handler EventHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(opts.InputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	// Default to 2 concurrent if not specified
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	if opts.IsVideo == nil {
		opts.IsVideo = func(string) bool { return true }
	}

	return &implWatcher{
		opts:      opts,
		handler:   handler,
		logger:    log,
		watcher:   watcher,
		semaphore: make(chan struct{}, opts.MaxConcurrent),
	}, nil
}
