package watcher

import "context"

// Watcher hands videos created in a directory to an EventHandler.
type Watcher interface {
	// Start blocks until ctx is done.
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one settled video. Its error is only logged.
type EventHandler func(ctx context.Context, videoPath string) error
