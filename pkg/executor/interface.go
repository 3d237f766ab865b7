package executor

import "context"

// Executor runs the external tools the pipeline depends on (ffmpeg,
// ffprobe, whisper.cpp).
type Executor interface {
	// Execute runs name with args and returns its stdout. A non-zero exit is
	// reported as *CommandError.
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// LookPath resolves name the way Execute will, so a missing tool is
	// reported before any file is processed.
	LookPath(name string) (string, error)
}
