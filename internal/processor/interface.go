package processor

import "context"

// Processor turns videos into chapter artifacts.
type Processor interface {
	// Process runs the whole pipeline for one video. Failures are reported in
	// the Result, never returned.
	Process(ctx context.Context, videoPath string) Result
	// Run processes paths with bounded parallelism. Results are in input
	// order. The error is non-nil only when ctx stopped the batch early.
	Run(ctx context.Context, paths []string) ([]Result, error)
	// RunDir discovers the videos in the input directory and runs them.
	RunDir(ctx context.Context) ([]Result, error)
}
