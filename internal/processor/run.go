package processor

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/chapter-flow/internal/logger"
)

// Run processes every path, at most Performance.MaxConcurrent at a time.
// Once ctx is done no new file starts; files already running finish.
func (p *implProcessor) Run(ctx context.Context, paths []string) ([]Result, error) {
	runID := uuid.NewString()[:8]
	ctx = logger.WithRunID(ctx, runID)

	limit := p.cfg.Performance.MaxConcurrent
	if limit <= 0 {
		limit = 1
	}
	p.logger.Info(ctx, "Batch started: %d videos, max concurrent %d", len(paths), limit)

	results := make([]Result, len(paths))
	for i, path := range paths {
		results[i] = Result{VideoPath: path, Err: fmt.Errorf("not started: %w", context.Canceled)}
	}
	conflicts := outputConflicts(paths)

	var g errgroup.Group
	g.SetLimit(limit)
	for i, path := range paths {
		if ctx.Err() != nil {
			break
		}
		if first, ok := conflicts[i]; ok {
			err := stageErr(PersistenceError, "artifact name %q is already used by %s in this batch",
				baseName(path), paths[first])
			results[i] = Result{VideoPath: path, Kind: PersistenceError, Err: err}
			p.logger.Error(ctx, "Skipping %s: %v", path, results[i].Err)
			continue
		}
		g.Go(func() error {
			// g.Go may have blocked on the limit while ctx was canceled.
			if err := ctx.Err(); err != nil {
				results[i].Err = fmt.Errorf("not started: %w", err)
				return nil
			}
			results[i] = p.Process(context.WithoutCancel(ctx), path)
			return nil
		})
	}
	g.Wait()

	var ok, failed, skipped int
	for _, r := range results {
		switch {
		case r.OK():
			ok++
		case r.Kind == KindNone:
			skipped++
		default:
			failed++
		}
	}
	p.logger.Info(ctx, "Batch finished: %d succeeded, %d failed, %d not started", ok, failed, skipped)

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

// outputConflicts maps the index of every path whose artifacts would land on
// an earlier path's artifacts to the index of that earlier path. Names are
// compared case-insensitively.
func outputConflicts(paths []string) map[int]int {
	seen := make(map[string]int, len(paths))
	conflicts := make(map[int]int)
	for i, path := range paths {
		key := strings.ToLower(baseName(path))
		if first, ok := seen[key]; ok {
			conflicts[i] = first
			continue
		}
		seen[key] = i
	}
	return conflicts
}

// RunDir runs every video found in Paths.Input.
func (p *implProcessor) RunDir(ctx context.Context) ([]Result, error) {
	paths, err := Discover(p.cfg.Paths.Input, p.cfg.IsVideo)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		p.logger.Info(ctx, "No videos found in %s", p.cfg.Paths.Input)
		return nil, nil
	}
	return p.Run(ctx, paths)
}
