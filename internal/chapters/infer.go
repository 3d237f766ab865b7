package chapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/chapter-flow/internal/transcript"
)

// Infer asks the model for chapters and validates the answer. A failed call
// or an answer without a single usable chapter is retried with backoff.
func (i *implInferrer) Infer(ctx context.Context, t transcript.Transcript) (List, error) {
	req := BuildRequest(t)

	var lastErr error
	for attempt := 0; attempt < i.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := i.opts.Backoff << uint(attempt-1)
			i.logger.Warn(ctx, "Chapter inference attempt %d failed, retrying in %s: %v", attempt, backoff, lastErr)

			timer := time.NewTimer(backoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}

		if err := i.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		resp, err := i.gen.Generate(ctx, req.Instructions, req.Input)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("generate chapters: %w", err)
			}
			lastErr = fmt.Errorf("generate chapters: %w", err)
			continue
		}

		list, err := i.interpret(ctx, resp, t)
		if err != nil {
			lastErr = err
			continue
		}
		return list, nil
	}

	return nil, fmt.Errorf("after %d attempts: %w", i.opts.MaxRetries, lastErr)
}

func (i *implInferrer) interpret(ctx context.Context, resp string, t transcript.Transcript) (List, error) {
	cands, dropped := ParseResponse(resp)
	list, invalid, err := Validate(cands, t.Start(), t.End())
	dropped = append(dropped, invalid...)

	for _, d := range dropped {
		i.logger.Warn(ctx, "Dropped chapter line %d (%s): %q", d.Line, d.Reason, d.Text)
	}
	if err != nil {
		if errors.Is(err, ErrNoChapters) && len(dropped) > 0 {
			return nil, fmt.Errorf("%w (%d lines dropped)", err, len(dropped))
		}
		return nil, err
	}

	i.logger.Debug(ctx, "Accepted %d chapters, dropped %d lines", len(list), len(dropped))
	return list, nil
}
