package chapters

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/nguyentantai21042004/chapter-flow/internal/llm"
	"github.com/nguyentantai21042004/chapter-flow/internal/logger"
)

// Options tunes how the model is called.
type Options struct {
	// MaxRetries is the number of attempts per transcript.
	MaxRetries int
	// RateLimitPerMin caps model requests across all files; <= 0 disables it.
	RateLimitPerMin int
	// Backoff is the delay before the second attempt, doubled after each failure.
	Backoff time.Duration
}

type implInferrer struct {
	gen     llm.Generator
	limiter *rate.Limiter
	opts    Options
	logger  logger.Logger
}

// New creates an Inferrer backed by gen. It is safe for concurrent use if gen is.
func New(gen llm.Generator, opts Options, log logger.Logger) Inferrer {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 1
	}
	if opts.Backoff <= 0 {
		opts.Backoff = time.Second
	}

	limit := rate.Inf
	if opts.RateLimitPerMin > 0 {
		limit = rate.Limit(float64(opts.RateLimitPerMin) / 60.0)
	}

	return &implInferrer{
		gen:     gen,
		limiter: rate.NewLimiter(limit, 1),
		opts:    opts,
		logger:  log,
	}
}
