package media

import (
	"github.com/nguyentantai21042004/chapter-flow/internal/logger"
	"github.com/nguyentantai21042004/chapter-flow/pkg/executor"
)

// Options configures ffmpeg.
type Options struct {
	FFmpegPath  string
	FFprobePath string
	// AudioDir is where extracted tracks are staged.
	AudioDir string
	// Format is "wav" (16kHz mono PCM, whisper.cpp) or "mp3" (small uploads).
	Format string
}

type implExtractor struct {
	opts     Options
	executor executor.Executor
	logger   logger.Logger
}

// New creates an ffmpeg-backed Extractor.
func New(opts Options, exec executor.Executor, log logger.Logger) Extractor {
	if opts.FFmpegPath == "" {
		opts.FFmpegPath = "ffmpeg"
	}
	if opts.FFprobePath == "" {
		opts.FFprobePath = "ffprobe"
	}
	if opts.Format == "" {
		opts.Format = "wav"
	}
	return &implExtractor{
		opts:     opts,
		executor: exec,
		logger:   log,
	}
}
