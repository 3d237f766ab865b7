package processor

import (
	"github.com/nguyentantai21042004/chapter-flow/internal/chapters"
	"github.com/nguyentantai21042004/chapter-flow/internal/config"
	"github.com/nguyentantai21042004/chapter-flow/internal/logger"
	"github.com/nguyentantai21042004/chapter-flow/internal/media"
	"github.com/nguyentantai21042004/chapter-flow/internal/stt"
)

type implProcessor struct {
	cfg         *config.Config
	extractor   media.Extractor
	transcriber stt.Transcriber
	inferrer    chapters.Inferrer
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, extractor media.Extractor, transcriber stt.Transcriber, inferrer chapters.Inferrer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		extractor:   extractor,
		transcriber: transcriber,
		inferrer:    inferrer,
		logger:      log,
	}
}
