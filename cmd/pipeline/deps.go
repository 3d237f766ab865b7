package main

import (
	"fmt"
	"time"

	"github.com/nguyentantai21042004/chapter-flow/internal/chapters"
	"github.com/nguyentantai21042004/chapter-flow/internal/config"
	"github.com/nguyentantai21042004/chapter-flow/internal/llm"
	"github.com/nguyentantai21042004/chapter-flow/internal/logger"
	"github.com/nguyentantai21042004/chapter-flow/internal/media"
	"github.com/nguyentantai21042004/chapter-flow/internal/processor"
	"github.com/nguyentantai21042004/chapter-flow/internal/stt"
	"github.com/nguyentantai21042004/chapter-flow/pkg/executor"
)

// newProcessor wires the configured backends into a Processor.
func newProcessor(cfg *config.Config, log logger.Logger) (processor.Processor, error) {
	exec := executor.New()
	if err := requireTools(cfg, exec); err != nil {
		return nil, err
	}

	extractor := media.New(media.Options{
		FFmpegPath:  cfg.FFmpeg.BinaryPath,
		FFprobePath: cfg.FFmpeg.ProbePath,
		AudioDir:    cfg.Paths.Audio,
		Format:      cfg.FFmpeg.AudioFormat,
	}, exec, log)

	transcriber, err := newTranscriber(cfg, exec, log)
	if err != nil {
		return nil, err
	}

	gen, err := newGenerator(cfg, log)
	if err != nil {
		return nil, err
	}
	inferrer := chapters.New(gen, chapters.Options{
		MaxRetries:      cfg.Chapters.MaxRetries,
		RateLimitPerMin: cfg.Chapters.RateLimitPerMin,
		Backoff:         2 * time.Second,
	}, log)

	return processor.New(cfg, extractor, transcriber, inferrer, log), nil
}

// requireTools fails fast when a binary the configured backends shell out to
// is missing.
func requireTools(cfg *config.Config, exec executor.Executor) error {
	tools := []string{cfg.FFmpeg.BinaryPath, cfg.FFmpeg.ProbePath}
	if cfg.Transcription.Backend == config.BackendWhisper {
		tools = append(tools, cfg.Whisper.BinaryPath)
	}
	for _, tool := range tools {
		if _, err := exec.LookPath(tool); err != nil {
			return err
		}
	}
	return nil
}

func newTranscriber(cfg *config.Config, exec executor.Executor, log logger.Logger) (stt.Transcriber, error) {
	switch cfg.Transcription.Backend {
	case config.BackendWhisper:
		return stt.NewWhisper(stt.WhisperOptions{
			BinaryPath: cfg.Whisper.BinaryPath,
			ModelPath:  cfg.Whisper.ModelPath,
			Language:   cfg.Transcription.Language,
			Prompt:     cfg.Whisper.Prompt,
			Threads:    cfg.Whisper.Threads,
			WorkDir:    cfg.Paths.Audio,
		}, exec, log), nil
	case config.BackendOpenAI:
		return stt.NewOpenAI(stt.OpenAIOptions{
			APIKey:         cfg.OpenAI.APIKey,
			BaseURL:        cfg.OpenAI.BaseURL,
			Model:          cfg.OpenAI.TranscriptionModel,
			Language:       cfg.Transcription.Language,
			ResponseFormat: cfg.OpenAI.ResponseFormat,
		}, nil, log), nil
	}
	return nil, fmt.Errorf("unknown transcription backend %q", cfg.Transcription.Backend)
}

func newGenerator(cfg *config.Config, log logger.Logger) (llm.Generator, error) {
	switch cfg.Chapters.Provider {
	case config.ProviderGemini:
		return llm.NewGemini(cfg.Gemini.APIKeys, cfg.Chapters.Model, "", log), nil
	case config.ProviderOpenAI:
		return llm.NewOpenAI(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.Chapters.Model, cfg.Chapters.MaxTokens, nil), nil
	}
	return nil, fmt.Errorf("unknown chapters provider %q", cfg.Chapters.Provider)
}
