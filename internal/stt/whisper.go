package stt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Transcribe runs whisper.cpp on audioPath and returns its SRT output.
func (w *implWhisper) Transcribe(ctx context.Context, audioPath string) (Result, error) {
	tempDir, err := os.MkdirTemp(w.opts.WorkDir, "whisper-*")
	if err != nil {
		return Result{}, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	// Whisper appends .srt to the prefix
	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	outputPrefix := filepath.Join(tempDir, base)

	language := w.opts.Language
	if language == "" {
		language = "auto"
	}

	w.logger.Info(ctx, "Starting transcription with %d threads: %s", w.opts.Threads, audioPath)

	// -osrt: SRT output, -l: forced language, -bo 5: best of 5
	args := []string{
		"-m", w.opts.ModelPath,
		"-f", audioPath,
		"-osrt",
		"-l", language,
		"-t", strconv.Itoa(w.opts.Threads),
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if w.opts.Prompt != "" {
		args = append(args, "--prompt", w.opts.Prompt)
	}

	if _, err := w.executor.Execute(ctx, w.opts.BinaryPath, args...); err != nil {
		return Result{}, fmt.Errorf("whisper transcribe: %w", err)
	}

	srtPath := outputPrefix + ".srt"
	data, err := os.ReadFile(srtPath)
	if err != nil {
		return Result{}, fmt.Errorf("read whisper output: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return Result{}, ErrEmptyTranscript
	}

	w.logger.Info(ctx, "Transcription completed: %s (%d bytes)", audioPath, len(data))
	return Result{SRT: string(data)}, nil
}
