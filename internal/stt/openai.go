package stt

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/chapter-flow/internal/transcript"
)

// Transcribe uploads audioPath and returns SRT text or segments, depending on
// the configured response format.
func (o *implOpenAI) Transcribe(ctx context.Context, audioPath string) (Result, error) {
	format := openai.AudioResponseFormatSRT
	if o.opts.ResponseFormat == string(openai.AudioResponseFormatVerboseJSON) {
		format = openai.AudioResponseFormatVerboseJSON
	}

	o.logger.Info(ctx, "Uploading %s to %s (%s)", audioPath, o.opts.Model, format)

	resp, err := o.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    o.opts.Model,
		FilePath: audioPath,
		Language: o.opts.Language,
		Format:   format,
	})
	if err != nil {
		return Result{}, fmt.Errorf("openai transcription: %w", err)
	}

	if format == openai.AudioResponseFormatSRT {
		if strings.TrimSpace(resp.Text) == "" {
			return Result{}, ErrEmptyTranscript
		}
		return Result{SRT: resp.Text}, nil
	}

	if len(resp.Segments) == 0 {
		return Result{}, ErrEmptyTranscript
	}
	segs := make([]transcript.Segment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		segs = append(segs, transcript.Segment{
			Start: time.Duration(math.Round(s.Start*1000)) * time.Millisecond,
			Text:  s.Text,
		})
	}
	return Result{Segments: segs}, nil
}
