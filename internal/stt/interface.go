package stt

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/chapter-flow/internal/transcript"
)

// ErrEmptyTranscript is returned when the service produced nothing.
var ErrEmptyTranscript = errors.New("speech-to-text returned an empty transcript")

// Result carries whichever shape the service produced: subtitle text or
// structured segments. Exactly one is set.
type Result struct {
	SRT      string
	Segments []transcript.Segment
}

// Transcriber converts an audio file to timed text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (Result, error)
}
