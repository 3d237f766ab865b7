package processor

import (
	"fmt"
	"time"
)

// Kind names the pipeline stage a file failed in.
type Kind int

const (
	// KindNone marks a successful file, or one that never started.
	KindNone Kind = iota
	ExtractionError
	TranscriptionError
	ParseError
	InferenceError
	PersistenceError
)

func (k Kind) String() string {
	switch k {
	case ExtractionError:
		return "extraction"
	case TranscriptionError:
		return "transcription"
	case ParseError:
		return "parse"
	case InferenceError:
		return "inference"
	case PersistenceError:
		return "persistence"
	}
	return "none"
}

// StageError ties a failure to its stage.
type StageError struct {
	Kind Kind
	Err  error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(kind Kind, format string, args ...interface{}) error {
	return &StageError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Result is the outcome for one video.
type Result struct {
	VideoPath      string
	ChaptersPath   string
	TranscriptPath string
	Kind           Kind
	Err            error
	Duration       time.Duration
}

// OK reports whether the chapters artifact was written.
func (r Result) OK() bool {
	return r.Err == nil
}
