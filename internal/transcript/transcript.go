// Package transcript turns speech-to-text output into an ordered list of
// timed segments and renders the "[HH:MM:SS] text" view the chapter prompt
// is written against.
package transcript

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNoSegments is returned when a transcript contains no usable segment.
var ErrNoSegments = errors.New("transcript has no valid timed segments")

// Segment is one recognized span of speech.
type Segment struct {
	Start time.Duration
	Text  string
}

// Transcript is the ordered sequence of segments for one media file.
type Transcript struct {
	Segments []Segment
}

// Skipped describes an input entry that was dropped while building a
// Transcript. Entry is 1-based in source order.
type Skipped struct {
	Entry  int
	Reason string
}

func (s Skipped) String() string {
	return fmt.Sprintf("entry %d: %s", s.Entry, s.Reason)
}

// FromSegments builds a Transcript from segments a speech service already
// returned in structured form. Text is flattened to a single line; empty
// segments are dropped and reported.
func FromSegments(segs []Segment) (Transcript, []Skipped, error) {
	var (
		out     []Segment
		skipped []Skipped
	)
	for i, s := range segs {
		text := strings.Join(strings.Fields(s.Text), " ")
		switch {
		case text == "":
			skipped = append(skipped, Skipped{Entry: i + 1, Reason: "empty text"})
			continue
		case s.Start < 0:
			skipped = append(skipped, Skipped{Entry: i + 1, Reason: "negative start"})
			continue
		}
		out = append(out, Segment{Start: s.Start, Text: text})
	}
	if len(out) == 0 {
		return Transcript{}, skipped, ErrNoSegments
	}
	return Transcript{Segments: out}, skipped, nil
}

// Start is the first segment's start, truncated to whole seconds.
func (t Transcript) Start() time.Duration {
	if len(t.Segments) == 0 {
		return 0
	}
	return t.Segments[0].Start.Truncate(time.Second)
}

// End is the last segment's start, truncated to whole seconds. Chapters may
// not begin after it.
func (t Transcript) End() time.Duration {
	if len(t.Segments) == 0 {
		return 0
	}
	return t.Segments[len(t.Segments)-1].Start.Truncate(time.Second)
}

// Text is the normalized view, see Normalize.
func (t Transcript) Text() string {
	return Normalize(t)
}
