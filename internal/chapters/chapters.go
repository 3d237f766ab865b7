// Package chapters asks a language model for chapter markers and turns its
// free-form answer into a validated, strictly ordered chapter list.
package chapters

import (
	"errors"
	"strings"
	"time"

	"github.com/nguyentantai21042004/chapter-flow/internal/transcript"
)

// ErrNoChapters is returned when no usable chapter survives validation.
var ErrNoChapters = errors.New("no valid chapter lines in model response")

// IntroTitle is the title of the marker synthesized at 00:00:00.
const IntroTitle = "Intro"

// Marker is one chapter boundary.
type Marker struct {
	Start time.Duration
	Title string
}

// List is ordered by strictly increasing Start and never empty.
type List []Marker

// Format renders the chapters artifact: one "HH:MM:SS - Title" line per
// marker, each newline-terminated.
func Format(l List) string {
	var sb strings.Builder
	for _, m := range l {
		sb.WriteString(transcript.FormatTimestamp(m.Start))
		sb.WriteString(" - ")
		sb.WriteString(m.Title)
		sb.WriteByte('\n')
	}
	return sb.String()
}
