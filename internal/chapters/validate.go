package chapters

import (
	"sort"
	"strings"
	"time"

	"github.com/nguyentantai21042004/chapter-flow/internal/transcript"
)

// Validate repairs parsed candidates into a List for content spanning
// [contentStart, contentEnd]:
//
//   - a two-part stamp past contentEnd falls back to its MM:SS reading when that fits
//   - markers are sorted by start, keeping source order among equal starts
//   - duplicate starts keep the first occurrence
//   - markers starting after contentEnd are dropped
//   - a 00:00:00 Intro is prepended when the first marker is not at the
//     content start, unless a marker at zero or an Intro already exists
//
// ErrNoChapters is returned when nothing is left.
func Validate(cands []Candidate, contentStart, contentEnd time.Duration) (List, []Dropped, error) {
	var dropped []Dropped

	resolved := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if c.Start > contentEnd && c.HasAlt && c.Alt <= contentEnd {
			c.Start = c.Alt
		}
		if c.Start > contentEnd {
			dropped = append(dropped, Dropped{Line: c.Line, Text: describe(c), Reason: "starts after content end " + transcript.FormatTimestamp(contentEnd)})
			continue
		}
		resolved = append(resolved, c)
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].Start < resolved[j].Start
	})

	list := make(List, 0, len(resolved))
	for _, c := range resolved {
		if n := len(list); n > 0 && list[n-1].Start == c.Start {
			dropped = append(dropped, Dropped{Line: c.Line, Text: describe(c), Reason: "duplicate start"})
			continue
		}
		list = append(list, Marker{Start: c.Start, Title: c.Title})
	}

	if len(list) == 0 {
		return nil, dropped, ErrNoChapters
	}

	if first := list[0].Start; first != contentStart && first > 0 && !hasIntro(list) {
		list = append(List{{Start: 0, Title: IntroTitle}}, list...)
	}

	return list, dropped, nil
}

func hasIntro(l List) bool {
	for _, m := range l {
		if strings.EqualFold(m.Title, IntroTitle) {
			return true
		}
	}
	return false
}

func describe(c Candidate) string {
	return transcript.FormatTimestamp(c.Start) + " - " + c.Title
}
