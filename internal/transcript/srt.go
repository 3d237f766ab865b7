package transcript

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reIndex     = regexp.MustCompile(`^\d+$`)
	reTimeRange = regexp.MustCompile(`^(\d{1,3}):(\d{2}):(\d{2})(?:[,.](\d+))?\s*-->\s*\d{1,3}:\d{2}:\d{2}(?:[,.]\d+)?`)
	reBlankLine = regexp.MustCompile(`\n[ \t]*\n`)
)

// ParseSRT parses subtitle-formatted text into a Transcript.
//
//	1                                 index (ignored)
//	00:00:01,000 --> 00:00:04,000     start is kept, end is discarded
//	Hello                             one or more text lines
//	world
//
// Malformed entries are skipped and returned so the caller can report them.
// If no entry survives, ErrNoSegments is returned.
func ParseSRT(raw string) (Transcript, []Skipped, error) {
	raw = strings.TrimPrefix(raw, "\ufeff")
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	var (
		segments []Segment
		skipped  []Skipped
	)

	entry := 0
	for _, block := range reBlankLine.Split(raw, -1) {
		block = strings.Trim(block, "\n")
		if strings.TrimSpace(block) == "" {
			continue
		}
		entry++

		seg, reason := parseBlock(block)
		if reason != "" {
			skipped = append(skipped, Skipped{Entry: entry, Reason: reason})
			continue
		}
		segments = append(segments, seg)
	}

	if len(segments) == 0 {
		return Transcript{}, skipped, ErrNoSegments
	}
	return Transcript{Segments: segments}, skipped, nil
}

// parseBlock returns a non-empty reason when the block is not a valid entry.
func parseBlock(block string) (Segment, string) {
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	// The index line is optional; some tools omit it.
	if reIndex.MatchString(lines[0]) {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return Segment{}, "missing time range"
	}

	m := reTimeRange.FindStringSubmatch(lines[0])
	if m == nil {
		return Segment{}, "malformed time range " + strconv.Quote(lines[0])
	}
	start, ok := clockToDuration(m[1], m[2], m[3], m[4])
	if !ok {
		return Segment{}, "time out of range " + strconv.Quote(lines[0])
	}

	var words []string
	for _, l := range lines[1:] {
		words = append(words, strings.Fields(l)...)
	}
	if len(words) == 0 {
		return Segment{}, "empty text"
	}

	return Segment{Start: start, Text: strings.Join(words, " ")}, ""
}

func clockToDuration(hh, mm, ss, frac string) (time.Duration, bool) {
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	s, _ := strconv.Atoi(ss)
	if m >= 60 || s >= 60 {
		return 0, false
	}

	d := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
	if frac != "" {
		// ",5" is half a second, ",050" fifty milliseconds. Digits past
		// milliseconds are ignored.
		if len(frac) > 3 {
			frac = frac[:3]
		}
		for len(frac) < 3 {
			frac += "0"
		}
		ms, _ := strconv.Atoi(frac)
		d += time.Duration(ms) * time.Millisecond
	}
	return d, true
}
