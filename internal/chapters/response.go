package chapters

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// reChapterLine accepts "HH:MM:SS - Title" and "HH:MM - Title", optionally
// behind a list bullet or number, in brackets or bold, with -, –, —, : or |
// as separator.
var reChapterLine = regexp.MustCompile(
	`^(?:[-*•]\s*|\d+[.)]\s+)?(?:\*\*)?[\[(]?(\d{1,3}):(\d{2})(?::(\d{2}))?[\])]?(?:\*\*)?\s*(?:[-–—:|]\s*)?(.*)$`)

// Candidate is a parsed but not yet validated chapter line.
type Candidate struct {
	Line  int // 1-based line number in the response
	Start time.Duration
	Title string

	// Alt is the MM:SS reading of a two-part stamp, which Start reads as HH:MM.
	Alt    time.Duration
	HasAlt bool
}

// Dropped records a response line or marker discarded on the way to a List.
type Dropped struct {
	Line   int
	Text   string
	Reason string
}

// ParseResponse extracts chapter candidates from a model answer. Lines that
// do not look like chapters are dropped and reported.
func ParseResponse(text string) ([]Candidate, []Dropped) {
	var (
		cands   []Candidate
		dropped []Dropped
	)

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}

		m := reChapterLine.FindStringSubmatch(line)
		if m == nil {
			dropped = append(dropped, Dropped{Line: i + 1, Text: line, Reason: "no timestamp prefix"})
			continue
		}

		c, reason := toCandidate(m)
		if reason != "" {
			dropped = append(dropped, Dropped{Line: i + 1, Text: line, Reason: reason})
			continue
		}
		c.Line = i + 1
		cands = append(cands, c)
	}

	return cands, dropped
}

func toCandidate(m []string) (Candidate, string) {
	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[2])

	title := cleanTitle(m[4])
	if title == "" {
		return Candidate{}, "missing title"
	}
	if strings.IndexFunc(title, unicode.IsControl) >= 0 {
		return Candidate{}, "control character in title"
	}

	if m[3] != "" {
		s, _ := strconv.Atoi(m[3])
		if b >= 60 || s >= 60 {
			return Candidate{}, "invalid clock"
		}
		return Candidate{
			Start: time.Duration(a)*time.Hour + time.Duration(b)*time.Minute + time.Duration(s)*time.Second,
			Title: title,
		}, ""
	}

	if b >= 60 {
		return Candidate{}, "invalid clock"
	}
	return Candidate{
		Start:  time.Duration(a)*time.Hour + time.Duration(b)*time.Minute,
		Alt:    time.Duration(a)*time.Minute + time.Duration(b)*time.Second,
		HasAlt: a < 60,
		Title:  title,
	}, ""
}

func cleanTitle(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, "*_`")
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' && s[len(s)-1] == '"' || s[0] == '\'' && s[len(s)-1] == '\'') {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
