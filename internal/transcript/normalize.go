package transcript

import (
	"fmt"
	"strings"
	"time"
)

// Normalize renders one "[HH:MM:SS] text" line per segment, joined by single
// newlines with no trailing newline. The chapter prompt tells the model to
// read timestamps in exactly this shape.
func Normalize(t Transcript) string {
	var sb strings.Builder
	for i, s := range t.Segments {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		sb.WriteString(FormatTimestamp(s.Start))
		sb.WriteString("] ")
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// FormatTimestamp renders d as HH:MM:SS, dropping any fraction of a second.
// Hours grow past two digits when needed.
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total/60%60, total%60)
}
