package chapters

import (
	"fmt"
	"time"

	"github.com/nguyentantai21042004/chapter-flow/internal/transcript"
)

const baseInstructions = `Create video chapter titles optimized for engagement and keywords.
Read the whole transcript and do not make too many chapters for its length: viewers want a few precise, broad chapters, not one per transcript line.
The correct timestamps are really important. Only use timestamps that appear in the transcript, and start the first chapter where the content begins.
Provide only the chapters, one per line, in the following format and nothing else:
HH:MM:SS - Chapter Title`

// Request is what gets sent to the language model.
type Request struct {
	Instructions string
	Input        string
}

// BuildRequest wraps the normalized transcript into a chapter request. The
// result depends only on t.
func BuildRequest(t transcript.Transcript) Request {
	instructions := fmt.Sprintf("%s\n\nThe transcript runs from %s to %s. Use at most %d chapters.",
		baseInstructions,
		transcript.FormatTimestamp(t.Start()),
		transcript.FormatTimestamp(t.End()),
		chapterBudget(t.End()-t.Start()),
	)

	return Request{
		Instructions: instructions,
		Input:        "Here is a timestamped transcript of a video:\n\n" + t.Text() + "\n\n",
	}
}

// chapterBudget allows roughly one chapter per four minutes, within [3, 15].
func chapterBudget(span time.Duration) int {
	n := 1 + int(span/(4*time.Minute))
	if n < 3 {
		return 3
	}
	if n > 15 {
		return 15
	}
	return n
}
