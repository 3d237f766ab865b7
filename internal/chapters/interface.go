package chapters

import (
	"context"

	"github.com/nguyentantai21042004/chapter-flow/internal/transcript"
)

// Inferrer derives a validated chapter list from a transcript.
type Inferrer interface {
	Infer(ctx context.Context, t transcript.Transcript) (List, error)
}
