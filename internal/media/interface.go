package media

import (
	"context"
	"errors"
)

// ErrNoAudioTrack is returned for media without an audio stream.
var ErrNoAudioTrack = errors.New("media has no audio track")

// Extractor pulls the audio track out of a video into a temporary file. The
// caller owns the returned file and must remove it.
type Extractor interface {
	Extract(ctx context.Context, videoPath string) (string, error)
}
