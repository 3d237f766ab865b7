package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extract probes videoPath for an audio stream and converts it to the
// configured format in the audio directory.
func (e *implExtractor) Extract(ctx context.Context, videoPath string) (string, error) {
	if err := e.probeAudio(ctx, videoPath); err != nil {
		return "", err
	}

	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	tmp, err := os.CreateTemp(e.opts.AudioDir, base+"-*."+e.opts.Format)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}
	audioPath := tmp.Name()
	tmp.Close()

	e.logger.Info(ctx, "Extracting audio: %s -> %s", videoPath, audioPath)

	// -vn: no video, -ac 1 -ar 16000: mono 16kHz, which is what whisper wants
	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
	}
	switch e.opts.Format {
	case "mp3":
		args = append(args, "-c:a", "libmp3lame", "-b:a", "64k")
	default:
		args = append(args, "-c:a", "pcm_s16le")
	}
	args = append(args, "-threads", "0", "-y", audioPath)

	if _, err := e.executor.Execute(ctx, e.opts.FFmpegPath, args...); err != nil {
		os.Remove(audioPath)
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	info, err := os.Stat(audioPath)
	if err != nil || info.Size() == 0 {
		os.Remove(audioPath)
		return "", fmt.Errorf("ffmpeg produced no audio for %s", videoPath)
	}

	e.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return audioPath, nil
}

// probeAudio fails with ErrNoAudioTrack when ffprobe lists no audio stream.
func (e *implExtractor) probeAudio(ctx context.Context, videoPath string) error {
	out, err := e.executor.Execute(ctx, e.opts.FFprobePath,
		"-v", "error",
		"-select_streams", "a",
		"-show_entries", "stream=index",
		"-of", "csv=p=0",
		videoPath,
	)
	if err != nil {
		return fmt.Errorf("ffprobe %s: %w", videoPath, err)
	}
	if strings.TrimSpace(out) == "" {
		return fmt.Errorf("%s: %w", videoPath, ErrNoAudioTrack)
	}
	return nil
}
