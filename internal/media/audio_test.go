package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/chapter-flow/internal/logger"
)

// fakeExecutor answers ffprobe with probeOut and plays ffmpeg by writing the
// last argument.
type fakeExecutor struct {
	probeOut  string
	probeErr  error
	ffmpegErr error
	ffmpegArg []string
}

func (f *fakeExecutor) LookPath(name string) (string, error) {
	return name, nil
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	switch name {
	case "ffprobe":
		return f.probeOut, f.probeErr
	case "ffmpeg":
		f.ffmpegArg = args
		if f.ffmpegErr != nil {
			return "", f.ffmpegErr
		}
		return "", os.WriteFile(args[len(args)-1], []byte("RIFF"), 0644)
	}
	return "", errors.New("unexpected command " + name)
}

func TestExtract(t *testing.T) {
	dir := t.TempDir()
	exec := &fakeExecutor{probeOut: "1\n"}
	ex := New(Options{AudioDir: dir}, exec, logger.Discard())

	audioPath, err := ex.Extract(context.Background(), "/videos/My Talk.mp4")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if filepath.Dir(audioPath) != dir {
		t.Errorf("audio staged in %s, want %s", filepath.Dir(audioPath), dir)
	}
	if !strings.HasPrefix(filepath.Base(audioPath), "My Talk-") || filepath.Ext(audioPath) != ".wav" {
		t.Errorf("unexpected audio name %s", audioPath)
	}
	if !strings.Contains(strings.Join(exec.ffmpegArg, " "), "-c:a pcm_s16le") {
		t.Errorf("wav extraction should use pcm: %v", exec.ffmpegArg)
	}
}

func TestExtractMP3(t *testing.T) {
	exec := &fakeExecutor{probeOut: "1\n"}
	ex := New(Options{AudioDir: t.TempDir(), Format: "mp3"}, exec, logger.Discard())

	audioPath, err := ex.Extract(context.Background(), "clip.mov")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if filepath.Ext(audioPath) != ".mp3" {
		t.Errorf("unexpected audio name %s", audioPath)
	}
	if !strings.Contains(strings.Join(exec.ffmpegArg, " "), "libmp3lame") {
		t.Errorf("mp3 extraction should use libmp3lame: %v", exec.ffmpegArg)
	}
}

func TestExtractNoAudioTrack(t *testing.T) {
	dir := t.TempDir()
	ex := New(Options{AudioDir: dir}, &fakeExecutor{probeOut: "\n"}, logger.Discard())

	_, err := ex.Extract(context.Background(), "silent.mp4")
	if !errors.Is(err, ErrNoAudioTrack) {
		t.Errorf("Extract() error = %v, want ErrNoAudioTrack", err)
	}
}

func TestExtractFailureRemovesTempFile(t *testing.T) {
	dir := t.TempDir()
	ex := New(Options{AudioDir: dir}, &fakeExecutor{probeOut: "1", ffmpegErr: errors.New("exit status 1")}, logger.Discard())

	if _, err := ex.Extract(context.Background(), "broken.mp4"); err == nil {
		t.Fatal("Extract() should fail")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("temp audio left behind: %v", entries)
	}
}

func TestExtractProbeFailure(t *testing.T) {
	ex := New(Options{AudioDir: t.TempDir()}, &fakeExecutor{probeErr: errors.New("invalid data found")}, logger.Discard())
	if _, err := ex.Extract(context.Background(), "garbage.mp4"); err == nil {
		t.Error("Extract() should fail when ffprobe fails")
	}
}
