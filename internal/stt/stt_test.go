package stt

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/nguyentantai21042004/chapter-flow/internal/logger"
	"github.com/nguyentantai21042004/chapter-flow/internal/transcript"
)

const sampleSRT = "1\n00:00:01,000 --> 00:00:04,000\nHello world\n\n"

// fakeExecutor plays whisper.cpp: it writes srt next to the --output-file prefix.
type fakeExecutor struct {
	srt  string
	err  error
	args []string
}

func (f *fakeExecutor) LookPath(name string) (string, error) {
	return name, nil
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.args = args
	if f.err != nil {
		return "", f.err
	}
	for i, a := range args {
		if a == "--output-file" && i+1 < len(args) {
			if err := os.WriteFile(args[i+1]+".srt", []byte(f.srt), 0644); err != nil {
				return "", err
			}
		}
	}
	return "", nil
}

func TestWhisperTranscribe(t *testing.T) {
	workDir := t.TempDir()
	exec := &fakeExecutor{srt: sampleSRT}
	tr := NewWhisper(WhisperOptions{
		BinaryPath: "whisper-cli",
		ModelPath:  "model.bin",
		Language:   "de",
		Threads:    4,
		WorkDir:    workDir,
	}, exec, logger.Discard())

	res, err := tr.Transcribe(context.Background(), "/tmp/audio/talk.wav")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if res.SRT != sampleSRT {
		t.Errorf("SRT = %q", res.SRT)
	}

	joined := strings.Join(exec.args, " ")
	for _, want := range []string{"-m model.bin", "-f /tmp/audio/talk.wav", "-osrt", "-l de", "-t 4"} {
		if !strings.Contains(joined, want) {
			t.Errorf("args %q missing %q", joined, want)
		}
	}
	if strings.Contains(joined, "--prompt") {
		t.Errorf("empty prompt should not be passed: %q", joined)
	}

	entries, _ := os.ReadDir(workDir)
	if len(entries) != 0 {
		t.Errorf("temp output not cleaned up: %v", entries)
	}
}

func TestWhisperTranscribeFailures(t *testing.T) {
	tests := []struct {
		name    string
		exec    *fakeExecutor
		wantErr error
	}{
		{"binary fails", &fakeExecutor{err: errors.New("exit status 1")}, nil},
		{"empty output", &fakeExecutor{srt: "  \n"}, ErrEmptyTranscript},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewWhisper(WhisperOptions{BinaryPath: "whisper-cli", WorkDir: t.TempDir()}, tt.exec, logger.Discard())
			_, err := tr.Transcribe(context.Background(), "a.wav")
			if err == nil {
				t.Fatal("Transcribe() should fail")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Transcribe() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func writeAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "talk.mp3")
	if err := os.WriteFile(path, []byte("not really audio"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenAITranscribeSRT(t *testing.T) {
	var gotFormat, gotLanguage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/audio/transcriptions") {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotFormat = r.FormValue("response_format")
		gotLanguage = r.FormValue("language")
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(sampleSRT))
	}))
	defer srv.Close()

	tr := NewOpenAI(OpenAIOptions{
		APIKey:         "sk-test",
		BaseURL:        srv.URL + "/v1",
		Model:          "whisper-1",
		Language:       "de",
		ResponseFormat: "srt",
	}, srv.Client(), logger.Discard())

	res, err := tr.Transcribe(context.Background(), writeAudio(t))
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if res.SRT != sampleSRT {
		t.Errorf("SRT = %q", res.SRT)
	}
	if gotFormat != "srt" || gotLanguage != "de" {
		t.Errorf("response_format = %q, language = %q", gotFormat, gotLanguage)
	}
}

func TestOpenAITranscribeSegments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"task":"transcribe","language":"english","duration":9.5,"text":"Hello world. Welcome back.",
			"segments":[
				{"id":0,"seek":0,"start":1.0,"end":4.0,"text":" Hello world.","tokens":[],"temperature":0,"avg_logprob":0,"compression_ratio":0,"no_speech_prob":0,"transient":false},
				{"id":1,"seek":0,"start":5.25,"end":8.0,"text":" Welcome back.","tokens":[],"temperature":0,"avg_logprob":0,"compression_ratio":0,"no_speech_prob":0,"transient":false}
			]}`))
	}))
	defer srv.Close()

	tr := NewOpenAI(OpenAIOptions{
		APIKey:         "sk-test",
		BaseURL:        srv.URL + "/v1",
		Model:          "whisper-1",
		ResponseFormat: "verbose_json",
	}, srv.Client(), logger.Discard())

	res, err := tr.Transcribe(context.Background(), writeAudio(t))
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	want := []transcript.Segment{
		{Start: time.Second, Text: " Hello world."},
		{Start: 5250 * time.Millisecond, Text: " Welcome back."},
	}
	if diff := cmp.Diff(want, res.Segments); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
	if res.SRT != "" {
		t.Errorf("SRT should be empty for structured output, got %q", res.SRT)
	}
}

func TestOpenAITranscribeServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer srv.Close()

	tr := NewOpenAI(OpenAIOptions{APIKey: "sk-test", BaseURL: srv.URL + "/v1", Model: "whisper-1"}, srv.Client(), logger.Discard())
	if _, err := tr.Transcribe(context.Background(), writeAudio(t)); err == nil {
		t.Error("Transcribe() should fail on a 500")
	}
}
