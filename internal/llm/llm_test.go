package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/chapter-flow/internal/logger"
)

func TestOpenAIGenerate(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"00:00:00 - Intro"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	gen := NewOpenAI("sk-test", srv.URL+"/v1", "gpt-4o", 1000, srv.Client())
	out, err := gen.Generate(context.Background(), "make chapters", "[00:00:00] hi")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out != "00:00:00 - Intro" {
		t.Errorf("Generate() = %q", out)
	}

	if got.Model != "gpt-4o" || len(got.Messages) != 2 {
		t.Fatalf("unexpected request: %+v", got)
	}
	if got.Messages[0].Role != "system" || got.Messages[0].Content != "make chapters" {
		t.Errorf("system message = %+v", got.Messages[0])
	}
	if got.Messages[1].Role != "user" || got.Messages[1].Content != "[00:00:00] hi" {
		t.Errorf("user message = %+v", got.Messages[1])
	}
}

func TestOpenAIGenerateEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[]}`))
	}))
	defer srv.Close()

	gen := NewOpenAI("sk-test", srv.URL+"/v1", "gpt-4o", 1000, srv.Client())
	if _, err := gen.Generate(context.Background(), "i", "x"); err == nil {
		t.Error("Generate() should fail on an empty choice list")
	}
}

func TestGeminiGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-test:generateContent") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"00:00:00 - Intro\n"},{"text":"00:01:00 - Next"}]}}]}`))
	}))
	defer srv.Close()

	gen := NewGemini([]string{"key-1"}, "gemini-test", srv.URL, logger.Discard())
	out, err := gen.Generate(context.Background(), "make chapters", "[00:00:00] hi")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out != "00:00:00 - Intro\n00:01:00 - Next" {
		t.Errorf("Generate() = %q", out)
	}
}

func TestGeminiNoKeys(t *testing.T) {
	gen := NewGemini(nil, "gemini-test", "", logger.Discard())
	if _, err := gen.Generate(context.Background(), "i", "x"); err == nil {
		t.Error("Generate() should fail without keys")
	}
}

func TestGeminiRotateKey(t *testing.T) {
	g := NewGemini([]string{"a", "b", "c"}, "m", "", logger.Discard()).(*implGemini)

	g.rotateKey(0)
	if i, k := g.key(); i != 1 || k != "b" {
		t.Errorf("key() = %d %q, want 1 b", i, k)
	}

	// A stale rotation from a goroutine that used key 0 must not skip key 1.
	g.rotateKey(0)
	if i, _ := g.key(); i != 1 {
		t.Errorf("stale rotation moved key to %d", i)
	}

	g.rotateKey(1)
	g.rotateKey(2)
	if i, _ := g.key(); i != 0 {
		t.Errorf("rotation did not wrap, key = %d", i)
	}
}

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("Error 429, Message: slow down"), true},
		{errors.New("daily quota exceeded"), true},
		{errors.New("Status: RESOURCE_EXHAUSTED"), true},
		{errors.New("Error 400, Message: bad request"), false},
	}
	for _, tt := range tests {
		if got := isRateLimited(tt.err); got != tt.want {
			t.Errorf("isRateLimited(%q) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
