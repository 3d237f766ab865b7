package stt

import (
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/chapter-flow/internal/logger"
	"github.com/nguyentantai21042004/chapter-flow/pkg/executor"
)

// WhisperOptions configures the whisper.cpp binary.
type WhisperOptions struct {
	BinaryPath string
	ModelPath  string
	Language   string
	Prompt     string
	Threads    int
	// WorkDir receives the temporary .srt output; empty uses the system temp dir.
	WorkDir string
}

type implWhisper struct {
	opts     WhisperOptions
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisper creates a Transcriber that shells out to whisper.cpp.
func NewWhisper(opts WhisperOptions, exec executor.Executor, log logger.Logger) Transcriber {
	return &implWhisper{
		opts:     opts,
		executor: exec,
		logger:   log,
	}
}

// OpenAIOptions configures the hosted transcription API.
type OpenAIOptions struct {
	APIKey   string
	BaseURL  string
	Model    string
	Language string
	// ResponseFormat is "srt" or "verbose_json".
	ResponseFormat string
}

type implOpenAI struct {
	client *openai.Client
	opts   OpenAIOptions
	logger logger.Logger
}

// NewOpenAI creates a Transcriber backed by the audio transcriptions API.
func NewOpenAI(opts OpenAIOptions, httpClient *http.Client, log logger.Logger) Transcriber {
	clientConfig := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		clientConfig.BaseURL = opts.BaseURL
	}
	if httpClient != nil {
		clientConfig.HTTPClient = httpClient
	}

	return &implOpenAI{
		client: openai.NewClientWithConfig(clientConfig),
		opts:   opts,
		logger: log,
	}
}
