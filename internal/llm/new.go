package llm

import (
	"net/http"
	"sync"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/chapter-flow/internal/logger"
)

type implGemini struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	model      string
	baseURL    string
	logger     logger.Logger
}

// NewGemini creates a Generator that rotates through the supplied Gemini API
// keys when one is rate limited. baseURL may be empty.
func NewGemini(apiKeys []string, model, baseURL string, log logger.Logger) Generator {
	return &implGemini{
		apiKeys: apiKeys,
		model:   model,
		baseURL: baseURL,
		logger:  log,
	}
}

type implOpenAI struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewOpenAI creates a Generator backed by the chat completions API. baseURL
// may point at any OpenAI-compatible endpoint; empty keeps the default.
func NewOpenAI(apiKey, baseURL, model string, maxTokens int, httpClient *http.Client) Generator {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	if httpClient != nil {
		clientConfig.HTTPClient = httpClient
	}

	return &implOpenAI{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     model,
		maxTokens: maxTokens,
	}
}
