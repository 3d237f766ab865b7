package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Transcription backends.
const (
	BackendWhisper = "whisper"
	BackendOpenAI  = "openai"
)

// Chapter providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Paths         PathsConfig         `yaml:"paths"`
	Pipeline      PipelineConfig      `yaml:"pipeline"`
	FFmpeg        FFmpegConfig        `yaml:"ffmpeg"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Whisper       WhisperConfig       `yaml:"whisper"`
	Chapters      ChaptersConfig      `yaml:"chapters"`
	Gemini        GeminiConfig        `yaml:"gemini"`
	OpenAI        OpenAIConfig        `yaml:"openai"`
	Logging       LoggingConfig       `yaml:"logging"`
	Performance   PerformanceConfig   `yaml:"performance"`
	Watch         WatchConfig         `yaml:"watch"`
}

type PathsConfig struct {
	Input       string `yaml:"input"`
	Audio       string `yaml:"audio"`
	Transcripts string `yaml:"transcripts"`
	Output      string `yaml:"output"`
}

type PipelineConfig struct {
	VideoExtensions []string `yaml:"video_extensions"`
	// Docx additionally writes <base>_chapters.docx next to the text artifact.
	Docx bool `yaml:"docx"`
}

type FFmpegConfig struct {
	BinaryPath  string `yaml:"binary_path"`
	ProbePath   string `yaml:"probe_path"`
	AudioFormat string `yaml:"audio_format"` // wav | mp3
}

type TranscriptionConfig struct {
	Backend  string `yaml:"backend"`
	Language string `yaml:"language"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type ChaptersConfig struct {
	Provider        string `yaml:"provider"`
	Model           string `yaml:"model"`
	MaxTokens       int    `yaml:"max_tokens"`
	MaxRetries      int    `yaml:"max_retries"`
	RateLimitPerMin int    `yaml:"rate_limit_per_min"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

type OpenAIConfig struct {
	APIKey             string `yaml:"api_key"`
	BaseURL            string `yaml:"base_url"`
	TranscriptionModel string `yaml:"transcription_model"`
	ResponseFormat     string `yaml:"response_format"` // srt | verbose_json
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type WatchConfig struct {
	SettleDelay time.Duration `yaml:"settle_delay"`
}

// Load reads the YAML file at path, applies environment overrides for
// credentials and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// applyEnv lets secrets stay out of the YAML file.
func (c *Config) applyEnv() {
	if keys := os.Getenv("GEMINI_API_KEYS"); keys != "" {
		c.Gemini.APIKeys = nil
		for _, k := range strings.Split(keys, ",") {
			if k = strings.TrimSpace(k); k != "" {
				c.Gemini.APIKeys = append(c.Gemini.APIKeys, k)
			}
		}
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		c.OpenAI.APIKey = key
	}
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Paths.Audio == "" {
		c.Paths.Audio = "audio"
	}
	if c.Paths.Transcripts == "" {
		c.Paths.Transcripts = "transcripts"
	}

	if len(c.Pipeline.VideoExtensions) == 0 {
		c.Pipeline.VideoExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".webm", ".m4v", ".flv"}
	}
	for i, ext := range c.Pipeline.VideoExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Pipeline.VideoExtensions[i] = ext
	}

	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}
	switch c.FFmpeg.AudioFormat {
	case "":
		c.FFmpeg.AudioFormat = "wav"
	case "wav", "mp3":
	default:
		return fmt.Errorf("ffmpeg.audio_format must be wav or mp3, got %q", c.FFmpeg.AudioFormat)
	}

	if c.Transcription.Backend == "" {
		c.Transcription.Backend = BackendWhisper
	}
	switch c.Transcription.Backend {
	case BackendWhisper:
		if c.Whisper.ModelPath == "" {
			return fmt.Errorf("whisper.model_path is required")
		}
		if c.Whisper.BinaryPath == "" {
			return fmt.Errorf("whisper.binary_path is required")
		}
		if c.Whisper.Threads == 0 {
			c.Whisper.Threads = 8
		}
	case BackendOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("openai.api_key (or OPENAI_API_KEY) is required for the openai transcription backend")
		}
		if c.OpenAI.TranscriptionModel == "" {
			c.OpenAI.TranscriptionModel = "whisper-1"
		}
		switch c.OpenAI.ResponseFormat {
		case "":
			c.OpenAI.ResponseFormat = "srt"
		case "srt", "verbose_json":
		default:
			return fmt.Errorf("openai.response_format must be srt or verbose_json, got %q", c.OpenAI.ResponseFormat)
		}
	default:
		return fmt.Errorf("unknown transcription.backend %q", c.Transcription.Backend)
	}

	if c.Chapters.Provider == "" {
		c.Chapters.Provider = ProviderGemini
	}
	switch c.Chapters.Provider {
	case ProviderGemini:
		if len(c.Gemini.APIKeys) == 0 {
			return fmt.Errorf("gemini.api_keys (or GEMINI_API_KEYS) is required for the gemini chapter provider")
		}
		if c.Chapters.Model == "" {
			c.Chapters.Model = "gemini-2.5-flash"
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("openai.api_key (or OPENAI_API_KEY) is required for the openai chapter provider")
		}
		if c.Chapters.Model == "" {
			c.Chapters.Model = "gpt-4o"
		}
	default:
		return fmt.Errorf("unknown chapters.provider %q", c.Chapters.Provider)
	}
	if c.Chapters.MaxTokens == 0 {
		c.Chapters.MaxTokens = 1000
	}
	if c.Chapters.MaxRetries == 0 {
		c.Chapters.MaxRetries = 3
	}
	if c.Chapters.RateLimitPerMin == 0 {
		c.Chapters.RateLimitPerMin = 30
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Watch.SettleDelay == 0 {
		c.Watch.SettleDelay = 500 * time.Millisecond
	}

	return nil
}

// IsVideo reports whether name has one of the configured video extensions.
func (c *Config) IsVideo(name string) bool {
	ext := strings.ToLower(name)
	if i := strings.LastIndexByte(ext, '.'); i >= 0 {
		ext = ext[i:]
	} else {
		return false
	}
	for _, v := range c.Pipeline.VideoExtensions {
		if ext == v {
			return true
		}
	}
	return false
}
