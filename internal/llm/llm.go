package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/leonardotrapani/chromagen/internal/harmony"
)

var ErrEmptyRequest = errors.New("no prompt or image provided")

const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1024
)

// Resolver turns a free-text prompt and/or an image into a palette seed.
type Resolver interface {
	Resolve(ctx context.Context, req Request) (harmony.Spec, error)
}

// Image is raw image bytes with their MIME type, e.g. "image/png".
type Image struct {
	MIMEType string
	Data     []byte
}

type Request struct {
	Prompt string
	Image  *Image
}

func (r Request) Empty() bool {
	return r.Prompt == "" && (r.Image == nil || len(r.Image.Data) == 0)
}

// Config holds resolver adapter configuration
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
	// BaseURL overrides the provider endpoint; empty uses the provider default.
	BaseURL string
}

func (c Config) temperature() float32 {
	if c.Temperature <= 0 {
		return DefaultTemperature
	}
	return c.Temperature
}

func (c Config) maxTokens() int {
	if c.MaxTokens <= 0 {
		return DefaultMaxTokens
	}
	return c.MaxTokens
}

// NewResolver creates a resolver adapter based on the provider
func NewResolver(cfg Config) (Resolver, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key required")
		}
		return NewOpenAIAdapter(cfg), nil
	case "groq":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("Groq API key required")
		}
		return NewGroqAdapter(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
