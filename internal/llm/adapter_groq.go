package llm

import (
	"github.com/sashabaranov/go-openai"
)

const (
	groqBaseURL = "https://api.groq.com/openai/v1"
	// llama-4-scout accepts image parts; the text-only llama-3.3 models do not.
	DefaultGroqModel = "meta-llama/llama-4-scout-17b-16e-instruct"
)

// GroqAdapter implements Resolver using Groq's OpenAI-compatible API
type GroqAdapter struct {
	chatResolver
}

// NewGroqAdapter creates a new Groq resolver adapter
func NewGroqAdapter(cfg Config) *GroqAdapter {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = groqBaseURL
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultGroqModel
	}

	return &GroqAdapter{chatResolver{
		name:   "groq-llm-adapter",
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		config: cfg,
	}}
}
