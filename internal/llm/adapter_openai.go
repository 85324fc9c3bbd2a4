package llm

import (
	"github.com/sashabaranov/go-openai"
)

const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIAdapter implements Resolver using OpenAI's chat completions API
type OpenAIAdapter struct {
	chatResolver
}

// NewOpenAIAdapter creates a new OpenAI resolver adapter
func NewOpenAIAdapter(cfg Config) *OpenAIAdapter {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAIAdapter{chatResolver{
		name:   "openai-llm-adapter",
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		config: cfg,
	}}
}
