package provider

import (
	"strings"
)

// OpenAIProvider implements Provider for OpenAI services
type OpenAIProvider struct{}

func (p *OpenAIProvider) Name() string {
	return ProviderOpenAI
}

func (p *OpenAIProvider) DisplayName() string {
	return "OpenAI"
}

func (p *OpenAIProvider) RequiresAPIKey() bool {
	return true
}

func (p *OpenAIProvider) ValidateAPIKey(key string) bool {
	return strings.HasPrefix(key, "sk-")
}

func (p *OpenAIProvider) APIKeyURL() string {
	return "https://platform.openai.com/api-keys"
}

func (p *OpenAIProvider) BaseURL() string {
	return "https://api.openai.com/v1"
}

func (p *OpenAIProvider) Models() []Model {
	return []Model{
		{
			ID:          "gpt-4o-mini",
			Name:        "GPT-4o Mini",
			Description: "Fast and affordable GPT-4 variant",
			Vision:      true,
			DocsURL:     "https://platform.openai.com/docs/models/gpt-4o-mini",
		},
		{
			ID:          "gpt-4o",
			Name:        "GPT-4o",
			Description: "Most capable GPT-4 model",
			Vision:      true,
			DocsURL:     "https://platform.openai.com/docs/models/gpt-4o",
		},
		{
			ID:          "gpt-4-turbo",
			Name:        "GPT-4 Turbo",
			Description: "Faster GPT-4 with large context window",
			Vision:      true,
			DocsURL:     "https://platform.openai.com/docs/models/gpt-4-turbo",
		},
		{
			ID:          "gpt-3.5-turbo",
			Name:        "GPT-3.5 Turbo",
			Description: "Fast and cost-effective, text only",
			DocsURL:     "https://platform.openai.com/docs/models/gpt-3.5-turbo",
		},
	}
}

func (p *OpenAIProvider) DefaultModel() string {
	return "gpt-4o-mini"
}
