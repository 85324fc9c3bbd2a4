package provider

import "strings"

// GroqProvider implements Provider for Groq services
type GroqProvider struct{}

func (p *GroqProvider) Name() string {
	return ProviderGroq
}

func (p *GroqProvider) DisplayName() string {
	return "Groq"
}

func (p *GroqProvider) RequiresAPIKey() bool {
	return true
}

func (p *GroqProvider) ValidateAPIKey(key string) bool {
	return strings.HasPrefix(key, "gsk_")
}

func (p *GroqProvider) APIKeyURL() string {
	return "https://console.groq.com/keys"
}

func (p *GroqProvider) BaseURL() string {
	return "https://api.groq.com/openai/v1"
}

func (p *GroqProvider) Models() []Model {
	return []Model{
		{
			ID:          "meta-llama/llama-4-scout-17b-16e-instruct",
			Name:        "Llama 4 Scout",
			Description: "Multimodal Llama 4, accepts images",
			Vision:      true,
			DocsURL:     "https://console.groq.com/docs/vision",
		},
		{
			ID:          "meta-llama/llama-4-maverick-17b-128e-instruct",
			Name:        "Llama 4 Maverick",
			Description: "Larger multimodal Llama 4",
			Vision:      true,
			DocsURL:     "https://console.groq.com/docs/vision",
		},
		{
			ID:          "llama-3.3-70b-versatile",
			Name:        "Llama 3.3 70B",
			Description: "General purpose, text only",
			DocsURL:     "https://console.groq.com/docs/models",
		},
		{
			ID:          "llama-3.1-8b-instant",
			Name:        "Llama 3.1 8B Instant",
			Description: "Smallest and fastest, text only",
			DocsURL:     "https://console.groq.com/docs/models",
		},
	}
}

func (p *GroqProvider) DefaultModel() string {
	return "meta-llama/llama-4-scout-17b-16e-instruct"
}
