package config

import (
	"fmt"
	"net"

	"github.com/leonardotrapani/chromagen/internal/provider"
	"github.com/leonardotrapani/chromagen/internal/render"
)

func (c *Config) Validate() error {
	if c.LLM.Enabled {
		if c.LLM.Provider == "" {
			return fmt.Errorf("llm.provider required when llm.enabled = true")
		}
		if c.LLM.Model == "" {
			return fmt.Errorf("llm.model required when llm.enabled = true")
		}

		validLLMProviders := map[string]bool{provider.ProviderOpenAI: true, provider.ProviderGroq: true}
		if !validLLMProviders[c.LLM.Provider] {
			return fmt.Errorf("invalid llm.provider: %s (must be openai or groq)", c.LLM.Provider)
		}

		if c.resolveAPIKeyForProvider(c.LLM.Provider) == "" {
			switch c.LLM.Provider {
			case provider.ProviderOpenAI:
				return fmt.Errorf("OpenAI API key required for LLM: not found in config (providers.openai.api_key) or environment variable (OPENAI_API_KEY)")
			case provider.ProviderGroq:
				return fmt.Errorf("Groq API key required for LLM: not found in config (providers.groq.api_key) or environment variable (GROQ_API_KEY)")
			}
		}
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("invalid llm.temperature: %v (must be between 0 and 2)", c.LLM.Temperature)
	}
	if c.LLM.MaxTokens < 0 {
		return fmt.Errorf("invalid llm.max_tokens: %d", c.LLM.MaxTokens)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("invalid llm.timeout: %v", c.LLM.Timeout)
	}

	for name := range c.Providers {
		if provider.GetProvider(name) == nil {
			return fmt.Errorf("invalid providers.%s: unknown provider (must be openai or groq)", name)
		}
	}

	if _, _, err := net.SplitHostPort(c.Server.Listen); err != nil {
		return fmt.Errorf("invalid server.listen: %s (%v)", c.Server.Listen, err)
	}
	if c.Server.Cache < 0 {
		return fmt.Errorf("invalid server.cache: %d", c.Server.Cache)
	}

	if c.History.Capacity <= 0 {
		return fmt.Errorf("invalid history.capacity: %d", c.History.Capacity)
	}

	if c.Render.Template != "" {
		if _, err := render.ParseTemplate(c.Render.Template); err != nil {
			return fmt.Errorf("invalid render.template: %s (must be website, mobile, dashboard, card, or poster)", c.Render.Template)
		}
	}

	return nil
}
