package config

import (
	"os"

	"github.com/leonardotrapani/chromagen/internal/history"
	"github.com/leonardotrapani/chromagen/internal/llm"
	"github.com/leonardotrapani/chromagen/internal/provider"
	"github.com/leonardotrapani/chromagen/internal/server"
)

// ToLLMConfig returns the resolver adapter configuration
func (c *Config) ToLLMConfig() llm.Config {
	config := llm.Config{
		Provider:    c.LLM.Provider,
		Model:       c.LLM.Model,
		Temperature: c.LLM.Temperature,
		MaxTokens:   c.LLM.MaxTokens,
	}

	if c.LLM.Provider != "" {
		config.APIKey = c.resolveAPIKeyForProvider(c.LLM.Provider)
	}

	return config
}

// resolveAPIKeyForProvider prefers the config file over the environment
func (c *Config) resolveAPIKeyForProvider(providerName string) string {
	if c.Providers != nil {
		if pc, ok := c.Providers[providerName]; ok && pc.APIKey != "" {
			return pc.APIKey
		}
	}

	if envVar := provider.EnvVarForProvider(providerName); envVar != "" {
		return os.Getenv(envVar)
	}

	return ""
}

// IsLLMEnabled returns true if prompt resolution is enabled and configured
func (c *Config) IsLLMEnabled() bool {
	return c.LLM.Enabled && c.LLM.Provider != "" && c.LLM.Model != ""
}

func (c *Config) ToServerConfig() server.Config {
	return server.Config{
		Listen:     c.Server.Listen,
		CORSOrigin: c.Server.CORSOrigin,
		Metrics:    c.Server.Metrics,
		Timeout:    c.LLM.Timeout,
	}
}

// HistoryPath returns the configured history file or the default location.
func (c *Config) HistoryPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}
	return history.DefaultPath()
}
