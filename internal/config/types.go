package config

import "time"

type Config struct {
	LLM       LLMConfig                 `toml:"llm"`
	Providers map[string]ProviderConfig `toml:"providers"`
	Server    ServerConfig              `toml:"server"`
	History   HistoryConfig             `toml:"history"`
	Render    RenderConfig              `toml:"render"`
}

// ProviderConfig holds API key for a provider
type ProviderConfig struct {
	APIKey string `toml:"api_key"`
}

// LLMConfig configures prompt resolution. With Enabled false every prompt
// falls back to the default seed and images are analyzed locally.
type LLMConfig struct {
	Enabled     bool          `toml:"enabled"`
	Provider    string        `toml:"provider"`
	Model       string        `toml:"model"`
	Temperature float32       `toml:"temperature"`
	MaxTokens   int           `toml:"max_tokens"`
	Timeout     time.Duration `toml:"timeout"`
}

type ServerConfig struct {
	Listen     string `toml:"listen"`
	CORSOrigin string `toml:"cors_origin"`
	Metrics    bool   `toml:"metrics"`
	// Cache is the number of palettes kept in memory.
	Cache int `toml:"cache"`
}

type HistoryConfig struct {
	Enabled bool `toml:"enabled"`
	// Path overrides the default cache location.
	Path     string `toml:"path"`
	Capacity int    `toml:"capacity"`
}

type RenderConfig struct {
	// Template is the layout the preview command opens on.
	Template string `toml:"template"`
}
