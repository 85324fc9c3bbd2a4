package config

import (
	"time"

	"github.com/leonardotrapani/chromagen/internal/harmony"
	"github.com/leonardotrapani/chromagen/internal/history"
	"github.com/leonardotrapani/chromagen/internal/llm"
	"github.com/leonardotrapani/chromagen/internal/server"
)

// DefaultConfig returns the configuration written on first load.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Enabled:     false,
			Provider:    "openai",
			Model:       "gpt-4o-mini",
			Temperature: llm.DefaultTemperature,
			MaxTokens:   llm.DefaultMaxTokens,
			Timeout:     30 * time.Second,
		},
		Providers: make(map[string]ProviderConfig),
		Server: ServerConfig{
			Listen:     server.DefaultListen,
			CORSOrigin: "*",
			Metrics:    true,
			Cache:      harmony.DefaultCacheSize,
		},
		History: HistoryConfig{
			Enabled:  true,
			Path:     "",
			Capacity: history.DefaultCapacity,
		},
		Render: RenderConfig{
			Template: "website",
		},
	}
}

const defaultConfigContent = `# Chromagen Configuration
# This file is automatically generated with defaults.
# Edit values as needed - "chromagen serve" picks up changes without a restart.

# Prompt resolution
[llm]
  enabled = false              # Resolve prompts with a language model (false = default seed for text, local analysis for images)
  provider = "openai"          # "openai" or "groq"
  model = "gpt-4o-mini"        # Model ID, see "chromagen models"
  temperature = 0.7            # Sampling temperature
  max_tokens = 1024            # Response token limit
  timeout = "30s"              # Per-request timeout including the model call

# API keys (or set OPENAI_API_KEY / GROQ_API_KEY, a .env file works too)
[providers.openai]
  api_key = ""

[providers.groq]
  api_key = ""

# HTTP API
[server]
  listen = "127.0.0.1:8080"    # Listen address
  cors_origin = "*"            # Access-Control-Allow-Origin value
  metrics = true               # Expose Prometheus metrics on /metrics
  cache = 1024                 # Palettes kept in memory

# Recent generations
[history]
  enabled = true               # Record generated palettes
  path = ""                    # History file (empty = user cache directory)
  capacity = 10                # Entries kept, newest first

# Preview
[render]
  template = "website"         # "website", "mobile", "dashboard", "card" or "poster"
`
