package provider

import (
	"sort"
)

// Provider defines the interface for a palette resolver service provider
type Provider interface {
	Name() string
	DisplayName() string
	RequiresAPIKey() bool
	ValidateAPIKey(key string) bool
	APIKeyURL() string
	BaseURL() string
	Models() []Model
	DefaultModel() string
}

// ProviderConfig holds configuration for a single provider
type ProviderConfig struct {
	APIKey string `toml:"api_key"`
}

var registry = make(map[string]Provider)

func init() {
	Register(&OpenAIProvider{})
	Register(&GroqProvider{})
}

// Register adds a provider to the registry
func Register(p Provider) {
	registry[p.Name()] = p
}

// GetProvider returns a provider by name, or nil if not found
func GetProvider(name string) Provider {
	return registry[name]
}

// ListProviders returns all registered provider names, sorted
func ListProviders() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FindModel looks up a model by ID across the given provider's models
func FindModel(providerName, modelID string) (Model, bool) {
	p := GetProvider(providerName)
	if p == nil {
		return Model{}, false
	}
	for _, m := range p.Models() {
		if m.ID == modelID {
			return m, true
		}
	}
	return Model{}, false
}

// VisionModels returns the models of a provider that accept image input
func VisionModels(p Provider) []Model {
	var out []Model
	for _, m := range p.Models() {
		if m.Vision {
			out = append(out, m)
		}
	}
	return out
}
