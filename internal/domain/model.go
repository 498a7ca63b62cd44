// Package domain defines core business entities and value objects for textact.
//
// The domain layer is independent of infrastructure concerns and represents pure
// business logic and data structures.
package domain

import "strings"

// ProviderKind selects the API family a configured model speaks.
type ProviderKind string

const (
	// ProviderAnthropic uses the Anthropic messages API.
	ProviderAnthropic ProviderKind = "anthropic"
	// ProviderOpenAI uses an OpenAI-compatible chat completions API.
	// This covers OpenAI itself plus Ollama and other compatible endpoints.
	ProviderOpenAI ProviderKind = "openai"
)

// ModelDefinition describes an AI provider endpoint declared in the config file.
type ModelDefinition struct {
	Name        string       `yaml:"name"`
	Kind        ProviderKind `yaml:"kind"`
	Endpoint    string       `yaml:"endpoint,omitempty"`
	ModelID     string       `yaml:"model_id"`
	MaxTokens   int          `yaml:"max_tokens"`
	Temperature *float64     `yaml:"temperature,omitempty"`
	AuthEnvVar  string       `yaml:"auth_env_var,omitempty"`
}

// ResolvedKind normalizes the configured kind, defaulting to OpenAI-compatible.
func (m ModelDefinition) ResolvedKind() ProviderKind {
	switch ProviderKind(strings.ToLower(strings.TrimSpace(string(m.Kind)))) {
	case ProviderAnthropic:
		return ProviderAnthropic
	default:
		return ProviderOpenAI
	}
}

// ResolvedMaxTokens returns the configured token budget with default fallback.
func (m ModelDefinition) ResolvedMaxTokens() int {
	if m.MaxTokens <= 0 {
		return DefaultMaxTokens
	}
	return m.MaxTokens
}
