// Package ai adapts model definitions to concrete AI service clients.
//
// The factory inspects each model's provider kind and returns either an
// Anthropic messages adapter or an OpenAI-compatible chat completions
// adapter. Both are built on the official Go SDKs; the OpenAI adapter
// also covers any endpoint speaking the same protocol, such as a local
// Ollama server.
package ai

import (
	"fmt"
	"os"

	"github.com/textact/textact/internal/domain"
	"github.com/textact/textact/internal/ports"
)

// Factory creates provider instances based on model definitions.
// API keys come from the OS keychain first, then environment variables.
type Factory struct {
	keys ports.KeyStore
}

// NewFactory creates a provider factory. keys may be nil when no keychain
// integration is available; key resolution then uses the environment only.
func NewFactory(keys ports.KeyStore) *Factory {
	return &Factory{keys: keys}
}

// ForModel builds the provider matching the model's kind.
func (f *Factory) ForModel(model domain.ModelDefinition) (ports.Provider, error) {
	key := f.resolveKey(model)

	switch model.ResolvedKind() {
	case domain.ProviderAnthropic:
		if key == "" {
			return nil, fmt.Errorf("model %q has no API key: run `textact config set-key anthropic` or export %s", model.Name, authEnvVar(model))
		}
		return newAnthropicProvider(model, key), nil
	default:
		// Models pointing at a custom endpoint (Ollama and friends) run
		// without credentials; the hosted OpenAI API never does.
		if key == "" && model.Endpoint == "" {
			return nil, fmt.Errorf("model %q has no API key: run `textact config set-key openai` or export %s", model.Name, authEnvVar(model))
		}
		return newOpenAIProvider(model, key), nil
	}
}

// resolveKey looks up the API key for a model: keychain entry for the
// provider kind, then the model's configured environment variable, then
// the provider's conventional one.
func (f *Factory) resolveKey(model domain.ModelDefinition) string {
	if f.keys != nil {
		if key, err := f.keys.Get(string(model.ResolvedKind())); err == nil && key != "" {
			return key
		}
	}
	if model.AuthEnvVar != "" {
		if key := os.Getenv(model.AuthEnvVar); key != "" {
			return key
		}
	}
	return os.Getenv(conventionalEnvVar(model.ResolvedKind()))
}

func conventionalEnvVar(kind domain.ProviderKind) string {
	if kind == domain.ProviderAnthropic {
		return "ANTHROPIC_API_KEY"
	}
	return "OPENAI_API_KEY"
}

// authEnvVar names the variable a user should export for a model,
// preferring the one the model definition declares.
func authEnvVar(model domain.ModelDefinition) string {
	if model.AuthEnvVar != "" {
		return model.AuthEnvVar
	}
	return conventionalEnvVar(model.ResolvedKind())
}

var _ ports.ProviderFactory = (*Factory)(nil)
