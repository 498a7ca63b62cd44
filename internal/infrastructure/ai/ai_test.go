package ai

import (
	"errors"
	"strings"
	"testing"

	"github.com/textact/textact/internal/domain"
)

func TestFactory_ForModelRoutesByKind(t *testing.T) {
	factory := NewFactory(&stubKeyStore{keys: map[string]string{
		"anthropic": "sk-ant-test",
		"openai":    "sk-test",
	}})

	tests := []struct {
		name     string
		model    domain.ModelDefinition
		provider string
	}{
		{
			name:     "anthropic kind",
			model:    domain.ModelDefinition{Name: "claude", Kind: domain.ProviderAnthropic, ModelID: "claude-sonnet-4-5"},
			provider: "anthropic",
		},
		{
			name:     "kind is case insensitive",
			model:    domain.ModelDefinition{Name: "claude", Kind: "Anthropic", ModelID: "claude-sonnet-4-5"},
			provider: "anthropic",
		},
		{
			name:     "openai kind",
			model:    domain.ModelDefinition{Name: "gpt", Kind: domain.ProviderOpenAI, ModelID: "gpt-4o-mini"},
			provider: "openai",
		},
		{
			name:     "empty kind defaults to openai",
			model:    domain.ModelDefinition{Name: "local", ModelID: "llama3"},
			provider: "openai",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := factory.ForModel(tt.model)
			if err != nil {
				t.Fatalf("ForModel() error = %v", err)
			}
			if provider.Name() != tt.provider {
				t.Errorf("provider = %q, want %q", provider.Name(), tt.provider)
			}
			if provider.Model().Name != tt.model.Name {
				t.Errorf("provider model = %q, want %q", provider.Model().Name, tt.model.Name)
			}
		})
	}
}

func TestFactory_MissingKeyFails(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	factory := NewFactory(&stubKeyStore{})

	_, err := factory.ForModel(domain.ModelDefinition{Name: "claude", Kind: domain.ProviderAnthropic})
	if err == nil {
		t.Fatal("expected error for anthropic model without key")
	}
	if !strings.Contains(err.Error(), "set-key anthropic") {
		t.Errorf("error should point at set-key, got %q", err)
	}

	_, err = factory.ForModel(domain.ModelDefinition{Name: "gpt", Kind: domain.ProviderOpenAI})
	if err == nil {
		t.Fatal("expected error for hosted openai model without key")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("error should name the env var, got %q", err)
	}
}

func TestFactory_CustomEndpointNeedsNoKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	factory := NewFactory(&stubKeyStore{})
	model := domain.ModelDefinition{
		Name:     "ollama",
		Kind:     domain.ProviderOpenAI,
		Endpoint: "http://localhost:11434/v1",
		ModelID:  "llama3",
	}

	provider, err := factory.ForModel(model)
	if err != nil {
		t.Fatalf("ForModel() error = %v", err)
	}
	if provider.Name() != "openai" {
		t.Errorf("provider = %q, want openai", provider.Name())
	}
}

func TestFactory_KeyResolutionOrder(t *testing.T) {
	t.Setenv("CUSTOM_KEY_VAR", "from-env")
	t.Setenv("ANTHROPIC_API_KEY", "from-conventional")

	model := domain.ModelDefinition{Kind: domain.ProviderAnthropic, AuthEnvVar: "CUSTOM_KEY_VAR"}

	keychain := NewFactory(&stubKeyStore{keys: map[string]string{"anthropic": "from-keychain"}})
	if got := keychain.resolveKey(model); got != "from-keychain" {
		t.Errorf("resolveKey() = %q, want keychain value", got)
	}

	envOnly := NewFactory(&stubKeyStore{})
	if got := envOnly.resolveKey(model); got != "from-env" {
		t.Errorf("resolveKey() = %q, want model env var value", got)
	}

	if got := envOnly.resolveKey(domain.ModelDefinition{Kind: domain.ProviderAnthropic}); got != "from-conventional" {
		t.Errorf("resolveKey() = %q, want conventional env var value", got)
	}

	nilStore := NewFactory(nil)
	if got := nilStore.resolveKey(model); got != "from-env" {
		t.Errorf("resolveKey() with nil keystore = %q, want model env var value", got)
	}
}

func TestSystemPrompt(t *testing.T) {
	action := domain.Action{ID: "summarize", Prompt: "  Summarize the text in two sentences.  "}
	if got := systemPrompt(action); got != "Summarize the text in two sentences." {
		t.Errorf("systemPrompt() = %q", got)
	}

	if got := systemPrompt(domain.Action{ID: "bare"}); got != defaultSystemPrompt {
		t.Errorf("systemPrompt() for empty prompt = %q, want default", got)
	}
}

type stubKeyStore struct {
	keys map[string]string
}

func (s *stubKeyStore) Set(provider, key string) error {
	if s.keys == nil {
		s.keys = map[string]string{}
	}
	s.keys[provider] = key
	return nil
}

func (s *stubKeyStore) Get(provider string) (string, error) {
	key, ok := s.keys[provider]
	if !ok {
		return "", errors.New("no key stored")
	}
	return key, nil
}

func (s *stubKeyStore) Delete(provider string) error {
	delete(s.keys, provider)
	return nil
}
