// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). Following the Ports and Adapters (Hexagonal) pattern,
// these interfaces allow the application to remain independent of specific
// implementations like databases, HTTP clients, or CLI frameworks.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., Provider, ExecutionLogStore)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/textact/textact/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.textact/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ConfigWriter persists configuration changes back to storage.
type ConfigWriter interface {
	Save(context.Context, domain.Config) error
}

// ProviderFactory builds AI provider instances based on model definitions.
// It abstracts the creation of different provider types (Anthropic, OpenAI-compatible).
type ProviderFactory interface {
	ForModel(domain.ModelDefinition) (Provider, error)
}

// Provider defines the core AI capability: transforming input text according
// to an action's prompt. Each implementation wraps a specific AI service API.
type Provider interface {
	Name() string
	Model() domain.ModelDefinition
	Generate(context.Context, ProviderRequest) (ProviderResponse, error)
}

// ProviderRequest contains all data needed to run one transformation.
type ProviderRequest struct {
	Action domain.Action
	Input  string
	Model  domain.ModelDefinition
}

// ProviderResponse carries the transformed text back to the caller.
type ProviderResponse struct {
	Output  string
	ModelID string
}

// ExecutionLogStore persists the execution log. The in-memory log owned by
// the stats engine stays authoritative: store failures are reported, logged,
// and otherwise ignored.
type ExecutionLogStore interface {
	Append(domain.ExecutionLogEntry) error
	LoadAll() ([]domain.ExecutionLogEntry, error)
	Clear() error
}

// CacheStore persists provider results between runs.
type CacheStore interface {
	Get(key string) (domain.CacheEntry, bool)
	Set(entry domain.CacheEntry) error
	Clear() error
}

// Plugin is a local, offline text transformation (QR codes, hashing, color
// conversion and friends). Plugins run without network access.
type Plugin interface {
	Name() string
	Description() string
	Run(input string) (string, error)
}

// PluginRegistry resolves plugins referenced by actions.
type PluginRegistry interface {
	Get(name string) (Plugin, bool)
	List() []Plugin
}

// KeyStore manages provider API keys in secure storage.
type KeyStore interface {
	Set(provider, key string) error
	Get(provider string) (string, error)
	Delete(provider string) error
}

// Clipboard provides cross-platform clipboard integration: reading captured
// text and copying results back.
type Clipboard interface {
	Read() (string, error)
	Copy(text string) error
	Enabled() bool
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
