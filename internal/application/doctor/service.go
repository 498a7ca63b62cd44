package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/textact/textact/internal/domain"
	"github.com/textact/textact/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Factory        ports.ProviderFactory
	LogStore       ports.ExecutionLogStore
	Keys           ports.KeyStore
	Clipboard      ports.Clipboard
}

// Fixed report slots so concurrent checks land in a stable order.
const (
	slotConfig = iota
	slotLog
	slotKeys
	slotProviders
	slotClipboard
	slotCount
)

// Run executes checks and returns a report. The config check runs first;
// everything else only makes sense against a loaded configuration.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	if s.ConfigProvider == nil || s.Factory == nil {
		return domain.HealthReport{}, errors.New("doctor.Service dependencies not satisfied")
	}

	checks := make([]domain.HealthCheck, slotCount)

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks[slotConfig] = fail("Config file", fmt.Sprintf("load failed: %v", err))
		return domain.HealthReport{Checks: checks[:1]}, err
	}
	checks[slotConfig] = configCheck(cfg)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		checks[slotLog] = s.executionLogCheck()
		return nil
	})
	g.Go(func() error {
		checks[slotKeys] = s.apiKeyCheck(cfg.Models)
		return nil
	})
	g.Go(func() error {
		checks[slotProviders] = s.providerCheck(cfg.Models)
		return nil
	})
	g.Go(func() error {
		checks[slotClipboard] = s.clipboardCheck()
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.HealthReport{}, err
	}

	return domain.HealthReport{Checks: checks}, nil
}

func configCheck(cfg domain.Config) domain.HealthCheck {
	if err := cfg.ValidateConsistency(); err != nil {
		return fail("Config file", err.Error())
	}
	return ok("Config file", fmt.Sprintf("version %s, %d models, %d actions",
		cfg.ConfigFormatVersion, len(cfg.Models), len(cfg.Actions)))
}

func (s *Service) executionLogCheck() domain.HealthCheck {
	if s.LogStore == nil {
		return warn("Execution log", "store not configured")
	}
	entries, err := s.LogStore.LoadAll()
	if err != nil {
		return warn("Execution log", fmt.Sprintf("load failed: %v", err))
	}
	return ok("Execution log", fmt.Sprintf("%d entries", len(entries)))
}

// apiKeyCheck reports, per hosted provider kind, where a credential was found.
// Models pointing at a custom endpoint run without credentials and are skipped.
func (s *Service) apiKeyCheck(models []domain.ModelDefinition) domain.HealthCheck {
	kinds := hostedKinds(models)
	if len(kinds) == 0 {
		return ok("API keys", "no hosted models configured")
	}

	var parts []string
	missing := false
	for _, kind := range kinds {
		source := s.keySource(kind, models)
		if source == "" {
			missing = true
			parts = append(parts, fmt.Sprintf("%s: not found", kind))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", kind, source))
	}

	details := strings.Join(parts, ", ")
	if missing {
		return warn("API keys", details)
	}
	return ok("API keys", details)
}

func (s *Service) providerCheck(models []domain.ModelDefinition) domain.HealthCheck {
	if len(models) == 0 {
		return warn("Providers", "no models configured")
	}
	var failures []string
	for _, model := range models {
		if _, err := s.Factory.ForModel(model); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", model.Name, err))
		}
	}
	if len(failures) > 0 {
		return fail("Providers", strings.Join(failures, "; "))
	}
	return ok("Providers", fmt.Sprintf("%d models ready", len(models)))
}

func (s *Service) clipboardCheck() domain.HealthCheck {
	if s.Clipboard == nil || !s.Clipboard.Enabled() {
		return warn("Clipboard", "not available in this environment")
	}
	return ok("Clipboard", "available")
}

// keySource mirrors the provider factory's resolution order: keyring, the
// model's auth env var, then the conventional env var for the kind.
func (s *Service) keySource(kind domain.ProviderKind, models []domain.ModelDefinition) string {
	if s.Keys != nil {
		if key, err := s.Keys.Get(string(kind)); err == nil && key != "" {
			return "keyring"
		}
	}
	for _, model := range models {
		if model.ResolvedKind() != kind || model.AuthEnvVar == "" {
			continue
		}
		if os.Getenv(model.AuthEnvVar) != "" {
			return model.AuthEnvVar
		}
	}
	if name := conventionalKeyVar(kind); os.Getenv(name) != "" {
		return name
	}
	return ""
}

func hostedKinds(models []domain.ModelDefinition) []domain.ProviderKind {
	var kinds []domain.ProviderKind
	seen := make(map[domain.ProviderKind]bool)
	for _, model := range models {
		kind := model.ResolvedKind()
		if kind == domain.ProviderOpenAI && model.Endpoint != "" {
			continue
		}
		if seen[kind] {
			continue
		}
		seen[kind] = true
		kinds = append(kinds, kind)
	}
	return kinds
}

func conventionalKeyVar(kind domain.ProviderKind) string {
	if kind == domain.ProviderAnthropic {
		return "ANTHROPIC_API_KEY"
	}
	return "OPENAI_API_KEY"
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
