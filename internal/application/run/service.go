// Package run implements the core use case: executing an action against
// input text through an AI provider or a local plugin.
package run

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/textact/textact/internal/domain"
	"github.com/textact/textact/internal/ports"
	"github.com/textact/textact/internal/stats"
)

// Service orchestrates a single action run end-to-end.
type Service struct {
	ConfigProvider  ports.ConfigProvider
	ProviderFactory ports.ProviderFactory
	Plugins         ports.PluginRegistry
	Cache           ports.CacheStore
	Stats           *stats.Engine
	Clipboard       ports.Clipboard
	Logger          ports.Logger
}

// Run executes one action against the request's input text.
func (s *Service) Run(req domain.RunRequest) (domain.RunResult, error) {
	if s.ConfigProvider == nil || s.ProviderFactory == nil || s.Plugins == nil || s.Logger == nil {
		return domain.RunResult{}, errors.New("run.Service dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.RunResult{}, fmt.Errorf("load config: %w", err)
	}

	action, ok := cfg.FindAction(req.ActionRef)
	if !ok {
		return domain.RunResult{}, fmt.Errorf("action %q not found: run `textact actions` to list the configured ones", req.ActionRef)
	}

	if strings.TrimSpace(req.Input) == "" {
		err := errors.New("no text selected: the input was empty")
		s.record(action, "", "", time.Now(), req.Input, "", err)
		return domain.RunResult{}, err
	}

	if action.IsPlugin() {
		return s.runPlugin(cfg, action, req)
	}
	return s.runProvider(ctx, cfg, action, req)
}

func (s *Service) runPlugin(cfg domain.Config, action domain.Action, req domain.RunRequest) (domain.RunResult, error) {
	plugin, ok := s.Plugins.Get(action.Plugin)
	if !ok {
		err := fmt.Errorf("action %q references unknown plugin %q", action.ID, action.Plugin)
		s.record(action, "local", action.Plugin, time.Now(), req.Input, "", err)
		return domain.RunResult{}, err
	}

	started := time.Now()
	output, err := plugin.Run(req.Input)
	if err != nil {
		err = fmt.Errorf("plugin %s: %w", plugin.Name(), err)
		s.record(action, "local", plugin.Name(), started, req.Input, "", err)
		return domain.RunResult{}, err
	}

	s.record(action, "local", plugin.Name(), started, req.Input, output, nil)
	s.copyIfRequested(cfg, req, output)

	return domain.RunResult{
		Output:     output,
		Action:     action,
		Provider:   "local",
		ModelID:    plugin.Name(),
		DurationMS: time.Since(started).Milliseconds(),
	}, nil
}

func (s *Service) runProvider(ctx context.Context, cfg domain.Config, action domain.Action, req domain.RunRequest) (domain.RunResult, error) {
	model, err := cfg.ModelForAction(action, req.ModelOverride)
	if err != nil {
		return domain.RunResult{}, err
	}

	cacheKey := domain.CacheKey(model.ModelID, action.ID, req.Input)
	if s.cacheEnabled(cfg, req) {
		if entry, ok := s.Cache.Get(cacheKey); ok {
			s.Logger.Debug("cache hit", map[string]interface{}{
				"action": action.ID,
				"model":  model.ModelID,
			})
			s.copyIfRequested(cfg, req, entry.Output)
			return domain.RunResult{
				Output:    entry.Output,
				Action:    action,
				Provider:  string(model.ResolvedKind()),
				ModelID:   entry.ModelID,
				FromCache: true,
			}, nil
		}
	}

	provider, err := s.ProviderFactory.ForModel(model)
	if err != nil {
		s.record(action, string(model.ResolvedKind()), model.ModelID, time.Now(), req.Input, "", err)
		return domain.RunResult{}, fmt.Errorf("provider init: %w", err)
	}

	timeout := time.Duration(cfg.GetTimeoutSeconds()) * time.Second
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	s.Logger.Info("calling provider", map[string]interface{}{
		"provider": provider.Name(),
		"model":    model.ModelID,
		"action":   action.ID,
	})

	started := time.Now()
	resp, err := provider.Generate(runCtx, ports.ProviderRequest{
		Action: action,
		Input:  req.Input,
		Model:  model,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || runCtx.Err() == context.DeadlineExceeded {
			err = fmt.Errorf("request timeout after %s", timeout)
		}
		s.record(action, provider.Name(), model.ModelID, started, req.Input, "", err)
		return domain.RunResult{}, fmt.Errorf("provider generate: %w", err)
	}

	modelID := valueOrDefault(resp.ModelID, model.ModelID)
	s.record(action, provider.Name(), modelID, started, req.Input, resp.Output, nil)

	if s.cacheEnabled(cfg, req) {
		entry := domain.CacheEntry{
			Key:       cacheKey,
			Output:    resp.Output,
			ModelID:   modelID,
			ActionID:  action.ID,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.Cache.Set(entry); err != nil {
			s.Logger.Warn("cache write failed", map[string]interface{}{"error": err.Error()})
		}
	}

	s.copyIfRequested(cfg, req, resp.Output)

	return domain.RunResult{
		Output:     resp.Output,
		Action:     action,
		Provider:   provider.Name(),
		ModelID:    modelID,
		DurationMS: time.Since(started).Milliseconds(),
	}, nil
}

// record captures one run in the execution log. The stats engine owns
// persistence; a nil engine disables recording.
func (s *Service) record(action domain.Action, provider, modelID string, started time.Time, input, output string, runErr error) {
	if s.Stats == nil {
		return
	}
	entry := domain.ExecutionLogEntry{
		ID:           uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		ActionID:     action.ID,
		ActionName:   action.Name,
		Prompt:       action.Prompt,
		Provider:     provider,
		ModelID:      modelID,
		DurationMS:   time.Since(started).Milliseconds(),
		InputLength:  utf8.RuneCountInString(input),
		OutputLength: utf8.RuneCountInString(output),
		Success:      runErr == nil,
	}
	if runErr != nil {
		entry.ErrorMessage = runErr.Error()
	}
	s.Stats.Record(entry)
}

func (s *Service) cacheEnabled(cfg domain.Config, req domain.RunRequest) bool {
	return s.Cache != nil && cfg.Preferences.CacheEnabled && !req.NoCache
}

func (s *Service) copyIfRequested(cfg domain.Config, req domain.RunRequest, output string) {
	if !req.CopyToClipboard && !cfg.Preferences.CopyToClipboard {
		return
	}
	if s.Clipboard == nil || !s.Clipboard.Enabled() {
		return
	}
	if err := s.Clipboard.Copy(output); err != nil {
		s.Logger.Warn("clipboard copy failed", map[string]interface{}{"error": err.Error()})
	}
}

func valueOrDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

var _ domain.RunService = (*Service)(nil)
