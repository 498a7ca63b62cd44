package domain_test

import (
	"testing"

	"github.com/textact/textact/internal/domain"
)

// TestConfig_GetDefaultModel tests retrieving the default model
func TestConfig_GetDefaultModel(t *testing.T) {
	tests := []struct {
		name        string
		config      domain.Config
		wantError   bool
		wantModelID string
	}{
		{
			name: "returns default model successfully",
			config: domain.Config{
				Preferences: domain.Preferences{
					DefaultModel: "claude",
				},
				Models: []domain.ModelDefinition{
					{Name: "claude", ModelID: "claude-sonnet-4-20250514"},
					{Name: "gpt4", ModelID: "gpt-4o"},
				},
			},
			wantError:   false,
			wantModelID: "claude-sonnet-4-20250514",
		},
		{
			name: "returns error when default model not found",
			config: domain.Config{
				Preferences: domain.Preferences{
					DefaultModel: "nonexistent",
				},
				Models: []domain.ModelDefinition{
					{Name: "claude", ModelID: "claude-sonnet-4-20250514"},
				},
			},
			wantError: true,
		},
		{
			name: "returns error when no default model configured",
			config: domain.Config{
				Models: []domain.ModelDefinition{
					{Name: "claude", ModelID: "claude-sonnet-4-20250514"},
				},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := tt.config.GetDefaultModel()

			if tt.wantError {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			if model.ModelID != tt.wantModelID {
				t.Errorf("got model ID %s, want %s", model.ModelID, tt.wantModelID)
			}
		})
	}
}

// TestConfig_ModelForAction tests model resolution precedence
func TestConfig_ModelForAction(t *testing.T) {
	config := domain.Config{
		Preferences: domain.Preferences{
			DefaultModel: "claude",
		},
		Models: []domain.ModelDefinition{
			{Name: "claude", ModelID: "claude-sonnet-4-20250514"},
			{Name: "local", ModelID: "llama3"},
			{Name: "fast", ModelID: "claude-3-5-haiku-20241022"},
		},
	}

	tests := []struct {
		name        string
		action      domain.Action
		override    string
		wantError   bool
		wantModelID string
	}{
		{
			name:        "falls back to default model",
			action:      domain.Action{ID: "improve"},
			wantModelID: "claude-sonnet-4-20250514",
		},
		{
			name:        "action model wins over default",
			action:      domain.Action{ID: "improve", Model: "local"},
			wantModelID: "llama3",
		},
		{
			name:        "override wins over action model",
			action:      domain.Action{ID: "improve", Model: "local"},
			override:    "fast",
			wantModelID: "claude-3-5-haiku-20241022",
		},
		{
			name:      "unknown override fails",
			action:    domain.Action{ID: "improve"},
			override:  "missing",
			wantError: true,
		},
		{
			name:      "unknown action model fails",
			action:    domain.Action{ID: "improve", Model: "missing"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := config.ModelForAction(tt.action, tt.override)

			if tt.wantError {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			if model.ModelID != tt.wantModelID {
				t.Errorf("got model ID %s, want %s", model.ModelID, tt.wantModelID)
			}
		})
	}
}

// TestConfig_FindAction tests action lookup by ID and name
func TestConfig_FindAction(t *testing.T) {
	config := domain.Config{
		Actions: []domain.Action{
			{ID: "improve-writing", Name: "Improve Writing", Prompt: "Improve this text."},
			{ID: "word-count", Name: "Word Count", Plugin: "wordcount"},
		},
	}

	tests := []struct {
		name      string
		ref       string
		wantFound bool
		wantID    string
	}{
		{name: "finds by id", ref: "improve-writing", wantFound: true, wantID: "improve-writing"},
		{name: "finds by exact name", ref: "Improve Writing", wantFound: true, wantID: "improve-writing"},
		{name: "finds by case-insensitive name", ref: "improve writing", wantFound: true, wantID: "improve-writing"},
		{name: "finds plugin action", ref: "word-count", wantFound: true, wantID: "word-count"},
		{name: "missing ref not found", ref: "summarize", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, found := config.FindAction(tt.ref)

			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if found && action.ID != tt.wantID {
				t.Errorf("got action %s, want %s", action.ID, tt.wantID)
			}
		})
	}
}

// TestConfig_AddRemoveAction tests action mutation helpers
func TestConfig_AddRemoveAction(t *testing.T) {
	config := domain.Config{
		Actions: []domain.Action{
			{ID: "improve-writing", Name: "Improve Writing", Prompt: "Improve this text."},
		},
	}

	if err := config.AddAction(domain.Action{ID: "summarize", Name: "Summarize", Prompt: "Summarize."}); err != nil {
		t.Fatalf("unexpected error adding action: %v", err)
	}
	if !config.HasAction("summarize") {
		t.Error("action summarize was not added")
	}

	if err := config.AddAction(domain.Action{ID: "summarize", Name: "Dup", Prompt: "x"}); err == nil {
		t.Error("expected error adding duplicate action id")
	}

	if err := config.RemoveAction("improve-writing"); err != nil {
		t.Fatalf("unexpected error removing action: %v", err)
	}
	if config.HasAction("improve-writing") {
		t.Error("action improve-writing was not removed")
	}

	if err := config.RemoveAction("nonexistent"); err == nil {
		t.Error("expected error removing unknown action")
	}
}

// TestConfig_ValidateConsistency tests configuration invariants
func TestConfig_ValidateConsistency(t *testing.T) {
	tests := []struct {
		name      string
		config    domain.Config
		wantError bool
	}{
		{
			name: "valid config passes",
			config: domain.Config{
				Preferences: domain.Preferences{DefaultModel: "claude"},
				Models:      []domain.ModelDefinition{{Name: "claude", ModelID: "claude-sonnet-4-20250514"}},
				Actions: []domain.Action{
					{ID: "improve", Name: "Improve", Prompt: "Improve this."},
					{ID: "qr", Name: "QR Code", Plugin: "qr"},
				},
			},
		},
		{
			name: "default model must exist",
			config: domain.Config{
				Preferences: domain.Preferences{DefaultModel: "missing"},
				Models:      []domain.ModelDefinition{{Name: "claude"}},
			},
			wantError: true,
		},
		{
			name: "action without prompt or plugin fails",
			config: domain.Config{
				Actions: []domain.Action{{ID: "empty", Name: "Empty"}},
			},
			wantError: true,
		},
		{
			name: "duplicate action ids fail",
			config: domain.Config{
				Actions: []domain.Action{
					{ID: "dup", Name: "One", Prompt: "a"},
					{ID: "dup", Name: "Two", Prompt: "b"},
				},
			},
			wantError: true,
		},
		{
			name: "action referencing unknown model fails",
			config: domain.Config{
				Models:  []domain.ModelDefinition{{Name: "claude"}},
				Actions: []domain.Action{{ID: "improve", Name: "Improve", Prompt: "x", Model: "missing"}},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.ValidateConsistency()

			if tt.wantError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// TestConfig_GetLogBackend tests backend fallback behavior
func TestConfig_GetLogBackend(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		want    string
	}{
		{name: "empty defaults to file", backend: "", want: domain.LogBackendFile},
		{name: "file stays file", backend: "file", want: domain.LogBackendFile},
		{name: "sqlite stays sqlite", backend: "sqlite", want: domain.LogBackendSQLite},
		{name: "unknown falls back to file", backend: "redis", want: domain.LogBackendFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := domain.Config{Preferences: domain.Preferences{LogBackend: tt.backend}}
			if got := config.GetLogBackend(); got != tt.want {
				t.Errorf("got backend %s, want %s", got, tt.want)
			}
		})
	}
}
