package domain

import (
	"context"
	"strings"
)

// Action is a user-defined text transformation: a prompt bound to an optional
// model override, or a reference to a local plugin.
type Action struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Prompt   string `yaml:"prompt,omitempty"`
	Model    string `yaml:"model,omitempty"`
	Shortcut string `yaml:"shortcut,omitempty"`
	Plugin   string `yaml:"plugin,omitempty"`
}

// IsPlugin reports whether the action runs a local plugin instead of an AI provider.
func (a Action) IsPlugin() bool {
	return a.Plugin != ""
}

// Matches reports whether ref identifies this action by ID or case-insensitive name.
func (a Action) Matches(ref string) bool {
	if a.ID == ref {
		return true
	}
	return strings.EqualFold(a.Name, ref)
}

// RunRequest captures one action invocation originating from the CLI.
type RunRequest struct {
	Context         context.Context
	ActionRef       string
	Input           string
	ModelOverride   string
	CopyToClipboard bool
	NoCache         bool
}

// RunResult is the canonical result propagated back to the CLI.
type RunResult struct {
	Output     string
	Action     Action
	Provider   string
	ModelID    string
	FromCache  bool
	DurationMS int64
}

// RunService exposes the use-case boundary for executing an action.
type RunService interface {
	Run(RunRequest) (RunResult, error)
}
