package domain

import "time"

// ExecutionLogEntry records one completed action run. Entries are immutable
// once created and live in an append-only, size-capped log.
type ExecutionLogEntry struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	ActionID     string    `json:"action_id"`
	ActionName   string    `json:"action_name"`
	Prompt       string    `json:"prompt"`
	Provider     string    `json:"provider"`
	ModelID      string    `json:"model_id"`
	DurationMS   int64     `json:"duration_ms"`
	InputLength  int       `json:"input_length"`
	OutputLength int       `json:"output_length"`
	Success      bool      `json:"success"`
	ErrorMessage string    `json:"error_message,omitempty"`
}

// ActionExecutionStats aggregates run outcomes for a single action.
// Derived on demand from the log, never stored.
type ActionExecutionStats struct {
	ActionID          string
	TotalRuns         int
	SuccessfulRuns    int
	FailedRuns        int
	SuccessRate       float64
	AverageDurationMS float64
	TopFailureReasons []FailureReason
}

// FailureReason is a normalized failure bucket with its occurrence count.
type FailureReason struct {
	Message string
	Count   int
}

// PromptAutoSuggestion proposes a revised prompt when an action underperforms.
// SuggestedPrompt may be empty when only a summary applies.
type PromptAutoSuggestion struct {
	Summary         string
	SuggestedPrompt string
}
