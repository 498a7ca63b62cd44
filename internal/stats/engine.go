// Package stats owns the execution log and derives per-action statistics and
// prompt auto-suggestions from it. The engine is the single writer of the
// in-memory log; persistence goes through the ExecutionLogStore port and is
// best-effort, so a broken store never blocks recording.
package stats

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/textact/textact/internal/domain"
	"github.com/textact/textact/internal/ports"
)

// Canonical failure messages produced by bucketing. Raw error messages that
// match none of the rules become their own bucket verbatim.
const (
	FailureNoSelection = "No text was selected when the action ran"
	FailureAPIKey      = "API key is missing or invalid"
	FailureTimeout     = "The request timed out"
	FailureNetwork     = "A network error interrupted the request"

	// UnknownFailure stands in for failed entries without an error message.
	UnknownFailure = "Unknown failure"
)

// failureRules maps lower-cased message substrings to canonical buckets.
// Order matters: the first matching rule wins.
var failureRules = []struct {
	substring string
	message   string
}{
	{"no text selected", FailureNoSelection},
	{"api key", FailureAPIKey},
	{"timeout", FailureTimeout},
	{"network", FailureNetwork},
}

// Suggestion blocks appended to an action's prompt.
const (
	reliabilityBlock = "\n\nFollow these rules strictly:\n" +
		"- Work only with the text supplied as input.\n" +
		"- If the input is empty or unusable, return it unchanged instead of failing.\n" +
		"- Respond with the transformed text only, without commentary or preamble."

	concisenessBlock = "\n\nKeep the response short: answer directly, do not restate " +
		"the input, and skip explanations unless they were explicitly requested."
)

// Engine records executions and computes statistics over them. Safe for
// concurrent use; the entry log is the only shared mutable state.
type Engine struct {
	mu      sync.Mutex
	entries []domain.ExecutionLogEntry

	store ports.ExecutionLogStore
	log   ports.Logger
}

// NewEngine loads previously persisted entries (trimmed to the cap) and
// returns a ready engine. A nil store keeps the log memory-only.
func NewEngine(store ports.ExecutionLogStore, log ports.Logger) *Engine {
	e := &Engine{store: store, log: log}
	if store == nil {
		return e
	}

	entries, err := store.LoadAll()
	if err != nil {
		log.Warn("could not load execution log, starting empty", map[string]interface{}{
			"error": err.Error(),
		})
		return e
	}
	if len(entries) > domain.MaxLogEntries {
		entries = entries[len(entries)-domain.MaxLogEntries:]
	}
	e.entries = entries
	return e
}

// Record appends one entry, evicting the oldest when the cap is exceeded.
// Eviction is atomic with the append. Persistence happens after the lock is
// released and never affects the in-memory log.
func (e *Engine) Record(entry domain.ExecutionLogEntry) {
	e.mu.Lock()
	e.entries = append(e.entries, entry)
	if len(e.entries) > domain.MaxLogEntries {
		e.entries = e.entries[len(e.entries)-domain.MaxLogEntries:]
	}
	e.mu.Unlock()

	if e.store == nil {
		return
	}
	if err := e.store.Append(entry); err != nil {
		e.log.Warn("could not persist execution log entry", map[string]interface{}{
			"entry_id": entry.ID,
			"error":    err.Error(),
		})
	}
}

// Stats computes aggregate statistics for one action. The second return is
// false when the action has no recorded entries; callers must not confuse
// that with an action that ran and always failed.
func (e *Engine) Stats(actionID string) (domain.ActionExecutionStats, bool) {
	e.mu.Lock()
	var filtered []domain.ExecutionLogEntry
	for _, entry := range e.entries {
		if entry.ActionID == actionID {
			filtered = append(filtered, entry)
		}
	}
	e.mu.Unlock()

	if len(filtered) == 0 {
		return domain.ActionExecutionStats{}, false
	}

	stats := domain.ActionExecutionStats{
		ActionID:  actionID,
		TotalRuns: len(filtered),
	}

	var durationSum float64
	for _, entry := range filtered {
		if entry.Success {
			stats.SuccessfulRuns++
		} else {
			stats.FailedRuns++
		}
		durationSum += float64(entry.DurationMS)
	}
	stats.SuccessRate = float64(stats.SuccessfulRuns) / float64(stats.TotalRuns)
	stats.AverageDurationMS = durationSum / float64(stats.TotalRuns)
	stats.TopFailureReasons = topFailureReasons(filtered, 3)

	return stats, true
}

// Suggest derives a prompt improvement for an action whose stats cross the
// thresholds. At most one suggestion is returned, picked by priority: low
// success rate first, then slow average duration.
func (e *Engine) Suggest(action domain.Action, stats domain.ActionExecutionStats) (domain.PromptAutoSuggestion, bool) {
	if stats.TotalRuns < domain.SuggestionMinRuns {
		return domain.PromptAutoSuggestion{}, false
	}

	if stats.SuccessRate < domain.SuggestionLowSuccessRate {
		var b strings.Builder
		b.WriteString(action.Prompt)
		b.WriteString(reliabilityBlock)
		if len(stats.TopFailureReasons) > 0 {
			b.WriteString("\n\nCommon failure causes observed:\n")
			for _, reason := range stats.TopFailureReasons {
				fmt.Fprintf(&b, "- %s\n", reason.Message)
			}
		}
		return domain.PromptAutoSuggestion{
			Summary: fmt.Sprintf("%q succeeded in only %.0f%% of its last %d runs.",
				action.Name, stats.SuccessRate*100, stats.TotalRuns),
			SuggestedPrompt: b.String(),
		}, true
	}

	if stats.AverageDurationMS > domain.SuggestionSlowAverageMS {
		return domain.PromptAutoSuggestion{
			Summary: fmt.Sprintf("%q averages %.1fs per run; a tighter prompt usually responds faster.",
				action.Name, stats.AverageDurationMS/1000),
			SuggestedPrompt: action.Prompt + concisenessBlock,
		}, true
	}

	return domain.PromptAutoSuggestion{}, false
}

// Entries returns a copy of the most recent entries, newest last. A zero or
// negative limit returns everything; a non-empty actionID filters.
func (e *Engine) Entries(actionID string, limit int) []domain.ExecutionLogEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []domain.ExecutionLogEntry
	for _, entry := range e.entries {
		if actionID == "" || entry.ActionID == actionID {
			out = append(out, entry)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return append([]domain.ExecutionLogEntry(nil), out...)
}

// Len reports the current number of in-memory entries.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.entries)
}

// Clear drops the in-memory log and asks the store to do the same.
func (e *Engine) Clear() error {
	e.mu.Lock()
	e.entries = nil
	e.mu.Unlock()

	if e.store == nil {
		return nil
	}
	return e.store.Clear()
}

// topFailureReasons buckets failed entries and returns up to max buckets by
// descending count. The sort is stable, so equal counts keep first-seen order.
func topFailureReasons(entries []domain.ExecutionLogEntry, max int) []domain.FailureReason {
	counts := make(map[string]int)
	var order []string

	for _, entry := range entries {
		if entry.Success {
			continue
		}
		bucket := bucketFailure(entry.ErrorMessage)
		if counts[bucket] == 0 {
			order = append(order, bucket)
		}
		counts[bucket]++
	}
	if len(order) == 0 {
		return nil
	}

	reasons := make([]domain.FailureReason, 0, len(order))
	for _, bucket := range order {
		reasons = append(reasons, domain.FailureReason{Message: bucket, Count: counts[bucket]})
	}
	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].Count > reasons[j].Count
	})

	if len(reasons) > max {
		reasons = reasons[:max]
	}
	return reasons
}

// bucketFailure normalizes one raw error message into its bucket. Matching is
// case-insensitive; an unmatched message keeps its original form.
func bucketFailure(message string) string {
	raw := message
	if raw == "" {
		raw = UnknownFailure
	}

	lowered := strings.ToLower(raw)
	for _, rule := range failureRules {
		if strings.Contains(lowered, rule.substring) {
			return rule.message
		}
	}
	return raw
}
