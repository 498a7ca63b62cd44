package stats

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/textact/textact/internal/domain"
	"github.com/textact/textact/internal/pkg/logger"
)

func entry(actionID string, success bool, durationMS int64, errMsg string) domain.ExecutionLogEntry {
	return domain.ExecutionLogEntry{
		ID:           fmt.Sprintf("e-%d", time.Now().UnixNano()),
		Timestamp:    time.Now(),
		ActionID:     actionID,
		ActionName:   actionID,
		Prompt:       "prompt",
		Provider:     "anthropic",
		ModelID:      "claude-sonnet-4-20250514",
		DurationMS:   durationMS,
		InputLength:  10,
		OutputLength: 20,
		Success:      success,
		ErrorMessage: errMsg,
	}
}

func TestEngineStatsSuccessRateAndTimeouts(t *testing.T) {
	e := NewEngine(nil, logger.NewStd(false))

	for i := 0; i < 7; i++ {
		e.Record(entry("summarize", true, 1000, ""))
	}
	e.Record(entry("summarize", false, 1000, "request timeout after 30s"))
	e.Record(entry("summarize", false, 1000, "Timeout waiting for response"))
	e.Record(entry("summarize", false, 1000, "connection timeout"))

	stats, ok := e.Stats("summarize")
	if !ok {
		t.Fatal("expected stats for recorded action")
	}
	if stats.TotalRuns != 10 || stats.SuccessfulRuns != 7 || stats.FailedRuns != 3 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.SuccessRate != 0.7 {
		t.Errorf("success rate = %v, want 0.7", stats.SuccessRate)
	}

	want := []domain.FailureReason{{Message: FailureTimeout, Count: 3}}
	if diff := cmp.Diff(want, stats.TopFailureReasons); diff != "" {
		t.Errorf("failure reasons mismatch (-want +got):\n%s", diff)
	}
}

func TestEngineStatsNoDataIsDistinctFromZero(t *testing.T) {
	e := NewEngine(nil, logger.NewStd(false))

	if _, ok := e.Stats("never-ran"); ok {
		t.Fatal("expected no stats for unknown action")
	}

	e.Record(entry("always-fails", false, 50, "boom"))
	stats, ok := e.Stats("always-fails")
	if !ok {
		t.Fatal("expected stats for action that ran and failed")
	}
	if stats.SuccessRate != 0 || stats.TotalRuns != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestEngineStatsAverageIncludesFailures(t *testing.T) {
	e := NewEngine(nil, logger.NewStd(false))

	e.Record(entry("translate", true, 100, ""))
	e.Record(entry("translate", true, 200, ""))
	e.Record(entry("translate", false, 600, "boom"))

	stats, ok := e.Stats("translate")
	if !ok {
		t.Fatal("expected stats")
	}
	if stats.AverageDurationMS != 300 {
		t.Errorf("average duration = %v, want 300", stats.AverageDurationMS)
	}
}

func TestEngineStatsFiltersByAction(t *testing.T) {
	e := NewEngine(nil, logger.NewStd(false))

	e.Record(entry("a", true, 10, ""))
	e.Record(entry("b", false, 10, "boom"))
	e.Record(entry("a", true, 10, ""))

	stats, ok := e.Stats("a")
	if !ok {
		t.Fatal("expected stats")
	}
	if stats.TotalRuns != 2 || stats.FailedRuns != 0 {
		t.Fatalf("filter leaked entries across actions: %+v", stats)
	}
}

func TestFailureBucketing(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "no selection rule", message: "There was no text selected in the frontmost app", want: FailureNoSelection},
		{name: "api key rule", message: "401: invalid API key provided", want: FailureAPIKey},
		{name: "timeout rule", message: "Request TIMEOUT", want: FailureTimeout},
		{name: "network rule", message: "network unreachable", want: FailureNetwork},
		{name: "first rule wins", message: "api key check timeout", want: FailureAPIKey},
		{name: "unmatched stays verbatim", message: "model refused the request", want: "model refused the request"},
		{name: "empty becomes unknown", message: "", want: UnknownFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bucketFailure(tt.message); got != tt.want {
				t.Errorf("bucketFailure(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestTopFailureReasonsOrderAndCut(t *testing.T) {
	e := NewEngine(nil, logger.NewStd(false))

	// Four distinct buckets: counts 3, 2, 2, 1. The two-count tie must keep
	// first-seen order, and only three buckets survive the cut.
	e.Record(entry("x", false, 10, "timeout one"))
	e.Record(entry("x", false, 10, "first verbatim"))
	e.Record(entry("x", false, 10, "timeout two"))
	e.Record(entry("x", false, 10, "second verbatim"))
	e.Record(entry("x", false, 10, "first verbatim"))
	e.Record(entry("x", false, 10, "timeout three"))
	e.Record(entry("x", false, 10, "second verbatim"))
	e.Record(entry("x", false, 10, "a network hiccup"))

	stats, ok := e.Stats("x")
	if !ok {
		t.Fatal("expected stats")
	}

	want := []domain.FailureReason{
		{Message: FailureTimeout, Count: 3},
		{Message: "first verbatim", Count: 2},
		{Message: "second verbatim", Count: 2},
	}
	if diff := cmp.Diff(want, stats.TopFailureReasons); diff != "" {
		t.Errorf("failure reasons mismatch (-want +got):\n%s", diff)
	}
}

func TestSuggestBelowRunThreshold(t *testing.T) {
	e := NewEngine(nil, logger.NewStd(false))
	action := domain.Action{ID: "fix", Name: "Fix Grammar", Prompt: "Fix the grammar."}

	// Four runs, all failing: still below the threshold.
	stats := domain.ActionExecutionStats{TotalRuns: 4, FailedRuns: 4, SuccessRate: 0}
	if _, ok := e.Suggest(action, stats); ok {
		t.Fatal("expected no suggestion below the run threshold")
	}
}

func TestSuggestLowSuccessRate(t *testing.T) {
	e := NewEngine(nil, logger.NewStd(false))
	action := domain.Action{ID: "fix", Name: "Fix Grammar", Prompt: "Fix the grammar."}

	stats := domain.ActionExecutionStats{
		TotalRuns:      8,
		SuccessfulRuns: 4,
		FailedRuns:     4,
		SuccessRate:    0.5,
		TopFailureReasons: []domain.FailureReason{
			{Message: FailureTimeout, Count: 3},
			{Message: "model refused", Count: 1},
		},
	}

	suggestion, ok := e.Suggest(action, stats)
	if !ok {
		t.Fatal("expected a suggestion for a flaky action")
	}
	if !strings.HasPrefix(suggestion.SuggestedPrompt, action.Prompt) {
		t.Errorf("suggested prompt does not start with the original prompt: %q", suggestion.SuggestedPrompt)
	}
	if !strings.Contains(suggestion.SuggestedPrompt, "Follow these rules strictly") {
		t.Errorf("suggested prompt is missing the hardening block: %q", suggestion.SuggestedPrompt)
	}
	if !strings.Contains(suggestion.SuggestedPrompt, "- "+FailureTimeout) {
		t.Errorf("suggested prompt is missing the failure bullet list: %q", suggestion.SuggestedPrompt)
	}
	if !strings.Contains(suggestion.Summary, "50%") {
		t.Errorf("summary does not report the rate: %q", suggestion.Summary)
	}
}

func TestSuggestLowSuccessRateWithoutReasonsOmitsBullets(t *testing.T) {
	e := NewEngine(nil, logger.NewStd(false))
	action := domain.Action{ID: "fix", Name: "Fix Grammar", Prompt: "Fix the grammar."}

	stats := domain.ActionExecutionStats{TotalRuns: 6, SuccessfulRuns: 3, FailedRuns: 3, SuccessRate: 0.5}

	suggestion, ok := e.Suggest(action, stats)
	if !ok {
		t.Fatal("expected a suggestion")
	}
	if strings.Contains(suggestion.SuggestedPrompt, "Common failure causes") {
		t.Errorf("bullet list should be omitted when no reasons exist: %q", suggestion.SuggestedPrompt)
	}
}

func TestSuggestSlowAction(t *testing.T) {
	e := NewEngine(nil, logger.NewStd(false))
	action := domain.Action{ID: "expand", Name: "Expand", Prompt: "Expand the text."}

	stats := domain.ActionExecutionStats{
		TotalRuns:         6,
		SuccessfulRuns:    6,
		SuccessRate:       1.0,
		AverageDurationMS: 12500,
	}

	suggestion, ok := e.Suggest(action, stats)
	if !ok {
		t.Fatal("expected a conciseness suggestion for a slow action")
	}
	if !strings.HasPrefix(suggestion.SuggestedPrompt, action.Prompt) {
		t.Errorf("suggested prompt does not start with the original prompt")
	}
	if !strings.Contains(suggestion.SuggestedPrompt, "Keep the response short") {
		t.Errorf("suggested prompt is missing the conciseness block: %q", suggestion.SuggestedPrompt)
	}
}

func TestSuggestPriorityPrefersReliability(t *testing.T) {
	e := NewEngine(nil, logger.NewStd(false))
	action := domain.Action{ID: "x", Name: "X", Prompt: "p"}

	// Both thresholds crossed: only the reliability suggestion may fire.
	stats := domain.ActionExecutionStats{
		TotalRuns:         10,
		SuccessfulRuns:    2,
		FailedRuns:        8,
		SuccessRate:       0.2,
		AverageDurationMS: 20000,
	}

	suggestion, ok := e.Suggest(action, stats)
	if !ok {
		t.Fatal("expected a suggestion")
	}
	if strings.Contains(suggestion.SuggestedPrompt, "Keep the response short") {
		t.Error("conciseness block must not appear when the reliability branch fires")
	}
}

func TestSuggestHealthyActionGetsNothing(t *testing.T) {
	e := NewEngine(nil, logger.NewStd(false))
	action := domain.Action{ID: "x", Name: "X", Prompt: "p"}

	stats := domain.ActionExecutionStats{
		TotalRuns:         20,
		SuccessfulRuns:    19,
		SuccessRate:       0.95,
		AverageDurationMS: 900,
	}

	if _, ok := e.Suggest(action, stats); ok {
		t.Fatal("expected no suggestion for a healthy action")
	}
}

func TestRecordEnforcesCapFIFO(t *testing.T) {
	e := NewEngine(nil, logger.NewStd(false))

	for i := 0; i < domain.MaxLogEntries+1; i++ {
		en := entry("bulk", true, 1, "")
		en.ID = fmt.Sprintf("id-%d", i)
		e.Record(en)
	}

	if got := e.Len(); got != domain.MaxLogEntries {
		t.Fatalf("log length = %d, want %d", got, domain.MaxLogEntries)
	}

	entries := e.Entries("", 0)
	if entries[0].ID != "id-1" {
		t.Errorf("oldest surviving entry = %s, want id-1", entries[0].ID)
	}
	if entries[len(entries)-1].ID != fmt.Sprintf("id-%d", domain.MaxLogEntries) {
		t.Errorf("newest entry = %s, want id-%d", entries[len(entries)-1].ID, domain.MaxLogEntries)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].ID >= entries[i].ID && len(entries[i-1].ID) == len(entries[i].ID) {
			t.Fatalf("relative order broken around index %d", i)
		}
	}
}

func TestRecordSurvivesStoreFailure(t *testing.T) {
	store := &stubStore{appendErr: errors.New("disk full")}
	e := NewEngine(store, logger.NewStd(false))

	e.Record(entry("resilient", true, 10, ""))

	if got := e.Len(); got != 1 {
		t.Fatalf("in-memory log lost the entry: len = %d", got)
	}
	if _, ok := e.Stats("resilient"); !ok {
		t.Fatal("stats unavailable after store failure")
	}
}

func TestNewEngineLoadsAndTrims(t *testing.T) {
	var persisted []domain.ExecutionLogEntry
	for i := 0; i < domain.MaxLogEntries+5; i++ {
		en := entry("old", true, 1, "")
		en.ID = fmt.Sprintf("id-%d", i)
		persisted = append(persisted, en)
	}
	store := &stubStore{entries: persisted}

	e := NewEngine(store, logger.NewStd(false))

	if got := e.Len(); got != domain.MaxLogEntries {
		t.Fatalf("loaded length = %d, want %d", got, domain.MaxLogEntries)
	}
	if first := e.Entries("", 0)[0].ID; first != "id-5" {
		t.Errorf("oldest loaded entry = %s, want id-5", first)
	}
}

func TestNewEngineToleratesLoadFailure(t *testing.T) {
	store := &stubStore{loadErr: errors.New("corrupt file")}
	e := NewEngine(store, logger.NewStd(false))

	if got := e.Len(); got != 0 {
		t.Fatalf("expected empty log after load failure, got %d", got)
	}
	e.Record(entry("fresh", true, 10, ""))
	if got := e.Len(); got != 1 {
		t.Fatalf("recording after load failure broke: len = %d", got)
	}
}

func TestClearDropsMemoryAndStore(t *testing.T) {
	store := &stubStore{}
	e := NewEngine(store, logger.NewStd(false))
	e.Record(entry("x", true, 10, ""))

	if err := e.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if e.Len() != 0 {
		t.Error("in-memory log not cleared")
	}
	if !store.cleared {
		t.Error("store was not cleared")
	}
}

type stubStore struct {
	entries   []domain.ExecutionLogEntry
	appendErr error
	loadErr   error
	cleared   bool
}

func (s *stubStore) Append(entry domain.ExecutionLogEntry) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *stubStore) LoadAll() ([]domain.ExecutionLogEntry, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.entries, nil
}

func (s *stubStore) Clear() error {
	s.cleared = true
	s.entries = nil
	return nil
}
