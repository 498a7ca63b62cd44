package domain_test

import (
	"testing"

	"github.com/textact/textact/internal/domain"
)

func TestCacheKey(t *testing.T) {
	a := domain.CacheKey("gpt-4o-mini", "summarize", "hello world")
	b := domain.CacheKey("gpt-4o-mini", "summarize", "hello world")
	if a != b {
		t.Errorf("same inputs produced different keys: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Errorf("key length = %d, want 64 hex chars", len(a))
	}

	if domain.CacheKey("gpt-4o-mini", "summarize", "other input") == a {
		t.Error("different input produced the same key")
	}
	if domain.CacheKey("claude-sonnet-4-5", "summarize", "hello world") == a {
		t.Error("different model produced the same key")
	}
	if domain.CacheKey("gpt-4o-mini", "improve-writing", "hello world") == a {
		t.Error("different action produced the same key")
	}
}
