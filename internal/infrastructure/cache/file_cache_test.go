package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/textact/textact/internal/domain"
)

func TestFileCache_SetGetRoundTrip(t *testing.T) {
	c := NewFileCacheAt(t.TempDir())

	entry := domain.CacheEntry{
		Key:       domain.CacheKey("gpt-4o-mini", "summarize", "hello"),
		Output:    "A greeting.",
		ModelID:   "gpt-4o-mini",
		ActionID:  "summarize",
		CreatedAt: time.Now().UTC(),
	}
	if err := c.Set(entry); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok := c.Get(entry.Key)
	if !ok {
		t.Fatal("Get() reported a miss for a stored entry")
	}
	if got.Output != entry.Output || got.ModelID != entry.ModelID {
		t.Errorf("Get() = %+v, want %+v", got, entry)
	}
}

func TestFileCache_MissBehaviour(t *testing.T) {
	c := NewFileCacheAt(t.TempDir())

	if _, ok := c.Get("no-such-key"); ok {
		t.Error("Get() reported a hit for an absent key")
	}
	if _, ok := c.Get(""); ok {
		t.Error("Get() reported a hit for an empty key")
	}

	// Unparseable entries count as misses instead of failing the run.
	if err := os.MkdirAll(c.Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(c.Dir(), "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("Get() reported a hit for a corrupt entry")
	}
}

func TestFileCache_ExpiredEntryIsEvicted(t *testing.T) {
	c := NewFileCacheAt(t.TempDir())

	entry := domain.CacheEntry{
		Key:       domain.CacheKey("gpt-4o-mini", "summarize", "stale"),
		Output:    "old output",
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	if err := c.Set(entry); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.Get(entry.Key); ok {
		t.Error("Get() returned an entry past its TTL")
	}
	if _, err := os.Stat(filepath.Join(c.Dir(), entry.Key+".json")); !os.IsNotExist(err) {
		t.Error("expired entry file should be removed on access")
	}
}

func TestFileCache_EvictsOldestPastLimit(t *testing.T) {
	c := NewFileCacheAt(t.TempDir())
	c.maxEntries = 3

	keys := []string{"aaaa", "bbbb", "cccc", "dddd"}
	base := time.Now().Add(-time.Minute)
	for i, key := range keys {
		entry := domain.CacheEntry{Key: key, Output: "v", CreatedAt: time.Now()}
		if err := c.Set(entry); err != nil {
			t.Fatal(err)
		}
		// Spread modification times so eviction order is deterministic.
		stamp := base.Add(time.Duration(i) * time.Second)
		if err := os.Chtimes(filepath.Join(c.Dir(), key+".json"), stamp, stamp); err != nil {
			t.Fatal(err)
		}
	}

	if err := c.Set(domain.CacheEntry{Key: "eeee", Output: "v", CreatedAt: time.Now()}); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.Get("aaaa"); ok {
		t.Error("oldest entry survived eviction")
	}
	for _, key := range []string{"cccc", "dddd", "eeee"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("entry %q should have survived eviction", key)
		}
	}
}

func TestFileCache_Clear(t *testing.T) {
	c := NewFileCacheAt(filepath.Join(t.TempDir(), "responses"))

	if err := c.Set(domain.CacheEntry{Key: "abcd", Output: "v", CreatedAt: time.Now()}); err != nil {
		t.Fatal(err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, ok := c.Get("abcd"); ok {
		t.Error("Get() reported a hit after Clear()")
	}
	if err := c.Clear(); err != nil {
		t.Errorf("Clear() on an empty cache should not fail, got %v", err)
	}
}
