// Package cache stores provider responses on disk so repeated runs of the
// same action over the same input skip the network round trip.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/textact/textact/internal/domain"
	"github.com/textact/textact/internal/pkg/filesystem"
	"github.com/textact/textact/internal/ports"
)

// FileCache stores provider responses as JSON blobs addressed by hash key.
type FileCache struct {
	dir        string
	mu         sync.Mutex
	maxEntries int
	ttl        time.Duration
}

// NewFileCache returns a cache rooted under ~/.textact/cache/responses.
func NewFileCache() *FileCache {
	return NewFileCacheAt(filepath.Join(filesystem.AppDir(), "cache", "responses"))
}

// NewFileCacheAt returns a cache rooted at dir.
func NewFileCacheAt(dir string) *FileCache {
	return &FileCache{
		dir:        dir,
		maxEntries: domain.DefaultMaxCacheEntries,
		ttl:        domain.DefaultCacheTTL,
	}
}

// Get retrieves a cache entry. Expired or unreadable entries count as misses.
func (c *FileCache) Get(key string) (domain.CacheEntry, bool) {
	if key == "" {
		return domain.CacheEntry{}, false
	}
	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return domain.CacheEntry{}, false
	}
	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return domain.CacheEntry{}, false
	}
	if c.ttl > 0 && time.Since(entry.CreatedAt) > c.ttl {
		_ = os.Remove(c.pathFor(key))
		return domain.CacheEntry{}, false
	}
	return entry, true
}

// Set stores a cache entry and evicts the oldest files past the size limit.
func (c *FileCache) Set(entry domain.CacheEntry) error {
	if entry.Key == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.MkdirAll(c.dir, domain.DirectoryPermissions); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.pathFor(entry.Key), data, 0o644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return c.evictIfNeeded()
}

// Dir exposes the cache directory path.
func (c *FileCache) Dir() string {
	return c.dir
}

// Clear removes all cached entries.
func (c *FileCache) Clear() error {
	return os.RemoveAll(c.dir)
}

func (c *FileCache) pathFor(key string) string {
	return filepath.Join(c.dir, key+".json")
}

func (c *FileCache) evictIfNeeded() error {
	if c.maxEntries <= 0 {
		return nil
	}
	files, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(files) <= c.maxEntries {
		return nil
	}
	type fileInfo struct {
		name string
		mod  time.Time
	}
	var infos []fileInfo
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		infos = append(infos, fileInfo{name: f.Name(), mod: info.ModTime()})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].mod.Before(infos[j].mod) })
	for len(infos) > c.maxEntries {
		old := infos[0]
		_ = os.Remove(filepath.Join(c.dir, old.name))
		infos = infos[1:]
	}
	return nil
}

var _ ports.CacheStore = (*FileCache)(nil)
