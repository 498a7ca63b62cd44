// Package execlog persists the execution log behind ports.ExecutionLogStore.
// Two interchangeable backends exist: a JSON file and a SQLite database,
// selected by preferences.log_backend.
package execlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/textact/textact/internal/domain"
	"github.com/textact/textact/internal/pkg/filesystem"
	"github.com/textact/textact/internal/ports"
)

// FileStore keeps the log as a single JSON array, loaded once at startup and
// rewritten wholesale on each append. Appends are O(n), but n is bounded by
// domain.MaxLogEntries, which the persisted file also respects.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by ~/.textact/execution_log.json.
func NewFileStore() *FileStore {
	return &FileStore{path: filepath.Join(filesystem.AppDir(), "execution_log.json")}
}

// NewFileStoreAt points the store at an explicit path. Used by tests.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

// Append implements ports.ExecutionLogStore.
func (f *FileStore) Append(entry domain.ExecutionLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	if len(entries) > domain.MaxLogEntries {
		entries = entries[len(entries)-domain.MaxLogEntries:]
	}
	return f.write(entries)
}

// LoadAll implements ports.ExecutionLogStore.
func (f *FileStore) LoadAll() ([]domain.ExecutionLogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

// Clear removes the log file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) read() ([]domain.ExecutionLogEntry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.ExecutionLogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode execution log: %w", err)
	}
	return entries, nil
}

func (f *FileStore) write(entries []domain.ExecutionLogEntry) error {
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}

var _ ports.ExecutionLogStore = (*FileStore)(nil)
