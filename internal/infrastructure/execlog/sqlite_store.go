package execlog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/textact/textact/internal/domain"
	"github.com/textact/textact/internal/pkg/filesystem"
	"github.com/textact/textact/internal/ports"
)

// SQLiteStore persists the execution log in a SQLite database. The entry cap
// is enforced on each append by deleting the oldest rows beyond the limit.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// OpenSQLite opens (or creates) the ~/.textact/execution_log.db database.
func OpenSQLite() (*SQLiteStore, error) {
	return OpenSQLiteAt(filepath.Join(filesystem.AppDir(), "execution_log.db"))
}

// OpenSQLiteAt opens a store at an explicit path. Used by tests.
func OpenSQLiteAt(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open execution log database: %w", err)
	}

	store := &SQLiteStore{db: db, path: path}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate execution log database: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS execution_log (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		action_id TEXT NOT NULL,
		action_name TEXT,
		prompt TEXT,
		provider TEXT,
		model_id TEXT,
		duration_ms INTEGER,
		input_length INTEGER,
		output_length INTEGER,
		success INTEGER,
		error_message TEXT
	);`)
	return err
}

// Append implements ports.ExecutionLogStore.
func (s *SQLiteStore) Append(entry domain.ExecutionLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO execution_log
		(id, timestamp, action_id, action_name, prompt, provider, model_id,
		 duration_ms, input_length, output_length, success, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Timestamp.Format(time.RFC3339Nano),
		entry.ActionID,
		entry.ActionName,
		entry.Prompt,
		entry.Provider,
		entry.ModelID,
		entry.DurationMS,
		entry.InputLength,
		entry.OutputLength,
		boolToInt(entry.Success),
		entry.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("insert execution log entry: %w", err)
	}

	_, err = s.db.Exec(`DELETE FROM execution_log WHERE seq NOT IN (
		SELECT seq FROM execution_log ORDER BY seq DESC LIMIT ?
	)`, domain.MaxLogEntries)
	if err != nil {
		return fmt.Errorf("trim execution log: %w", err)
	}
	return nil
}

// LoadAll implements ports.ExecutionLogStore, returning entries oldest first.
func (s *SQLiteStore) LoadAll() ([]domain.ExecutionLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT id, timestamp, action_id, action_name, prompt,
		provider, model_id, duration_ms, input_length, output_length, success,
		error_message FROM execution_log ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("query execution log: %w", err)
	}
	defer rows.Close()

	var entries []domain.ExecutionLogEntry
	for rows.Next() {
		var entry domain.ExecutionLogEntry
		var ts string
		var success int
		if err := rows.Scan(&entry.ID, &ts, &entry.ActionID, &entry.ActionName,
			&entry.Prompt, &entry.Provider, &entry.ModelID, &entry.DurationMS,
			&entry.InputLength, &entry.OutputLength, &success, &entry.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan execution log entry: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			entry.Timestamp = t
		}
		entry.Success = success == 1
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Clear deletes all log entries.
func (s *SQLiteStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM execution_log")
	return err
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.ExecutionLogStore = (*SQLiteStore)(nil)
