package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Timeout and duration constants
const (
	// DefaultRequestTimeoutSeconds bounds one provider round trip
	DefaultRequestTimeoutSeconds = 60
	// DefaultHTTPClientTimeout is the timeout for HTTP client requests
	DefaultHTTPClientTimeout = 60 * time.Second
)

// Execution log constants
const (
	// MaxLogEntries caps the execution log; an append beyond it evicts the oldest entry
	MaxLogEntries = 2000
	// DefaultHistoryLimit is the default number of log entries to display
	DefaultHistoryLimit = 20
)

// Auto-suggestion thresholds
const (
	// SuggestionMinRuns is the minimum number of recorded runs before suggestions apply
	SuggestionMinRuns = 5
	// SuggestionLowSuccessRate triggers a reliability suggestion below it
	SuggestionLowSuccessRate = 0.7
	// SuggestionSlowAverageMS triggers a conciseness suggestion above it
	SuggestionSlowAverageMS = 10000
)

// Cache constants
const (
	// DefaultMaxCacheEntries is the maximum number of cached results
	DefaultMaxCacheEntries = 100
	// DefaultCacheTTL is how long a cached result stays valid
	DefaultCacheTTL = time.Hour
)

// Model configuration constants
const (
	// DefaultMaxTokens is the default maximum number of tokens
	DefaultMaxTokens = 1024
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
