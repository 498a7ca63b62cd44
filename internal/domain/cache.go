package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// CacheEntry stores a cached provider result keyed by model, action, and input.
type CacheEntry struct {
	Key       string    `json:"key"`
	Output    string    `json:"output"`
	ModelID   string    `json:"model_id"`
	ActionID  string    `json:"action_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CacheKey derives the cache key for one transformation. The same model,
// action and input always map to the same key.
func CacheKey(modelID, actionID, input string) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%s|%s", modelID, actionID, input))
	return hex.EncodeToString(sum[:])
}
