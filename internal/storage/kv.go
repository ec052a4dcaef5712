package storage

import (
	"errors"
	"sync"
)

// ErrNotFound indicates a key with no stored value.
var ErrNotFound = errors.New("key not found")

const (
	// HistoryKey holds the JSON list of completed days.
	HistoryKey = "kegel_history"
	// ThemeModeKey holds the presentation theme mode.
	ThemeModeKey = "kegel_theme_mode"
)

// KV is a local key/value store with last-write-wins semantics.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// MemoryKV keeps values in memory.
type MemoryKV struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get returns the value for key or ErrNotFound.
func (store *MemoryKV) Get(key string) (string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	value, ok := store.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set stores value under key.
func (store *MemoryKV) Set(key, value string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values[key] = value
	return nil
}
