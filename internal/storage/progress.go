package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"kegeltoday/internal/core/model"
	"kegeltoday/internal/logger"
)

// ProgressStore is the set of days on which a session was completed.
type ProgressStore struct {
	mu sync.Mutex
	kv KV
}

// NewProgressStore keeps the progress log in kv under HistoryKey.
func NewProgressStore(kv KV) *ProgressStore {
	return &ProgressStore{kv: kv}
}

// RecordCompletion adds day to the log. Recording a day twice is a no-op.
func (store *ProgressStore) RecordCompletion(day string) error {
	if _, err := model.ParseDayID(day); err != nil {
		return fmt.Errorf("record completion: invalid day %q: %w", day, err)
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	days, err := store.loadLocked()
	if err != nil {
		return fmt.Errorf("record completion: %w", err)
	}
	index := sort.SearchStrings(days, day)
	if index < len(days) && days[index] == day {
		return nil
	}
	days = append(days, "")
	copy(days[index+1:], days[index:])
	days[index] = day

	serialized, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("record completion: encode history: %w", err)
	}
	if err := store.kv.Set(HistoryKey, string(serialized)); err != nil {
		return fmt.Errorf("record completion: %w", err)
	}
	logger.Debug("completion recorded", "day", day, "total", len(days))
	return nil
}

// ListCompletions returns the sorted completed days. Unreadable or corrupt
// history reads as empty.
func (store *ProgressStore) ListCompletions() []string {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.readLocked()
}

// HasCompleted reports whether day is in the log.
func (store *ProgressStore) HasCompleted(day string) bool {
	days := store.ListCompletions()
	index := sort.SearchStrings(days, day)
	return index < len(days) && days[index] == day
}

func (store *ProgressStore) readLocked() []string {
	days, err := store.loadLocked()
	if err != nil {
		logger.Warn("read history failed, treating as empty", "error", err)
		return []string{}
	}
	return days
}

// loadLocked decodes the stored history. Missing or corrupt history is empty;
// only a failed read is an error.
func (store *ProgressStore) loadLocked() ([]string, error) {
	raw, err := store.kv.Get(HistoryKey)
	if errors.Is(err, ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		logger.Warn("history is corrupt, treating as empty", "error", err)
		return []string{}, nil
	}

	seen := make(map[string]bool, len(stored))
	days := make([]string, 0, len(stored))
	for _, day := range stored {
		if seen[day] {
			continue
		}
		if _, err := model.ParseDayID(day); err != nil {
			logger.Warn("dropping malformed history entry", "entry", day)
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	sort.Strings(days)
	return days, nil
}

// Today returns the local day identifier for now.
func Today(now time.Time) string {
	return model.DayID(now)
}
