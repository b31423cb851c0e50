// Package progress persists which tour steps a user has seen or completed.
// It offers an in-memory store for tests and single-session use and a
// SQLite store for durability across sessions.
package progress

import (
	"sync"
	"time"

	"github.com/petrijr/guidepost/pkg/api"
)

// MemoryStore is a goroutine-safe api.ProgressStore backed by a slice.
type MemoryStore struct {
	mu      sync.RWMutex
	records []api.ProgressRecord
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Ensure MemoryStore implements the interface.
var _ api.ProgressStore = (*MemoryStore)(nil)

func (s *MemoryStore) MarkShown(tour, run, stepID string) error {
	return s.append(tour, run, stepID, false)
}

func (s *MemoryStore) MarkCompleted(tour, run, stepID string) error {
	return s.append(tour, run, stepID, true)
}

func (s *MemoryStore) append(tour, run, stepID string, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, api.ProgressRecord{
		Tour:      tour,
		Run:       run,
		StepID:    stepID,
		Completed: completed,
		At:        time.Now(),
	})
	return nil
}

func (s *MemoryStore) Seen(tour, stepID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.Tour == tour && r.StepID == stepID {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) List(f api.ProgressFilter) ([]api.ProgressRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []api.ProgressRecord
	for _, r := range s.records {
		if !matches(r, f) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func matches(r api.ProgressRecord, f api.ProgressFilter) bool {
	if f.Tour != "" && r.Tour != f.Tour {
		return false
	}
	if f.Run != "" && r.Run != f.Run {
		return false
	}
	if f.Completed != nil && r.Completed != *f.Completed {
		return false
	}
	return true
}
