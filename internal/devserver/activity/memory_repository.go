package activity

import (
	"context"
	"sync"
)

// MemoryRepository appends entries to per-user slices in process memory.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string][]Entry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string][]Entry)}
}

func (r *MemoryRepository) Add(ctx context.Context, e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.UserID] = append(r.entries[e.UserID], e)
	return nil
}

// ListByUser returns a copy of the user's entries in insertion order.
func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src := r.entries[userID]
	out := make([]Entry, len(src))
	copy(out, src)
	return out, nil
}
