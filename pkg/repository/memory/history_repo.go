package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/artem13815/resumescan/pkg/history"
)

// HistoryRepository keeps scan history in process memory.
type HistoryRepository struct {
	mu      sync.RWMutex
	byOwner map[string][]history.Record
}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{byOwner: make(map[string][]history.Record)}
}

var _ history.Store = (*HistoryRepository)(nil)

func (r *HistoryRepository) Append(_ context.Context, owner string, rec history.Record, keep int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	recs := append([]history.Record{rec}, r.byOwner[owner]...)
	if keep > 0 && len(recs) > keep {
		recs = recs[:keep]
	}
	r.byOwner[owner] = recs
	return nil
}

func (r *HistoryRepository) List(_ context.Context, owner string, limit, offset int) ([]history.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recs := r.byOwner[owner]
	if offset >= len(recs) {
		return []history.Record{}, nil
	}
	recs = recs[offset:]
	if limit > 0 && limit < len(recs) {
		recs = recs[:limit]
	}
	return slices.Clone(recs), nil
}

func (r *HistoryRepository) Clear(_ context.Context, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byOwner, owner)
	return nil
}
