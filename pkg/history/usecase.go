package history

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

type service struct {
	store Store
	keep  int
	now   func() time.Time
}

func NewService(store Store, keep int) UseCase {
	if keep <= 0 {
		keep = DefaultLimit
	}
	return &service{store: store, keep: keep, now: time.Now}
}

func ownerKey(owner string) string {
	if owner = strings.TrimSpace(owner); owner == "" {
		return AnonymousOwner
	}
	return owner
}

// Add stamps the record with an id and date and keeps only the newest
// records of the owner.
func (s *service) Add(ctx context.Context, owner string, rec Record) (Record, error) {
	if rec.Score < 0 || rec.Score > 100 || rec.ATSScore < 0 || rec.ATSScore > 100 {
		return Record{}, fmt.Errorf("%w: scores must be within 0..100", ErrInvalidRecord)
	}
	rec.ID = uuid.New()
	rec.Date = s.now().UTC()
	if err := s.store.Append(ctx, ownerKey(owner), rec, s.keep); err != nil {
		return Record{}, fmt.Errorf("append history: %w", err)
	}
	return rec, nil
}

func (s *service) List(ctx context.Context, owner string, limit, offset int) ([]Record, Stats, error) {
	all, err := s.store.List(ctx, ownerKey(owner), s.keep, 0)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("list history: %w", err)
	}
	stats := ComputeStats(all)
	if offset >= len(all) {
		return []Record{}, stats, nil
	}
	page := all[offset:]
	if limit > 0 && limit < len(page) {
		page = page[:limit]
	}
	return page, stats, nil
}

func (s *service) Clear(ctx context.Context, owner string) error {
	if err := s.store.Clear(ctx, ownerKey(owner)); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// ComputeStats expects records newest first.
func ComputeStats(records []Record) Stats {
	if len(records) == 0 {
		return Stats{}
	}
	st := Stats{Count: len(records), Latest: records[0].Score}
	sum := 0
	for _, r := range records {
		sum += r.Score
		if r.Score > st.Best {
			st.Best = r.Score
		}
	}
	st.Average = int(math.Round(float64(sum) / float64(len(records))))
	if len(records) > 1 {
		d := records[0].Score - records[1].Score
		st.Delta = &d
	}
	return st
}
