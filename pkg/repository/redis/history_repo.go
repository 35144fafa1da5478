package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/artem13815/resumescan/pkg/history"
)

const keyPrefix = "resumescan:history:"

// HistoryRepository keeps each owner's history as a JSON list, newest at
// the head.
type HistoryRepository struct {
	client goredis.Cmdable
}

func NewHistoryRepository(client goredis.Cmdable) *HistoryRepository {
	return &HistoryRepository{client: client}
}

var _ history.Store = (*HistoryRepository)(nil)

func key(owner string) string { return keyPrefix + owner }

func (r *HistoryRepository) Append(ctx context.Context, owner string, rec history.Record, keep int) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = r.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.LPush(ctx, key(owner), data)
		if keep > 0 {
			p.LTrim(ctx, key(owner), 0, int64(keep-1))
		}
		return nil
	})
	return err
}

func (r *HistoryRepository) List(ctx context.Context, owner string, limit, offset int) ([]history.Record, error) {
	if limit <= 0 {
		limit = history.DefaultLimit
	}
	items, err := r.client.LRange(ctx, key(owner), int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, err
	}
	out := make([]history.Record, 0, len(items))
	for _, item := range items {
		var rec history.Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("decode history record: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *HistoryRepository) Clear(ctx context.Context, owner string) error {
	return r.client.Del(ctx, key(owner)).Err()
}
