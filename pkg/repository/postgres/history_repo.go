package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resumescan/pkg/history"
)

// HistoryRepository хранит историю сканов в таблице scan_history.
// The schema is created by storage/postgres.Migrate.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

var _ history.Store = (*HistoryRepository)(nil)

// Append inserts the record and drops everything older than the newest keep
// records of the owner in one transaction.
func (r *HistoryRepository) Append(ctx context.Context, owner string, rec history.Record, keep int) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
INSERT INTO scan_history (id, owner, created_at, filename, job_title, score, ats_score, summary)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, rec.ID, owner, rec.Date, rec.Filename, rec.JobTitle, rec.Score, rec.ATSScore, rec.Summary)
		if err != nil {
			return fmt.Errorf("insert scan: %w", err)
		}
		if keep <= 0 {
			return nil
		}
		_, err = tx.Exec(ctx, `
DELETE FROM scan_history
WHERE owner = $1 AND id NOT IN (
	SELECT id FROM scan_history WHERE owner = $1 ORDER BY created_at DESC, id DESC LIMIT $2
)
`, owner, keep)
		if err != nil {
			return fmt.Errorf("trim history: %w", err)
		}
		return nil
	})
}

func (r *HistoryRepository) List(ctx context.Context, owner string, limit, offset int) ([]history.Record, error) {
	if limit <= 0 {
		limit = history.DefaultLimit
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, created_at, filename, job_title, score, ats_score, summary
FROM scan_history
WHERE owner = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3
`, owner, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]history.Record, 0, limit)
	for rows.Next() {
		var rec history.Record
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.Filename, &rec.JobTitle, &rec.Score, &rec.ATSScore, &rec.Summary); err != nil {
			return nil, err
		}
		rec.Date = rec.Date.UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *HistoryRepository) Clear(ctx context.Context, owner string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM scan_history WHERE owner = $1`, owner)
	return err
}
