package postgres

import (
	"context"
	"errors"

	"group-analytics-service/internal/analytics/core/ports"
)

type CounterRepository struct {
	db DB
}

func NewCounterRepository(db DB) *CounterRepository {
	return &CounterRepository{db: db}
}

var _ ports.CounterRepositoryPort = (*CounterRepository)(nil)

// Single-statement increment: no read-then-write window between concurrent
// workers.
const incrementCounterSQL = `
INSERT INTO user_counters (gc_id, user_id, kind, count)
VALUES ($1, $2, $3, 1)
ON CONFLICT (gc_id, user_id, kind) DO UPDATE SET count = user_counters.count + 1
RETURNING count;
`

const selectCountsSQL = `
SELECT user_id, count
FROM user_counters
WHERE gc_id = $1 AND kind = $2;
`

const selectTotalSQL = `
SELECT COALESCE(SUM(count), 0)
FROM user_counters
WHERE gc_id = $1 AND kind = $2;
`

func (r *CounterRepository) IncrementMessage(ctx context.Context, gcID, userID int64) (int64, error) {
	return r.increment(ctx, gcID, userID, ports.CounterMessages)
}

func (r *CounterRepository) IncrementAbuse(ctx context.Context, gcID, userID int64) (int64, error) {
	return r.increment(ctx, gcID, userID, ports.CounterAbuse)
}

func (r *CounterRepository) increment(ctx context.Context, gcID, userID int64, kind string) (int64, error) {
	rows, err := r.db.QueryContext(ctx, incrementCounterSQL, gcID, userID, kind)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, err
		}
		return 0, errors.New("increment returned no row")
	}

	var count int64
	if err := rows.Scan(&count); err != nil {
		return 0, err
	}
	return count, rows.Err()
}

func (r *CounterRepository) MessageCounts(ctx context.Context, gcID int64) (map[int64]int64, error) {
	return r.counts(ctx, gcID, ports.CounterMessages)
}

func (r *CounterRepository) AbuseCounts(ctx context.Context, gcID int64) (map[int64]int64, error) {
	return r.counts(ctx, gcID, ports.CounterAbuse)
}

func (r *CounterRepository) counts(ctx context.Context, gcID int64, kind string) (map[int64]int64, error) {
	rows, err := r.db.QueryContext(ctx, selectCountsSQL, gcID, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int64]int64{}
	for rows.Next() {
		var userID, count int64
		if err := rows.Scan(&userID, &count); err != nil {
			return nil, err
		}
		out[userID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CounterRepository) TotalMessages(ctx context.Context, gcID int64) (int64, error) {
	rows, err := r.db.QueryContext(ctx, selectTotalSQL, gcID, ports.CounterMessages)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var total int64
	if rows.Next() {
		if err := rows.Scan(&total); err != nil {
			return 0, err
		}
	}
	return total, rows.Err()
}
