package postgres

import (
	"context"
	"encoding/json"

	"github.com/lib/pq"

	"group-analytics-service/internal/analytics/core/domain"
	"group-analytics-service/internal/analytics/core/ports"
)

type ObservationRepository struct {
	db DB
}

func NewObservationRepository(db DB) *ObservationRepository {
	return &ObservationRepository{db: db}
}

var _ ports.ObservationRepositoryPort = (*ObservationRepository)(nil)

const insertObservationSQL = `
INSERT INTO metric_observations (gc_id, metric_type, payload)
VALUES ($1, $2, $3);
`

const latestObservationSQL = `
SELECT payload
FROM metric_observations
WHERE gc_id = $1 AND metric_type = $2
ORDER BY observed_at DESC, id DESC
LIMIT 1;
`

// One row per requested metric type, each resolved to its most recent
// observation.
const latestManySQL = `
SELECT DISTINCT ON (metric_type) metric_type, payload
FROM metric_observations
WHERE gc_id = $1 AND metric_type = ANY($2)
ORDER BY metric_type, observed_at DESC, id DESC;
`

func (r *ObservationRepository) Append(ctx context.Context, gcID int64, metric domain.MetricType, payload json.RawMessage) error {
	_, err := r.db.ExecContext(ctx, insertObservationSQL, gcID, string(metric), []byte(payload))
	return err
}

func (r *ObservationRepository) Latest(ctx context.Context, gcID int64, metric domain.MetricType) (json.RawMessage, error) {
	rows, err := r.db.QueryContext(ctx, latestObservationSQL, gcID, string(metric))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrNoObservation
	}

	var payload []byte
	if err := rows.Scan(&payload); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return json.RawMessage(payload), nil
}

func (r *ObservationRepository) LatestMany(ctx context.Context, gcID int64, metrics []domain.MetricType) (map[domain.MetricType]json.RawMessage, error) {
	names := make([]string, len(metrics))
	for i, m := range metrics {
		names[i] = string(m)
	}

	rows, err := r.db.QueryContext(ctx, latestManySQL, gcID, pq.Array(names))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[domain.MetricType]json.RawMessage, len(metrics))
	for rows.Next() {
		var (
			metric  string
			payload []byte
		)
		if err := rows.Scan(&metric, &payload); err != nil {
			return nil, err
		}
		out[domain.MetricType(metric)] = json.RawMessage(payload)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
