package ports

import (
	"context"
	"encoding/json"

	"group-analytics-service/internal/analytics/core/domain"
	registry "group-analytics-service/internal/registry/core/domain"
)

// ObservationRepositoryPort is the append-only metric log. Observations are
// never mutated or deleted; reads resolve to the latest row per metric type.
type ObservationRepositoryPort interface {
	Append(ctx context.Context, gcID int64, metric domain.MetricType, payload json.RawMessage) error

	// Latest returns domain.ErrNoObservation when nothing was recorded.
	Latest(ctx context.Context, gcID int64, metric domain.MetricType) (json.RawMessage, error)

	// LatestMany batches Latest over several metric types in one query.
	// Missing types are simply absent from the result map.
	LatestMany(ctx context.Context, gcID int64, metrics []domain.MetricType) (map[domain.MetricType]json.RawMessage, error)
}

// Counter kinds persisted in user_counters.
const (
	CounterMessages = "messages"
	CounterAbuse    = "abuse"
)

// CounterRepositoryPort maintains per-(group,user) counters. Increments are
// single atomic upsert statements; there is no read-then-write window.
type CounterRepositoryPort interface {
	IncrementMessage(ctx context.Context, gcID, userID int64) (int64, error)
	IncrementAbuse(ctx context.Context, gcID, userID int64) (int64, error)

	MessageCounts(ctx context.Context, gcID int64) (map[int64]int64, error)
	AbuseCounts(ctx context.Context, gcID int64) (map[int64]int64, error)
	TotalMessages(ctx context.Context, gcID int64) (int64, error)
}

// GroupReaderPort exposes registry lookups to the analytics side.
type GroupReaderPort interface {
	GetByID(ctx context.Context, gcID int64) (registry.Group, error)
}

type AbuseVerdict struct {
	Flagged bool
	Reason  string
}

// AbuseClassifierPort is the external AI collaborator for abuse checks.
// Callers impose a timeout and recover locally from any failure.
type AbuseClassifierPort interface {
	ClassifyAbuse(ctx context.Context, text string) (AbuseVerdict, error)
}

// GrowthTipPort generates a short actionable tip from a metrics summary.
type GrowthTipPort interface {
	GrowthTip(ctx context.Context, summary string) (string, error)
}
