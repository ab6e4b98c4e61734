package ports

import (
	"context"
	"errors"

	"group-analytics-service/internal/registry/core/domain"
)

// ErrCodeConflict signals a unique violation on login_code; the caller
// regenerates the code and retries.
var ErrCodeConflict = errors.New("access code already in use")

type GroupRepositoryPort interface {
	// Upsert creates or updates a group keyed by gc_id. On conflict only
	// login_code and owner_id are overwritten; an existing trial is not
	// extended.
	Upsert(ctx context.Context, g *domain.Group) error

	// GetByCode looks up a group by its normalized (uppercase) access code.
	// Returns domain.ErrGroupNotFound on miss.
	GetByCode(ctx context.Context, code string) (domain.Group, error)

	// GetByID matches the stored id or its negation, so callers may pass
	// the dashboard-facing absolute form.
	GetByID(ctx context.Context, gcID int64) (domain.Group, error)
}
