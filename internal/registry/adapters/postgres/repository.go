package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"group-analytics-service/internal/registry/core/domain"
	"group-analytics-service/internal/registry/core/ports"
)

type GroupRepository struct {
	db DB
}

func NewGroupRepository(db DB) *GroupRepository {
	return &GroupRepository{db: db}
}

var _ ports.GroupRepositoryPort = (*GroupRepository)(nil)

const upsertGroupSQL = `
INSERT INTO groups (
    gc_id,
    owner_id,
    login_code,
    group_name,
    tier,
    premium_expiry
) VALUES (
    $1, $2, $3, $4, $5, $6
)
ON CONFLICT (gc_id) DO UPDATE SET
    login_code = EXCLUDED.login_code,
    owner_id   = EXCLUDED.owner_id;
`

const selectGroupSQL = `
SELECT gc_id, owner_id, login_code, group_name, tier, premium_expiry
FROM groups
`

func (r *GroupRepository) Upsert(ctx context.Context, g *domain.Group) error {
	var expiry any
	if g.TrialExpiry != nil {
		expiry = *g.TrialExpiry
	}

	_, err := r.db.ExecContext(ctx, upsertGroupSQL,
		g.GCID,
		g.OwnerID,
		g.AccessCode,
		g.Name,
		string(g.Tier),
		expiry,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && strings.Contains(pqErr.Constraint, "login_code") {
			return ports.ErrCodeConflict
		}
		return err
	}
	return nil
}

func (r *GroupRepository) GetByCode(ctx context.Context, code string) (domain.Group, error) {
	return r.getOne(ctx, selectGroupSQL+"WHERE login_code = $1", code)
}

func (r *GroupRepository) GetByID(ctx context.Context, gcID int64) (domain.Group, error) {
	return r.getOne(ctx, selectGroupSQL+"WHERE gc_id = $1 OR gc_id = -$1 LIMIT 1", gcID)
}

func (r *GroupRepository) getOne(ctx context.Context, query string, args ...any) (domain.Group, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.Group{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Group{}, err
		}
		return domain.Group{}, domain.ErrGroupNotFound
	}

	var (
		g      domain.Group
		code   string
		tier   string
		expiry sql.NullTime
	)
	if err := rows.Scan(&g.GCID, &g.OwnerID, &code, &g.Name, &tier, &expiry); err != nil {
		return domain.Group{}, err
	}

	// login_code is CHAR(6); trim in case the column ever widens.
	g.AccessCode = strings.TrimSpace(code)
	g.Tier = domain.Tier(tier)
	if expiry.Valid {
		t := expiry.Time.UTC()
		g.TrialExpiry = &t
	}

	if err := rows.Err(); err != nil {
		return domain.Group{}, err
	}
	return g, nil
}
