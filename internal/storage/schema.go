package storage

import (
	"context"
	"database/sql"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS groups (
    gc_id BIGINT PRIMARY KEY,
    owner_id BIGINT NOT NULL,
    login_code CHAR(6) UNIQUE NOT NULL,
    group_name VARCHAR(255) NOT NULL,
    tier VARCHAR(50) DEFAULT 'BASIC',
    premium_expiry TIMESTAMPTZ NULL
);

CREATE TABLE IF NOT EXISTS metric_observations (
    id BIGSERIAL PRIMARY KEY,
    gc_id BIGINT NOT NULL,
    observed_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    metric_type VARCHAR(100) NOT NULL,
    payload JSONB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_observations_latest
    ON metric_observations (gc_id, metric_type, observed_at DESC);

CREATE TABLE IF NOT EXISTS user_counters (
    gc_id BIGINT NOT NULL,
    user_id BIGINT NOT NULL,
    kind VARCHAR(20) NOT NULL,
    count BIGINT NOT NULL DEFAULT 0,
    PRIMARY KEY (gc_id, user_id, kind)
);

CREATE TABLE IF NOT EXISTS complaints (
    id BIGSERIAL PRIMARY KEY,
    gc_id BIGINT NOT NULL,
    complainer_id BIGINT,
    complaint_text TEXT NOT NULL,
    is_abusive BOOLEAN DEFAULT FALSE,
    status VARCHAR(50) DEFAULT 'OPEN',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// InitSchema creates the tables on the active instance. Statements are
// idempotent so startup against an already-initialized database is a no-op.
func InitSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}
