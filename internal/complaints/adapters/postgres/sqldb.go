package postgres

import (
	"context"
	"database/sql"

	"group-analytics-service/internal/storage"
)

type sqlDB struct {
	pool *storage.Pool
}

func NewSQLDB(pool *storage.Pool) DB {
	return &sqlDB{pool: pool}
}

func (s *sqlDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	db, err := s.pool.DB(ctx)
	if err != nil {
		return nil, err
	}
	return db.ExecContext(ctx, query, args...)
}
