package postgres

import (
	"context"

	"group-analytics-service/internal/complaints/core/domain"
	"group-analytics-service/internal/complaints/core/ports"
)

type ComplaintRepository struct {
	db DB
}

func NewComplaintRepository(db DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

var _ ports.ComplaintRepositoryPort = (*ComplaintRepository)(nil)

const insertComplaintSQL = `
INSERT INTO complaints (gc_id, complainer_id, complaint_text, is_abusive, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6);
`

func (r *ComplaintRepository) Insert(ctx context.Context, c *domain.Complaint) error {
	_, err := r.db.ExecContext(ctx, insertComplaintSQL,
		c.GCID,
		c.ComplainerID,
		c.Text,
		c.IsAbusive,
		string(c.Status),
		c.CreatedAt,
	)
	return err
}
