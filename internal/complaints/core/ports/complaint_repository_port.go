package ports

import (
	"context"

	analyticsports "group-analytics-service/internal/analytics/core/ports"
	"group-analytics-service/internal/complaints/core/domain"
)

type ComplaintRepositoryPort interface {
	Insert(ctx context.Context, c *domain.Complaint) error
}

// AbuseClassifierPort is the same collaborator contract the ingestion
// pipeline uses.
type AbuseClassifierPort = analyticsports.AbuseClassifierPort
