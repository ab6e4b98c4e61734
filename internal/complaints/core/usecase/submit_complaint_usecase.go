package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"group-analytics-service/internal/complaints/core/domain"
	"group-analytics-service/internal/complaints/core/ports"
)

var ErrInvalidComplaint = errors.New("missing GC ID or complaint text")

const classifyTimeout = 4 * time.Second

type SubmitComplaintUseCase struct {
	repo       ports.ComplaintRepositoryPort
	classifier ports.AbuseClassifierPort
	now        func() time.Time
}

func NewSubmitComplaintUseCase(repo ports.ComplaintRepositoryPort, classifier ports.AbuseClassifierPort) *SubmitComplaintUseCase {
	return &SubmitComplaintUseCase{repo: repo, classifier: classifier, now: time.Now}
}

type SubmitComplaintInput struct {
	GCID         int64
	ComplainerID int64
	Text         string
}

// Execute records one complaint, flagging abusive text at submission time.
// A classifier failure degrades to not-abusive; a store failure is surfaced
// because the submitter expects confirmation.
func (uc *SubmitComplaintUseCase) Execute(ctx context.Context, in SubmitComplaintInput) (bool, error) {
	text := strings.TrimSpace(in.Text)
	if in.GCID == 0 || text == "" {
		return false, ErrInvalidComplaint
	}

	isAbusive := false
	if uc.classifier != nil {
		cctx, cancel := context.WithTimeout(ctx, classifyTimeout)
		verdict, err := uc.classifier.ClassifyAbuse(cctx, text)
		cancel()
		if err != nil {
			log.Printf("complaint: abuse check failed for gc=%d: %v", in.GCID, err)
		} else {
			isAbusive = verdict.Flagged
		}
	}

	c := &domain.Complaint{
		GCID:         in.GCID,
		ComplainerID: in.ComplainerID,
		Text:         text,
		IsAbusive:    isAbusive,
		Status:       domain.StatusOpen,
		CreatedAt:    uc.now().UTC(),
	}
	if err := uc.repo.Insert(ctx, c); err != nil {
		return false, err
	}

	return isAbusive, nil
}
