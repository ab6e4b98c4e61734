package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"group-analytics-service/internal/analytics/core/domain"
	"group-analytics-service/internal/analytics/core/ports"
)

const classifyTimeout = 4 * time.Second

// IngestMessageUseCase handles one message event from the bot-protocol
// layer. It never returns an error: message counting must not block chat
// responsiveness, so every failure is logged and swallowed.
type IngestMessageUseCase struct {
	counters     ports.CounterRepositoryPort
	observations ports.ObservationRepositoryPort
	groups       ports.GroupReaderPort
	classifier   ports.AbuseClassifierPort
	now          func() time.Time
}

func NewIngestMessageUseCase(
	counters ports.CounterRepositoryPort,
	observations ports.ObservationRepositoryPort,
	groups ports.GroupReaderPort,
	classifier ports.AbuseClassifierPort,
) *IngestMessageUseCase {
	return &IngestMessageUseCase{
		counters:     counters,
		observations: observations,
		groups:       groups,
		classifier:   classifier,
		now:          time.Now,
	}
}

// Execute counts the message, appends the new total_messages observation and
// runs the premium abuse check. Returns the new group total (0 when the
// store is unreachable).
func (uc *IngestMessageUseCase) Execute(ctx context.Context, gcID, userID int64, text string) int64 {
	if _, err := uc.counters.IncrementMessage(ctx, gcID, userID); err != nil {
		log.Printf("ingest: message increment failed for gc=%d user=%d: %v", gcID, userID, err)
		return 0
	}

	total, err := uc.counters.TotalMessages(ctx, gcID)
	if err != nil {
		log.Printf("ingest: total read failed for gc=%d: %v", gcID, err)
		total = 0
	}

	if total > 0 {
		payload := domain.EncodeScalar(total)
		if err := uc.observations.Append(ctx, gcID, domain.MetricTotalMessages, payload); err != nil {
			log.Printf("ingest: observation append failed for gc=%d: %v", gcID, err)
		}
	}

	uc.checkAbuse(ctx, gcID, userID, text)

	return total
}

func (uc *IngestMessageUseCase) checkAbuse(ctx context.Context, gcID, userID int64, text string) {
	if uc.classifier == nil || strings.TrimSpace(text) == "" {
		return
	}

	g, err := uc.groups.GetByID(ctx, gcID)
	if err != nil || !g.IsPremium(uc.now()) {
		return
	}

	cctx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	verdict, err := uc.classifier.ClassifyAbuse(cctx, text)
	if err != nil {
		log.Printf("ingest: abuse check failed for gc=%d: %v", gcID, err)
		return
	}
	if !verdict.Flagged {
		return
	}

	log.Printf("ingest: abuse detected in gc=%d by user=%d: %s", gcID, userID, verdict.Reason)
	if _, err := uc.counters.IncrementAbuse(ctx, gcID, userID); err != nil {
		log.Printf("ingest: abuse increment failed for gc=%d user=%d: %v", gcID, userID, err)
	}
}
