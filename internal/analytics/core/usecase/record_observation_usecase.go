package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"group-analytics-service/internal/analytics/core/domain"
	"group-analytics-service/internal/analytics/core/ports"
)

var ErrInvalidObservation = errors.New("invalid observation")

// RecordObservationUseCase lets external analytics jobs push metrics through
// the same append-only store the ingestion pipeline writes to.
type RecordObservationUseCase struct {
	observations ports.ObservationRepositoryPort
}

func NewRecordObservationUseCase(observations ports.ObservationRepositoryPort) *RecordObservationUseCase {
	return &RecordObservationUseCase{observations: observations}
}

type RecordObservationInput struct {
	GCID       int64
	MetricType string
	Payload    any
}

func (uc *RecordObservationUseCase) Execute(ctx context.Context, in RecordObservationInput) error {
	if in.GCID == 0 || in.Payload == nil {
		return ErrInvalidObservation
	}

	metric, err := domain.ParseMetricType(in.MetricType)
	if err != nil {
		return ErrInvalidObservation
	}

	raw, err := encodePayload(in.Payload)
	if err != nil {
		return ErrInvalidObservation
	}

	return uc.observations.Append(ctx, in.GCID, metric, raw)
}

// Scalars get the {"value":"…"} wrapper; structured payloads are stored
// as-is.
func encodePayload(v any) (json.RawMessage, error) {
	switch v.(type) {
	case string, float64, int, int64, bool:
		return domain.EncodeScalar(v), nil
	default:
		return json.Marshal(v)
	}
}
