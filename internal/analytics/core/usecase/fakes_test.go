package usecase_test

import (
	"context"
	"encoding/json"

	"group-analytics-service/internal/analytics/core/domain"
	"group-analytics-service/internal/analytics/core/ports"
	registry "group-analytics-service/internal/registry/core/domain"
)

// fakeCounterRepo fakes CounterRepositoryPort.
type fakeCounterRepo struct {
	IncrementMessageFn func(ctx context.Context, gcID, userID int64) (int64, error)
	IncrementAbuseFn   func(ctx context.Context, gcID, userID int64) (int64, error)
	MessageCountsFn    func(ctx context.Context, gcID int64) (map[int64]int64, error)
	AbuseCountsFn      func(ctx context.Context, gcID int64) (map[int64]int64, error)
	TotalMessagesFn    func(ctx context.Context, gcID int64) (int64, error)

	abuseIncrements int
}

func (f *fakeCounterRepo) IncrementMessage(ctx context.Context, gcID, userID int64) (int64, error) {
	if f.IncrementMessageFn != nil {
		return f.IncrementMessageFn(ctx, gcID, userID)
	}
	return 1, nil
}

func (f *fakeCounterRepo) IncrementAbuse(ctx context.Context, gcID, userID int64) (int64, error) {
	f.abuseIncrements++
	if f.IncrementAbuseFn != nil {
		return f.IncrementAbuseFn(ctx, gcID, userID)
	}
	return 1, nil
}

func (f *fakeCounterRepo) MessageCounts(ctx context.Context, gcID int64) (map[int64]int64, error) {
	if f.MessageCountsFn != nil {
		return f.MessageCountsFn(ctx, gcID)
	}
	return map[int64]int64{}, nil
}

func (f *fakeCounterRepo) AbuseCounts(ctx context.Context, gcID int64) (map[int64]int64, error) {
	if f.AbuseCountsFn != nil {
		return f.AbuseCountsFn(ctx, gcID)
	}
	return map[int64]int64{}, nil
}

func (f *fakeCounterRepo) TotalMessages(ctx context.Context, gcID int64) (int64, error) {
	if f.TotalMessagesFn != nil {
		return f.TotalMessagesFn(ctx, gcID)
	}
	return 0, nil
}

// fakeObservationRepo fakes ObservationRepositoryPort.
type fakeObservationRepo struct {
	AppendFn     func(ctx context.Context, gcID int64, metric domain.MetricType, payload json.RawMessage) error
	LatestFn     func(ctx context.Context, gcID int64, metric domain.MetricType) (json.RawMessage, error)
	LatestManyFn func(ctx context.Context, gcID int64, metrics []domain.MetricType) (map[domain.MetricType]json.RawMessage, error)

	appended []domain.Observation
}

func (f *fakeObservationRepo) Append(ctx context.Context, gcID int64, metric domain.MetricType, payload json.RawMessage) error {
	f.appended = append(f.appended, domain.Observation{GCID: gcID, MetricType: metric, Payload: payload})
	if f.AppendFn != nil {
		return f.AppendFn(ctx, gcID, metric, payload)
	}
	return nil
}

func (f *fakeObservationRepo) Latest(ctx context.Context, gcID int64, metric domain.MetricType) (json.RawMessage, error) {
	if f.LatestFn != nil {
		return f.LatestFn(ctx, gcID, metric)
	}
	return nil, domain.ErrNoObservation
}

func (f *fakeObservationRepo) LatestMany(ctx context.Context, gcID int64, metrics []domain.MetricType) (map[domain.MetricType]json.RawMessage, error) {
	if f.LatestManyFn != nil {
		return f.LatestManyFn(ctx, gcID, metrics)
	}
	return map[domain.MetricType]json.RawMessage{}, nil
}

// fakeGroupReader fakes GroupReaderPort.
type fakeGroupReader struct {
	GetByIDFn func(ctx context.Context, gcID int64) (registry.Group, error)
}

func (f *fakeGroupReader) GetByID(ctx context.Context, gcID int64) (registry.Group, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, gcID)
	}
	return registry.Group{}, registry.ErrGroupNotFound
}

// fakeClassifier fakes AbuseClassifierPort.
type fakeClassifier struct {
	ClassifyAbuseFn func(ctx context.Context, text string) (ports.AbuseVerdict, error)

	calls int
}

func (f *fakeClassifier) ClassifyAbuse(ctx context.Context, text string) (ports.AbuseVerdict, error) {
	f.calls++
	if f.ClassifyAbuseFn != nil {
		return f.ClassifyAbuseFn(ctx, text)
	}
	return ports.AbuseVerdict{}, nil
}

// fakeTipper fakes GrowthTipPort.
type fakeTipper struct {
	GrowthTipFn func(ctx context.Context, summary string) (string, error)

	lastSummary string
}

func (f *fakeTipper) GrowthTip(ctx context.Context, summary string) (string, error) {
	f.lastSummary = summary
	if f.GrowthTipFn != nil {
		return f.GrowthTipFn(ctx, summary)
	}
	return "", nil
}
