package domain

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNoObservation     = errors.New("no observation recorded")
	ErrUnknownMetricType = errors.New("unknown metric type")
)

type MetricType string

const (
	MetricTotalMembers   MetricType = "total_members"
	MetricTotalMessages  MetricType = "total_messages"
	MetricEngagementRate MetricType = "engagement_rate"
	MetricQualityScore   MetricType = "quality_score"
	MetricLeaderboard    MetricType = "leaderboard"
	MetricGCHealth       MetricType = "gc_health"
	MetricHourlyActivity MetricType = "hourly_activity"
	MetricRetention      MetricType = "retention"
	MetricTrendingTopics MetricType = "trending_topics"
)

var metricTypes = map[MetricType]struct{}{
	MetricTotalMembers:   {},
	MetricTotalMessages:  {},
	MetricEngagementRate: {},
	MetricQualityScore:   {},
	MetricLeaderboard:    {},
	MetricGCHealth:       {},
	MetricHourlyActivity: {},
	MetricRetention:      {},
	MetricTrendingTopics: {},
}

func ParseMetricType(s string) (MetricType, error) {
	mt := MetricType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := metricTypes[mt]; !ok {
		return "", ErrUnknownMetricType
	}
	return mt, nil
}

// Observation is one immutable timestamped metric fact. The current value of
// a metric is the payload of the latest observation per (gc_id, metric_type).
type Observation struct {
	GCID       int64
	MetricType MetricType
	Payload    json.RawMessage
	ObservedAt time.Time
}

// scalarWrapper is the stored form of scalar payloads: {"value":"<string>"}.
type scalarWrapper struct {
	Value string `json:"value"`
}

// EncodeScalar wraps a scalar for storage.
func EncodeScalar(v any) json.RawMessage {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case int64:
		s = strconv.FormatInt(x, 10)
	case int:
		s = strconv.Itoa(x)
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	default:
		b, _ := json.Marshal(x)
		s = string(b)
	}
	raw, _ := json.Marshal(scalarWrapper{Value: s})
	return raw
}

// ScalarInt reads a stored scalar as int64. Any shape or parse failure
// yields the default: downstream arithmetic assumes numeric inputs.
func ScalarInt(raw json.RawMessage, def int64) int64 {
	s, ok := scalarString(raw)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Stored floats still count ("12.0" -> 12).
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return def
		}
		return int64(f)
	}
	return n
}

// ScalarFloat reads a stored scalar as float64, defaulting on any failure.
func ScalarFloat(raw json.RawMessage, def float64) float64 {
	s, ok := scalarString(raw)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

func scalarString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var w scalarWrapper
	if err := json.Unmarshal(raw, &w); err == nil && w.Value != "" {
		return w.Value, true
	}
	// Tolerate bare numbers and strings written by external jobs.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}
