package domain

import registry "group-analytics-service/internal/registry/core/domain"

// Sentinel values substituted for tier-gated fields on non-premium groups.
const (
	MemberListLocked     = "PREMIUM_LOCKED"
	BadWordTrackerLocked = "LOCKED"
)

type LeaderboardEntry struct {
	UserID   int64  `json:"id"`
	Name     string `json:"name"`
	Messages int64  `json:"messages"`
}

type MemberDetail struct {
	UserID   int64  `json:"id"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"is_admin"`
	Messages int64  `json:"messages"`
}

type GCHealth struct {
	Labels []string `json:"labels"`
	Joins  []int64  `json:"joins"`
	Leaves []int64  `json:"leaves"`
}

type Retention struct {
	Labels        []string  `json:"labels"`
	RetentionRate []float64 `json:"retention_rate"`
	ChurnRate     []float64 `json:"churn_rate"`
}

type TrendingTopic struct {
	Topic      string  `json:"topic"`
	Percentage float64 `json:"percentage"`
}

// Snapshot is the full assembled dashboard read-model for one group.
// MemberList and BadWordTracker hold either real data or a locked sentinel
// string depending on the effective tier.
type Snapshot struct {
	GCID           int64
	GroupName      string
	Tier           registry.Tier
	IsPremium      bool
	TotalMessages  int64
	TotalMembers   int64
	EngagementRate float64
	QualityScore   float64
	GrowthTip      string
	Leaderboard    []LeaderboardEntry
	GCHealth       GCHealth
	HourlyActivity []int64
	Retention      Retention
	TrendingTopics []TrendingTopic
	MemberList     any
	BadWordTracker any
}

// DefaultHourlyActivity is the chart default when no observation exists:
// one zeroed bucket per hour of day.
func DefaultHourlyActivity() []int64 {
	return make([]int64, 24)
}

func DefaultGCHealth() GCHealth {
	return GCHealth{Labels: []string{}, Joins: []int64{}, Leaves: []int64{}}
}

func DefaultRetention() Retention {
	return Retention{Labels: []string{}, RetentionRate: []float64{}, ChurnRate: []float64{}}
}
