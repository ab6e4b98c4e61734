package fiber

import "group-analytics-service/internal/analytics/core/domain"

// SnapshotResponse mirrors the dashboard's expected field set exactly;
// renaming anything here breaks the deployed frontend.
type SnapshotResponse struct {
	Status         string                    `json:"status"`
	ChatID         int64                     `json:"chat_id"`
	IsElite        bool                      `json:"is_elite"`
	Tier           string                    `json:"tier"`
	GroupName      string                    `json:"group_name"`
	TotalMessages  int64                     `json:"total_messages"`
	TotalMembers   int64                     `json:"total_members"`
	EngagementRate float64                   `json:"engagement_rate"`
	QualityScore   float64                   `json:"content_quality_score"`
	GrowthTip      string                    `json:"ai_growth_tip"`
	GCHealth       domain.GCHealth           `json:"gc_health_data"`
	Retention      domain.Retention          `json:"retention_data"`
	HourlyActivity []int64                   `json:"hourly_activity"`
	TrendingTopics []domain.TrendingTopic    `json:"trending_topics"`
	Leaderboard    []domain.LeaderboardEntry `json:"leaderboard"`
	MemberList     any                       `json:"member_list"`
	BadWordTracker any                       `json:"bad_word_tracker"`
}

type LogMessageRequest struct {
	GCID   int64  `json:"gc_id"`
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

type LogMessageResponse struct {
	Status   string `json:"status"`
	NewCount int64  `json:"new_count"`
}

type RecordObservationRequest struct {
	GCID       int64  `json:"gc_id"`
	MetricType string `json:"metric_type"`
	Payload    any    `json:"payload"`
}

type RecordObservationResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Group not registered."`
}
