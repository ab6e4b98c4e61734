package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"time"

	"group-analytics-service/internal/analytics/core/domain"
	"group-analytics-service/internal/analytics/core/ports"
	registry "group-analytics-service/internal/registry/core/domain"
)

var ErrNotRegistered = errors.New("group not registered")

const (
	tipTimeout = 5 * time.Second

	upgradeTip  = "Upgrade to ELITE for AI-powered Growth Tips and Moderation Advice!"
	fallbackTip = "AI Tip generation failed due to a service error."
)

// GetSnapshotUseCase assembles the full dashboard read-model for one group.
type GetSnapshotUseCase struct {
	groups       ports.GroupReaderPort
	counters     ports.CounterRepositoryPort
	observations ports.ObservationRepositoryPort
	tipper       ports.GrowthTipPort
	now          func() time.Time
}

func NewGetSnapshotUseCase(
	groups ports.GroupReaderPort,
	counters ports.CounterRepositoryPort,
	observations ports.ObservationRepositoryPort,
	tipper ports.GrowthTipPort,
) *GetSnapshotUseCase {
	return &GetSnapshotUseCase{
		groups:       groups,
		counters:     counters,
		observations: observations,
		tipper:       tipper,
		now:          time.Now,
	}
}

var scalarMetrics = []domain.MetricType{
	domain.MetricTotalMessages,
	domain.MetricTotalMembers,
	domain.MetricQualityScore,
}

func (uc *GetSnapshotUseCase) Execute(ctx context.Context, gcID int64) (*domain.Snapshot, error) {
	g, err := uc.groups.GetByID(ctx, gcID)
	if err != nil {
		if errors.Is(err, registry.ErrGroupNotFound) {
			return nil, ErrNotRegistered
		}
		return nil, err
	}

	now := uc.now()
	tier := g.EffectiveTier(now)
	isPremium := g.IsPremium(now)

	scalars, err := uc.observations.LatestMany(ctx, g.GCID, scalarMetrics)
	if err != nil {
		return nil, err
	}

	totalMessages := domain.ScalarInt(scalars[domain.MetricTotalMessages], 0)
	totalMembers := domain.ScalarInt(scalars[domain.MetricTotalMembers], 0)
	qualityScore := domain.ScalarFloat(scalars[domain.MetricQualityScore], 0)

	var engagement float64
	if totalMembers > 0 {
		engagement = round2(float64(totalMessages) / float64(totalMembers) * 100)
	}

	counts, err := uc.counters.MessageCounts(ctx, g.GCID)
	if err != nil {
		return nil, err
	}
	leaderboard := buildLeaderboard(counts, 10)

	snap := &domain.Snapshot{
		GCID:           g.GCID,
		GroupName:      g.Name,
		Tier:           tier,
		IsPremium:      isPremium,
		TotalMessages:  totalMessages,
		TotalMembers:   totalMembers,
		EngagementRate: engagement,
		QualityScore:   qualityScore,
		Leaderboard:    leaderboard,
		GCHealth:       domain.DefaultGCHealth(),
		HourlyActivity: domain.DefaultHourlyActivity(),
		Retention:      domain.DefaultRetention(),
		TrendingTopics: []domain.TrendingTopic{},
	}

	uc.fillCharts(ctx, g.GCID, snap)
	snap.GrowthTip = uc.growthTip(ctx, isPremium, snap)

	if isPremium {
		snap.MemberList = memberList(counts)
		snap.BadWordTracker = uc.badWordTracker(ctx, g.GCID)
	} else {
		snap.MemberList = domain.MemberListLocked
		snap.BadWordTracker = domain.BadWordTrackerLocked
	}

	return snap, nil
}

// fillCharts replaces the chart defaults with stored observations where they
// exist. Unreadable payloads keep the defaults.
func (uc *GetSnapshotUseCase) fillCharts(ctx context.Context, gcID int64, snap *domain.Snapshot) {
	if raw := uc.latest(ctx, gcID, domain.MetricGCHealth); raw != nil {
		var h domain.GCHealth
		if json.Unmarshal(raw, &h) == nil {
			snap.GCHealth = h
		}
	}
	if raw := uc.latest(ctx, gcID, domain.MetricHourlyActivity); raw != nil {
		var hours []int64
		if json.Unmarshal(raw, &hours) == nil && len(hours) > 0 {
			snap.HourlyActivity = hours
		}
	}
	if raw := uc.latest(ctx, gcID, domain.MetricRetention); raw != nil {
		var r domain.Retention
		if json.Unmarshal(raw, &r) == nil {
			snap.Retention = r
		}
	}
	if raw := uc.latest(ctx, gcID, domain.MetricTrendingTopics); raw != nil {
		var topics []domain.TrendingTopic
		if json.Unmarshal(raw, &topics) == nil {
			snap.TrendingTopics = topics
		}
	}
}

func (uc *GetSnapshotUseCase) latest(ctx context.Context, gcID int64, metric domain.MetricType) json.RawMessage {
	raw, err := uc.observations.Latest(ctx, gcID, metric)
	if err != nil {
		if !errors.Is(err, domain.ErrNoObservation) {
			log.Printf("snapshot: latest %s read failed for gc=%d: %v", metric, gcID, err)
		}
		return nil
	}
	return raw
}

func (uc *GetSnapshotUseCase) growthTip(ctx context.Context, isPremium bool, snap *domain.Snapshot) string {
	if !isPremium {
		return upgradeTip
	}
	if uc.tipper == nil {
		return fallbackTip
	}

	summary := fmt.Sprintf("Total messages: %d, Engagement: %.2f%%, Content Score: %.1f/10.",
		snap.TotalMessages, snap.EngagementRate, snap.QualityScore)

	tctx, cancel := context.WithTimeout(ctx, tipTimeout)
	defer cancel()

	tip, err := uc.tipper.GrowthTip(tctx, summary)
	if err != nil || tip == "" {
		log.Printf("snapshot: growth tip failed for gc=%d: %v", snap.GCID, err)
		return fallbackTip
	}
	return tip
}

func (uc *GetSnapshotUseCase) badWordTracker(ctx context.Context, gcID int64) map[string]int64 {
	counts, err := uc.counters.AbuseCounts(ctx, gcID)
	if err != nil {
		log.Printf("snapshot: abuse counts read failed for gc=%d: %v", gcID, err)
		return map[string]int64{}
	}
	tracker := make(map[string]int64, len(counts))
	for userID, n := range counts {
		tracker[strconv.FormatInt(userID, 10)] = n
	}
	return tracker
}

// buildLeaderboard orders users by count descending with ascending user id
// as the tie-break, truncated to limit.
func buildLeaderboard(counts map[int64]int64, limit int) []domain.LeaderboardEntry {
	entries := make([]domain.LeaderboardEntry, 0, len(counts))
	for userID, n := range counts {
		entries = append(entries, domain.LeaderboardEntry{
			UserID:   userID,
			Name:     displayName(userID),
			Messages: n,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Messages != entries[j].Messages {
			return entries[i].Messages > entries[j].Messages
		}
		return entries[i].UserID < entries[j].UserID
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func memberList(counts map[int64]int64) []domain.MemberDetail {
	board := buildLeaderboard(counts, len(counts))
	members := make([]domain.MemberDetail, 0, len(board))
	for _, e := range board {
		members = append(members, domain.MemberDetail{
			UserID:   e.UserID,
			Name:     e.Name,
			Messages: e.Messages,
		})
	}
	return members
}

// displayName falls back to the last four digits of the user id; the bot
// platform does not hand profile names to this service.
func displayName(userID int64) string {
	s := strconv.FormatInt(userID, 10)
	if len(s) > 4 {
		s = s[len(s)-4:]
	}
	return "User " + s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
