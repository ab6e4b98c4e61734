package domain

import (
	"errors"
	"time"
)

var ErrGroupNotFound = errors.New("group not found")

type Tier string

const (
	TierBasic   Tier = "BASIC"
	TierPremium Tier = "PREMIUM"
	TierElite   Tier = "ELITE"
)

// Group is one registered chat community. GCID keeps the sign delivered by
// the bot platform (negative for group chats); the dashboard always works
// with the absolute form.
type Group struct {
	GCID        int64
	OwnerID     int64
	AccessCode  string
	Name        string
	Tier        Tier
	TrialExpiry *time.Time
}

// EffectiveTier treats a lapsed trial as BASIC regardless of the stored tier.
// Every read path uses this instead of trusting the tier column.
func (g Group) EffectiveTier(now time.Time) Tier {
	switch g.Tier {
	case TierPremium, TierElite:
		if g.TrialExpiry == nil || g.TrialExpiry.After(now) {
			return g.Tier
		}
		return TierBasic
	default:
		return TierBasic
	}
}

func (g Group) IsPremium(now time.Time) bool {
	t := g.EffectiveTier(now)
	return t == TierPremium || t == TierElite
}
