package domain

import (
	"testing"
	"time"
)

func TestEffectiveTier_BasicStaysBasic(t *testing.T) {
	g := Group{Tier: TierBasic}
	if got := g.EffectiveTier(time.Now()); got != TierBasic {
		t.Errorf("expected BASIC, got %s", got)
	}
}

func TestEffectiveTier_PremiumWithoutExpiryIsPremium(t *testing.T) {
	g := Group{Tier: TierPremium}
	if got := g.EffectiveTier(time.Now()); got != TierPremium {
		t.Errorf("expected PREMIUM, got %s", got)
	}
}

func TestEffectiveTier_ActiveTrialKeepsTier(t *testing.T) {
	now := time.Now()
	expiry := now.Add(24 * time.Hour)
	g := Group{Tier: TierElite, TrialExpiry: &expiry}

	if got := g.EffectiveTier(now); got != TierElite {
		t.Errorf("expected ELITE, got %s", got)
	}
	if !g.IsPremium(now) {
		t.Error("expected IsPremium=true for active trial")
	}
}

func TestEffectiveTier_LapsedTrialRevertsToBasic(t *testing.T) {
	now := time.Now()
	expiry := now.Add(-time.Minute)
	g := Group{Tier: TierPremium, TrialExpiry: &expiry}

	if got := g.EffectiveTier(now); got != TierBasic {
		t.Errorf("expected BASIC for lapsed trial, got %s", got)
	}
	if g.IsPremium(now) {
		t.Error("expected IsPremium=false for lapsed trial")
	}
}
