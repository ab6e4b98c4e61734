package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"time"

	"group-analytics-service/internal/registry/core/domain"
	"group-analytics-service/internal/registry/core/ports"
)

var ErrInvalidRegistration = errors.New("invalid registration")

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6

	// Bounded retries when a freshly generated code collides with an
	// existing row's unique constraint.
	maxCodeAttempts = 5
)

type RegisterGroupUseCase struct {
	repo      ports.GroupRepositoryPort
	trialDays int
	now       func() time.Time
}

func NewRegisterGroupUseCase(repo ports.GroupRepositoryPort, trialDays int) *RegisterGroupUseCase {
	if trialDays <= 0 {
		trialDays = 3
	}
	return &RegisterGroupUseCase{repo: repo, trialDays: trialDays, now: time.Now}
}

type RegisterGroupInput struct {
	GCID      int64
	OwnerID   int64
	GroupName string
	Tier      domain.Tier // empty -> PREMIUM trial
	TrialDays int         // <= 0 -> configured default
}

// Execute registers (or re-registers) a group and returns its dashboard
// access code. Re-registering regenerates the code but keeps one row per
// gc_id.
func (uc *RegisterGroupUseCase) Execute(ctx context.Context, in RegisterGroupInput) (string, error) {
	if in.GCID == 0 || in.OwnerID == 0 || in.GroupName == "" {
		return "", ErrInvalidRegistration
	}

	tier := in.Tier
	if tier == "" {
		tier = domain.TierPremium
	}
	days := in.TrialDays
	if days <= 0 {
		days = uc.trialDays
	}

	var expiry *time.Time
	if (tier == domain.TierPremium || tier == domain.TierElite) && days > 0 {
		e := uc.now().Add(time.Duration(days) * 24 * time.Hour)
		expiry = &e
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := generateAccessCode()
		if err != nil {
			return "", err
		}

		g := &domain.Group{
			GCID:        in.GCID,
			OwnerID:     in.OwnerID,
			AccessCode:  code,
			Name:        in.GroupName,
			Tier:        tier,
			TrialExpiry: expiry,
		}

		err = uc.repo.Upsert(ctx, g)
		if err == nil {
			return code, nil
		}
		if errors.Is(err, ports.ErrCodeConflict) {
			continue
		}
		return "", err
	}

	return "", ports.ErrCodeConflict
}

func generateAccessCode() (string, error) {
	b := make([]byte, codeLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
	}
	return string(b), nil
}
