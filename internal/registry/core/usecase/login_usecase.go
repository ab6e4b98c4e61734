package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"group-analytics-service/internal/registry/core/domain"
	"group-analytics-service/internal/registry/core/ports"
)

var (
	ErrInvalidCode = errors.New("invalid code format")
	ErrUnknownCode = errors.New("unknown access code")
)

type LoginUseCase struct {
	repo ports.GroupRepositoryPort
	now  func() time.Time
}

func NewLoginUseCase(repo ports.GroupRepositoryPort) *LoginUseCase {
	return &LoginUseCase{repo: repo, now: time.Now}
}

type LoginResult struct {
	GCID      int64
	GroupName string
	Tier      domain.Tier
}

// Execute validates a dashboard login code. Codes are matched
// case-insensitively after trimming whitespace; the stored form is
// uppercase.
func (uc *LoginUseCase) Execute(ctx context.Context, code string) (LoginResult, error) {
	normalized := normalizeCode(code)
	if len(normalized) != 6 {
		return LoginResult{}, ErrInvalidCode
	}

	g, err := uc.repo.GetByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, domain.ErrGroupNotFound) {
			return LoginResult{}, ErrUnknownCode
		}
		return LoginResult{}, err
	}

	return LoginResult{
		GCID:      g.GCID,
		GroupName: g.Name,
		Tier:      g.EffectiveTier(uc.now()),
	}, nil
}

// Resolve maps an access code to the dashboard-facing absolute group id.
// No length gate here: the original resolver accepted any trimmed code.
func (uc *LoginUseCase) Resolve(ctx context.Context, code string) (int64, error) {
	g, err := uc.repo.GetByCode(ctx, normalizeCode(code))
	if err != nil {
		if errors.Is(err, domain.ErrGroupNotFound) {
			return 0, ErrUnknownCode
		}
		return 0, err
	}

	id := g.GCID
	if id < 0 {
		id = -id
	}
	return id, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
