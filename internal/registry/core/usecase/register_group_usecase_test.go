package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"group-analytics-service/internal/registry/core/domain"
	"group-analytics-service/internal/registry/core/ports"
	"group-analytics-service/internal/registry/core/usecase"
)

// fakeGroupRepo fakes GroupRepositoryPort.
type fakeGroupRepo struct {
	UpsertFn    func(ctx context.Context, g *domain.Group) error
	GetByCodeFn func(ctx context.Context, code string) (domain.Group, error)
	GetByIDFn   func(ctx context.Context, gcID int64) (domain.Group, error)

	upserted []*domain.Group
}

func (f *fakeGroupRepo) Upsert(ctx context.Context, g *domain.Group) error {
	f.upserted = append(f.upserted, g)
	if f.UpsertFn != nil {
		return f.UpsertFn(ctx, g)
	}
	return nil
}

func (f *fakeGroupRepo) GetByCode(ctx context.Context, code string) (domain.Group, error) {
	if f.GetByCodeFn != nil {
		return f.GetByCodeFn(ctx, code)
	}
	return domain.Group{}, domain.ErrGroupNotFound
}

func (f *fakeGroupRepo) GetByID(ctx context.Context, gcID int64) (domain.Group, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, gcID)
	}
	return domain.Group{}, domain.ErrGroupNotFound
}

func validInput() usecase.RegisterGroupInput {
	return usecase.RegisterGroupInput{
		GCID:      -1003043341331,
		OwnerID:   12345678,
		GroupName: "Pro Analytics Hub",
	}
}

func TestRegister_Success(t *testing.T) {
	repo := &fakeGroupRepo{}
	uc := usecase.NewRegisterGroupUseCase(repo, 3)

	code, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(code) != 6 {
		t.Fatalf("expected 6-char code, got %q", code)
	}
	for _, r := range code {
		if !(r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			t.Fatalf("unexpected character %q in code %q", r, code)
		}
	}

	if len(repo.upserted) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(repo.upserted))
	}
	g := repo.upserted[0]
	if g.Tier != domain.TierPremium {
		t.Errorf("expected default PREMIUM tier, got %s", g.Tier)
	}
	if g.TrialExpiry == nil {
		t.Fatal("expected trial expiry to be set")
	}
	want := time.Now().Add(3 * 24 * time.Hour)
	if diff := g.TrialExpiry.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Errorf("trial expiry not ~3 days out: %v", g.TrialExpiry)
	}
}

func TestRegister_ValidationErrors(t *testing.T) {
	uc := usecase.NewRegisterGroupUseCase(&fakeGroupRepo{}, 3)

	cases := []struct {
		name string
		mod  func(*usecase.RegisterGroupInput)
	}{
		{"missing gc_id", func(in *usecase.RegisterGroupInput) { in.GCID = 0 }},
		{"missing owner_id", func(in *usecase.RegisterGroupInput) { in.OwnerID = 0 }},
		{"missing name", func(in *usecase.RegisterGroupInput) { in.GroupName = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mod(&in)
			_, err := uc.Execute(context.Background(), in)
			if !errors.Is(err, usecase.ErrInvalidRegistration) {
				t.Fatalf("expected ErrInvalidRegistration, got %v", err)
			}
		})
	}
}

func TestRegister_TwiceRegeneratesCode(t *testing.T) {
	repo := &fakeGroupRepo{}
	uc := usecase.NewRegisterGroupUseCase(repo, 3)

	code1, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	code2, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 36^6 combinations: a collision here means the generator is broken.
	if code1 == code2 {
		t.Errorf("expected a fresh code on re-register, got %q twice", code1)
	}
	// Both writes target the same gc_id, so the store keeps one row.
	if repo.upserted[0].GCID != repo.upserted[1].GCID {
		t.Error("expected both upserts keyed by the same gc_id")
	}
}

func TestRegister_RetriesOnCodeConflict(t *testing.T) {
	attempts := 0
	repo := &fakeGroupRepo{
		UpsertFn: func(ctx context.Context, g *domain.Group) error {
			attempts++
			if attempts < 3 {
				return ports.ErrCodeConflict
			}
			return nil
		},
	}
	uc := usecase.NewRegisterGroupUseCase(repo, 3)

	code, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code == "" {
		t.Fatal("expected a code after retries")
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestRegister_GivesUpAfterMaxConflicts(t *testing.T) {
	repo := &fakeGroupRepo{
		UpsertFn: func(ctx context.Context, g *domain.Group) error {
			return ports.ErrCodeConflict
		},
	}
	uc := usecase.NewRegisterGroupUseCase(repo, 3)

	_, err := uc.Execute(context.Background(), validInput())
	if !errors.Is(err, ports.ErrCodeConflict) {
		t.Fatalf("expected ErrCodeConflict, got %v", err)
	}
}

func TestRegister_ConfiguredTrialLength(t *testing.T) {
	repo := &fakeGroupRepo{}
	uc := usecase.NewRegisterGroupUseCase(repo, 7)

	if _, err := uc.Execute(context.Background(), validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g := repo.upserted[0]
	if g.TrialExpiry == nil {
		t.Fatal("expected trial expiry to be set")
	}
	want := time.Now().Add(7 * 24 * time.Hour)
	if diff := g.TrialExpiry.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Errorf("trial expiry not ~7 days out: %v", g.TrialExpiry)
	}
}

func TestRegister_RepoErrorPropagates(t *testing.T) {
	dbErr := errors.New("db error")
	repo := &fakeGroupRepo{
		UpsertFn: func(ctx context.Context, g *domain.Group) error { return dbErr },
	}
	uc := usecase.NewRegisterGroupUseCase(repo, 3)

	_, err := uc.Execute(context.Background(), validInput())
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected db error, got %v", err)
	}
}
