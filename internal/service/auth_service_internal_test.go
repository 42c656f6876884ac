package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexedwards/argon2id"

	"github.com/stayloop/hotel-bookings/internal/domain"
	"github.com/stayloop/hotel-bookings/pkg/config"
)

type fixedUserRepo struct {
	user *domain.User
}

func (r *fixedUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *fixedUserRepo) FindByEmailOrPhone(_ context.Context, loginID string) (*domain.User, error) {
	if r.user != nil && (r.user.Email == loginID || r.user.Phone == loginID) {
		return r.user, nil
	}
	return nil, nil
}

func (r *fixedUserRepo) FindByID(context.Context, int64) (*domain.User, error) { return nil, nil }

func (r *fixedUserRepo) CountByRole(context.Context, domain.Role) (int64, error) { return 0, nil }

func (r *fixedUserRepo) ListByRole(context.Context, domain.Role, int, int) ([]domain.User, error) {
	return nil, nil
}

// Both login failure paths must cost exactly one argon2id comparison: a
// skipped comparison on the unknown-identifier path would let response time
// reveal whether an identifier exists.
func TestLoginFailurePathsCostOneComparison(t *testing.T) {
	calls := 0
	orig := comparePasswordAndHash
	comparePasswordAndHash = func(password, hash string) (bool, error) {
		calls++
		return orig(password, hash)
	}
	defer func() { comparePasswordAndHash = orig }()

	hash, err := argon2id.CreateHash("correct-horse", argon2id.DefaultParams)
	if err != nil {
		t.Fatalf("CreateHash: %v", err)
	}
	repo := &fixedUserRepo{user: &domain.User{
		ID:           1,
		Role:         domain.RoleGuest,
		Email:        "ada@example.com",
		Phone:        "+1 555 0100",
		PasswordHash: hash,
	}}
	svc := NewAuthService(repo, nil, nil, nil, &config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", SessionTokenTTL: time.Hour},
	})
	ctx := context.Background()

	calls = 0
	_, err = svc.Login(ctx, &domain.LoginRequest{LoginID: "nobody@example.com", Password: "whatever"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown identifier: err = %v, want ErrInvalidCredentials", err)
	}
	if calls != 1 {
		t.Errorf("unknown identifier: comparisons = %d, want 1", calls)
	}

	calls = 0
	_, err = svc.Login(ctx, &domain.LoginRequest{LoginID: "ada@example.com", Password: "wrong-password"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if calls != 1 {
		t.Errorf("wrong password: comparisons = %d, want 1", calls)
	}
}
