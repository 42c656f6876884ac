package service

import (
	"context"
	"fmt"

	"github.com/alexedwards/argon2id"

	"github.com/stayloop/hotel-bookings/internal/domain"
	"github.com/stayloop/hotel-bookings/internal/mailer"
	"github.com/stayloop/hotel-bookings/internal/repo/postgres"
	"github.com/stayloop/hotel-bookings/pkg/auth"
	"github.com/stayloop/hotel-bookings/pkg/config"
	"github.com/stayloop/hotel-bookings/pkg/events"
	"github.com/stayloop/hotel-bookings/pkg/logger"
)

type AuthService interface {
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error)
	CreateSuperAdmin(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error)
	CreateHotelAdmin(ctx context.Context, req *domain.CreateHotelAdminRequest) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	ListGuests(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type authService struct {
	userRepo  postgres.UserRepo
	hotelRepo postgres.HotelRepo
	mailer    mailer.Service
	eventBus  events.Publisher
	config    *config.Config
}

func NewAuthService(
	userRepo postgres.UserRepo,
	hotelRepo postgres.HotelRepo,
	mailer mailer.Service,
	eventBus events.Publisher,
	config *config.Config,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		hotelRepo: hotelRepo,
		mailer:    mailer,
		eventBus:  eventBus,
		config:    config,
	}
}

// dummyHash is compared against when the login identifier is unknown, so the
// failure path costs one argon2id verification either way.
var dummyHash string

func init() {
	dummyHash, _ = argon2id.CreateHash("not-a-real-password", argon2id.DefaultParams)
}

// comparePasswordAndHash is a seam so tests can observe the comparison count.
var comparePasswordAndHash = argon2id.ComparePasswordAndHash

func (s *authService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.create(ctx, req, domain.RoleGuest, nil)
	if err != nil {
		return nil, err
	}

	if err := s.eventBus.Publish(ctx, events.UserRegistered, events.UserRegisteredEvent{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish user.registered", "error", err, "user_id", user.ID)
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmailOrPhone(ctx, req.LoginID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		// Burn a hash comparison so unknown identifiers are not
		// distinguishable from wrong passwords by response time.
		_, _ = comparePasswordAndHash(req.Password, dummyHash)
		return nil, domain.ErrInvalidCredentials
	}

	valid, err := comparePasswordAndHash(req.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := auth.NewSessionToken(
		user.ID,
		string(user.Role),
		user.HotelID,
		s.config.Auth.JWTSecret,
		s.config.Auth.SessionTokenTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session token: %w", err)
	}

	return &domain.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.config.Auth.SessionTokenTTL.Seconds()),
		User:      user.ToUserInfo(),
	}, nil
}

// CreateSuperAdmin is the one-time bootstrap: it succeeds only while no
// super-admin exists. The count check gives a clean conflict up front; the
// partial unique index on users(role) settles concurrent attempts.
func (s *authService) CreateSuperAdmin(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	n, err := s.userRepo.CountByRole(ctx, domain.RoleSuperAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to count super admins: %w", err)
	}
	if n > 0 {
		return nil, fmt.Errorf("%w: super admin already exists", domain.ErrConflict)
	}

	return s.create(ctx, req, domain.RoleSuperAdmin, nil)
}

func (s *authService) CreateHotelAdmin(ctx context.Context, req *domain.CreateHotelAdminRequest) (*domain.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hotel, err := s.hotelRepo.GetByID(ctx, req.HotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to find hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel", domain.ErrNotFound)
	}

	reg := &domain.RegisterRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Country:   req.Country,
		Password:  req.Password,
	}
	user, err := s.create(ctx, reg, domain.RoleHotelAdmin, &req.HotelID)
	if err != nil {
		return nil, err
	}

	if err := s.eventBus.Publish(ctx, events.HotelAdminCreated, events.HotelAdminCreatedEvent{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.FullName(),
		HotelID:   hotel.ID,
		HotelName: hotel.Name,
		CreatedAt: user.CreatedAt,
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish hotel admin event", "error", err, "user_id", user.ID)
	}

	if err := s.mailer.SendHotelAdminWelcome(user.Email, user.FullName(), hotel.Name); err != nil {
		// Mail failures never fail the creation
		logger.WarnContext(ctx, "Failed to send hotel admin welcome email", "error", err, "user_id", user.ID)
	}

	return user, nil
}

func (s *authService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", domain.ErrNotFound)
	}
	return user, nil
}

func (s *authService) ListGuests(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.ListByRole(ctx, domain.RoleGuest, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// create hashes the password and inserts the identity. Email, phone and
// single-super-admin uniqueness are left to the store; a duplicate surfaces
// as domain.ErrConflict.
func (s *authService) create(ctx context.Context, req *domain.RegisterRequest, role domain.Role, hotelID *int64) (*domain.User, error) {
	existing, err := s.userRepo.FindByEmailOrPhone(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing == nil {
		existing, err = s.userRepo.FindByEmailOrPhone(ctx, req.Phone)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing user: %w", err)
		}
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email or phone already registered", domain.ErrConflict)
	}

	passwordHash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Role:         role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Country:      req.Country,
		PasswordHash: passwordHash,
		HotelID:      hotelID,
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
