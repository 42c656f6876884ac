package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stayloop/hotel-bookings/internal/domain"
	"github.com/stayloop/hotel-bookings/internal/repo/postgres"
	"github.com/stayloop/hotel-bookings/pkg/events"
	"github.com/stayloop/hotel-bookings/pkg/logger"
)

type BookingService interface {
	Create(ctx context.Context, userID int64, req *domain.CreateBookingRequest) (*domain.Booking, error)
	Get(ctx context.Context, id int64) (*domain.Booking, error)
	ListForUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error)
	ListForHotel(ctx context.Context, hotelID int64, limit, offset int) ([]domain.Booking, error)
	Cancel(ctx context.Context, id int64) error
}

type bookingService struct {
	bookingRepo postgres.BookingRepo
	hotelRepo   postgres.HotelRepo
	roomRepo    postgres.RoomRepo
	userRepo    postgres.UserRepo
	eventBus    events.Publisher
}

func NewBookingService(
	bookingRepo postgres.BookingRepo,
	hotelRepo postgres.HotelRepo,
	roomRepo postgres.RoomRepo,
	userRepo postgres.UserRepo,
	eventBus events.Publisher,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		hotelRepo:   hotelRepo,
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		eventBus:    eventBus,
	}
}

// Create books a room for the authenticated user. The owner always comes
// from the verified session, never from the request body.
func (s *bookingService) Create(ctx context.Context, userID int64, req *domain.CreateBookingRequest) (*domain.Booking, error) {
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

	room, err := s.roomRepo.GetByID(ctx, req.HotelID, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to find room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room in this hotel", domain.ErrNotFound)
	}

	booking, err := s.bookingRepo.Create(ctx, &domain.Booking{
		UserID:     userID,
		HotelID:    req.HotelID,
		RoomID:     req.RoomID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Adults:     req.Adults,
		Children:   req.Children,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		logger.WarnContext(ctx, "Failed to load user for booking event", "error", err, "user_id", userID)
		return booking, nil
	}

	if err := s.eventBus.Publish(ctx, events.BookingCreated, events.BookingCreatedEvent{
		BookingID:  booking.ID,
		UserEmail:  user.Email,
		UserName:   user.FullName(),
		HotelName:  hotel.Name,
		RoomName:   room.Name,
		CheckIn:    booking.CheckIn,
		CheckOut:   booking.CheckOut,
		TotalPrice: booking.TotalPrice,
		CreatedAt:  booking.CreatedAt,
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish booking.created", "error", err, "booking_id", booking.ID)
	}

	return booking, nil
}

func (s *bookingService) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking", domain.ErrNotFound)
	}
	return booking, nil
}

func (s *bookingService) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) ListForHotel(ctx context.Context, hotelID int64, limit, offset int) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.ListByHotel(ctx, hotelID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) Cancel(ctx context.Context, id int64) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("%w: booking", domain.ErrNotFound)
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return err
	}

	userEmail := ""
	if user, err := s.userRepo.FindByID(ctx, booking.UserID); err == nil && user != nil {
		userEmail = user.Email
	}

	if err := s.eventBus.Publish(ctx, events.BookingCanceled, events.BookingCanceledEvent{
		BookingID:  id,
		UserEmail:  userEmail,
		CanceledAt: time.Now(),
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish booking.canceled", "error", err, "booking_id", id)
	}

	return nil
}
