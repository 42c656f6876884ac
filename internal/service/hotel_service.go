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

type HotelService interface {
	Create(ctx context.Context, req *domain.HotelRequest) (*domain.Hotel, error)
	Update(ctx context.Context, id int64, req *domain.HotelRequest) (*domain.Hotel, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Hotel, error)
	List(ctx context.Context, limit, offset int) ([]domain.Hotel, error)
}

type hotelService struct {
	hotelRepo postgres.HotelRepo
	eventBus  events.Publisher
}

func NewHotelService(hotelRepo postgres.HotelRepo, eventBus events.Publisher) HotelService {
	return &hotelService{hotelRepo: hotelRepo, eventBus: eventBus}
}

func (s *hotelService) Create(ctx context.Context, req *domain.HotelRequest) (*domain.Hotel, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hotel, err := s.hotelRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}

	if err := s.eventBus.Publish(ctx, events.HotelCreated, events.HotelCreatedEvent{
		HotelID:   hotel.ID,
		Name:      hotel.Name,
		Location:  hotel.Location,
		CreatedAt: hotel.CreatedAt,
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish hotel.created", "error", err, "hotel_id", hotel.ID)
	}

	return hotel, nil
}

func (s *hotelService) Update(ctx context.Context, id int64, req *domain.HotelRequest) (*domain.Hotel, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hotel, err := s.hotelRepo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel", domain.ErrNotFound)
	}
	return hotel, nil
}

func (s *hotelService) Delete(ctx context.Context, id int64) error {
	if err := s.hotelRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.eventBus.Publish(ctx, events.HotelDeleted, events.HotelDeletedEvent{
		HotelID:   id,
		DeletedAt: time.Now(),
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish hotel.deleted", "error", err, "hotel_id", id)
	}

	return nil
}

func (s *hotelService) Get(ctx context.Context, id int64) (*domain.Hotel, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel", domain.ErrNotFound)
	}
	return hotel, nil
}

func (s *hotelService) List(ctx context.Context, limit, offset int) ([]domain.Hotel, error) {
	hotels, err := s.hotelRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}
