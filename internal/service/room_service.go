package service

import (
	"context"
	"fmt"

	"github.com/stayloop/hotel-bookings/internal/domain"
	"github.com/stayloop/hotel-bookings/internal/repo/postgres"
	"github.com/stayloop/hotel-bookings/internal/utils"
)

type RoomService interface {
	Create(ctx context.Context, hotelID int64, req *domain.RoomRequest) (*domain.Room, error)
	Update(ctx context.Context, hotelID, roomID int64, req *domain.RoomRequest) (*domain.Room, error)
	Delete(ctx context.Context, hotelID, roomID int64) error
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
}

type roomService struct {
	roomRepo  postgres.RoomRepo
	hotelRepo postgres.HotelRepo
}

func NewRoomService(roomRepo postgres.RoomRepo, hotelRepo postgres.HotelRepo) RoomService {
	return &roomService{roomRepo: roomRepo, hotelRepo: hotelRepo}
}

func (s *roomService) Create(ctx context.Context, hotelID int64, req *domain.RoomRequest) (*domain.Room, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	price, err := utils.NormalizePrice(string(req.Price))
	if err != nil {
		return nil, domain.Validationf("invalid price format")
	}
	if price < 0 {
		return nil, domain.Validationf("price must not be negative")
	}

	if err := s.requireHotel(ctx, hotelID); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.Create(ctx, &domain.Room{
		HotelID:     hotelID,
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		RoomType:    req.RoomType,
		Images:      req.Images,
		Available:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return room, nil
}

func (s *roomService) Update(ctx context.Context, hotelID, roomID int64, req *domain.RoomRequest) (*domain.Room, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	price, err := utils.NormalizePrice(string(req.Price))
	if err != nil {
		return nil, domain.Validationf("invalid price format")
	}
	if price < 0 {
		return nil, domain.Validationf("price must not be negative")
	}

	room, err := s.roomRepo.Update(ctx, &domain.Room{
		ID:          roomID,
		HotelID:     hotelID,
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		RoomType:    req.RoomType,
		Images:      req.Images,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room", domain.ErrNotFound)
	}
	return room, nil
}

func (s *roomService) Delete(ctx context.Context, hotelID, roomID int64) error {
	return s.roomRepo.Delete(ctx, hotelID, roomID)
}

func (s *roomService) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	if err := s.requireHotel(ctx, hotelID); err != nil {
		return nil, err
	}

	rooms, err := s.roomRepo.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *roomService) requireHotel(ctx context.Context, hotelID int64) error {
	hotel, err := s.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		return fmt.Errorf("failed to find hotel: %w", err)
	}
	if hotel == nil {
		return fmt.Errorf("%w: hotel", domain.ErrNotFound)
	}
	return nil
}
