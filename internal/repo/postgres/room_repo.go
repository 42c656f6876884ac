package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stayloop/hotel-bookings/internal/domain"
)

type RoomRepo interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) (*domain.Room, error)
	Delete(ctx context.Context, hotelID, roomID int64) error
	GetByID(ctx context.Context, hotelID, roomID int64) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
}

type roomRepo struct {
	pool *pgxpool.Pool
}

func NewRoomRepo(pool *pgxpool.Pool) RoomRepo {
	return &roomRepo{pool: pool}
}

const roomCols = `id, hotel_id, name, description, price, room_type, images, available, created_at, updated_at`

func scanRoom(row pgx.Row) (*domain.Room, error) {
	var rm domain.Room
	err := row.Scan(
		&rm.ID, &rm.HotelID, &rm.Name, &rm.Description, &rm.Price, &rm.RoomType,
		&rm.Images, &rm.Available, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *roomRepo) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	const q = `
		INSERT INTO rooms (hotel_id, name, description, price, room_type, images, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + roomCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return scanRoom(r.pool.QueryRow(ctx, q,
		room.HotelID, room.Name, room.Description, room.Price, room.RoomType, room.Images, room.Available,
	))
}

func (r *roomRepo) Update(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	const q = `
		UPDATE rooms
		SET name = $3, description = $4, price = $5, room_type = $6, images = $7, updated_at = now()
		WHERE hotel_id = $1 AND id = $2
		RETURNING ` + roomCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rm, err := scanRoom(r.pool.QueryRow(ctx, q,
		room.HotelID, room.ID, room.Name, room.Description, room.Price, room.RoomType, room.Images,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return rm, err
}

func (r *roomRepo) Delete(ctx context.Context, hotelID, roomID int64) error {
	const q = `DELETE FROM rooms WHERE hotel_id = $1 AND id = $2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, hotelID, roomID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *roomRepo) GetByID(ctx context.Context, hotelID, roomID int64) (*domain.Room, error) {
	const q = `SELECT ` + roomCols + ` FROM rooms WHERE hotel_id = $1 AND id = $2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rm, err := scanRoom(r.pool.QueryRow(ctx, q, hotelID, roomID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return rm, err
}

func (r *roomRepo) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	const q = `SELECT ` + roomCols + ` FROM rooms WHERE hotel_id = $1 ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *rm)
	}

	return rooms, rows.Err()
}
