package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stayloop/hotel-bookings/internal/domain"
)

type HotelRepo interface {
	Create(ctx context.Context, req *domain.HotelRequest) (*domain.Hotel, error)
	Update(ctx context.Context, id int64, req *domain.HotelRequest) (*domain.Hotel, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	List(ctx context.Context, limit, offset int) ([]domain.Hotel, error)
}

type hotelRepo struct {
	pool *pgxpool.Pool
}

func NewHotelRepo(pool *pgxpool.Pool) HotelRepo {
	return &hotelRepo{pool: pool}
}

const hotelCols = `id, name, location, description, images, created_at, updated_at`

func scanHotel(row pgx.Row) (*domain.Hotel, error) {
	var h domain.Hotel
	err := row.Scan(&h.ID, &h.Name, &h.Location, &h.Description, &h.Images, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *hotelRepo) Create(ctx context.Context, req *domain.HotelRequest) (*domain.Hotel, error) {
	const q = `
		INSERT INTO hotels (name, location, description, images)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + hotelCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return scanHotel(r.pool.QueryRow(ctx, q, req.Name, req.Location, req.Description, req.Images))
}

func (r *hotelRepo) Update(ctx context.Context, id int64, req *domain.HotelRequest) (*domain.Hotel, error) {
	const q = `
		UPDATE hotels
		SET name = $2, location = $3, description = $4, images = $5, updated_at = now()
		WHERE id = $1
		RETURNING ` + hotelCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	h, err := scanHotel(r.pool.QueryRow(ctx, q, id, req.Name, req.Location, req.Description, req.Images))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return h, err
}

func (r *hotelRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM hotels WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *hotelRepo) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	const q = `SELECT ` + hotelCols + ` FROM hotels WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	h, err := scanHotel(r.pool.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return h, err
}

func (r *hotelRepo) List(ctx context.Context, limit, offset int) ([]domain.Hotel, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	const q = `SELECT ` + hotelCols + ` FROM hotels ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hotels []domain.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, *h)
	}

	return hotels, rows.Err()
}
