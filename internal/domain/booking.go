package domain

import "time"

type Booking struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	HotelID    int64     `json:"hotel_id"`
	RoomID     int64     `json:"room_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Adults     int       `json:"adults"`
	Children   int       `json:"children"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateBookingRequest struct {
	HotelID    int64     `json:"hotel_id"`
	RoomID     int64     `json:"room_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Adults     int       `json:"adults"`
	Children   int       `json:"children"`
	TotalPrice float64   `json:"total_price"`
}

func (r *CreateBookingRequest) Validate() error {
	if r.HotelID <= 0 {
		return Validationf("hotel_id is required")
	}
	if r.RoomID <= 0 {
		return Validationf("room_id is required")
	}
	if r.CheckIn.IsZero() || r.CheckOut.IsZero() {
		return Validationf("check_in and check_out are required")
	}
	if !r.CheckOut.After(r.CheckIn) {
		return Validationf("check_out must be after check_in")
	}
	if r.Adults <= 0 {
		return Validationf("at least one adult is required")
	}
	if r.Children < 0 {
		return Validationf("invalid children count")
	}
	if r.TotalPrice < 0 {
		return Validationf("invalid total_price")
	}
	return nil
}
