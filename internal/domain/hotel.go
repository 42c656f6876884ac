package domain

import (
	"encoding/json"
	"strings"
	"time"
)

type Hotel struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Room struct {
	ID          int64     `json:"id"`
	HotelID     int64     `json:"hotel_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	RoomType    string    `json:"room_type"`
	Images      []string  `json:"images"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type HotelRequest struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

func (r *HotelRequest) Validate() error {
	if r.Name == "" {
		return Validationf("name is required")
	}
	if r.Location == "" {
		return Validationf("location is required")
	}
	return nil
}

func (r *HotelRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Location = strings.TrimSpace(r.Location)
	r.Description = strings.TrimSpace(r.Description)
	// The images column is NOT NULL; an omitted field must not bind as NULL
	if r.Images == nil {
		r.Images = []string{}
	}
}

// Price keeps the raw request text so comma-grouped strings ("1,200.50")
// survive decoding and can be normalized in the service.
type Price string

func (p *Price) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = Price(s)
		return nil
	}
	*p = Price(b)
	return nil
}

// RoomRequest accepts price as either a JSON number or a comma-grouped
// string; normalization happens in the service.
type RoomRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       Price    `json:"price"`
	RoomType    string   `json:"room_type"`
	Images      []string `json:"images"`
}

func (r *RoomRequest) Validate() error {
	if r.Name == "" {
		return Validationf("name is required")
	}
	if r.Description == "" {
		return Validationf("description is required")
	}
	if r.Price == "" {
		return Validationf("price is required")
	}
	return nil
}

func (r *RoomRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.RoomType = strings.TrimSpace(r.RoomType)
	if r.Images == nil {
		r.Images = []string{}
	}
}
