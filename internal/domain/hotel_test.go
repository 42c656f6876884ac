package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stayloop/hotel-bookings/internal/domain"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return ts
}

func TestRoomRequestPriceDecoding(t *testing.T) {
	tests := []struct {
		name string
		body string
		want domain.Price
	}{
		{"number", `{"name":"Deluxe","description":"d","price":1200.5}`, "1200.5"},
		{"plain string", `{"name":"Deluxe","description":"d","price":"1200.50"}`, "1200.50"},
		{"grouped string", `{"name":"Deluxe","description":"d","price":"1,200.50"}`, "1,200.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req domain.RoomRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if req.Price != tt.want {
				t.Errorf("price = %q, want %q", req.Price, tt.want)
			}
		})
	}
}

func TestNormalizeDefaultsImagesToEmpty(t *testing.T) {
	h := domain.HotelRequest{Name: "Seaside", Location: "Lagos"}
	h.Normalize()
	if h.Images == nil {
		t.Error("hotel images = nil, want empty slice")
	}

	rm := domain.RoomRequest{Name: "Deluxe", Description: "d", Price: "100"}
	rm.Normalize()
	if rm.Images == nil {
		t.Error("room images = nil, want empty slice")
	}

	// Provided images pass through untouched
	h = domain.HotelRequest{Name: "Seaside", Location: "Lagos", Images: []string{"a.jpg"}}
	h.Normalize()
	if len(h.Images) != 1 || h.Images[0] != "a.jpg" {
		t.Errorf("images = %v, want [a.jpg]", h.Images)
	}
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"guest", "hotel-admin", "super-admin"} {
		if _, ok := domain.ParseRole(s); !ok {
			t.Errorf("ParseRole(%q) rejected a known role", s)
		}
	}
	for _, s := range []string{"", "admin", "root", "Guest", "superadmin"} {
		if _, ok := domain.ParseRole(s); ok {
			t.Errorf("ParseRole(%q) accepted an unknown role", s)
		}
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	valid := func() domain.RegisterRequest {
		return domain.RegisterRequest{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Phone:     "+1 555 0100",
			Country:   "UK",
			Password:  "correct-horse",
		}
	}

	req := valid()
	if err := req.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	req = valid()
	req.Email = "not-an-email"
	if err := req.Validate(); err == nil {
		t.Error("bad email accepted")
	}

	req = valid()
	req.Phone = "123"
	if err := req.Validate(); err == nil {
		t.Error("short phone accepted")
	}

	req = valid()
	req.Password = "short"
	if err := req.Validate(); err == nil {
		t.Error("short password accepted")
	}
}

func TestLoginRequestNormalize(t *testing.T) {
	req := domain.LoginRequest{LoginID: "  Ada@Example.COM  ", Password: "x"}
	req.Normalize()
	if req.LoginID != "ada@example.com" {
		t.Errorf("email login_id = %q, want lowercased", req.LoginID)
	}

	// Phone identifiers keep their case and digits as entered
	req = domain.LoginRequest{LoginID: " +1 555 0100 ", Password: "x"}
	req.Normalize()
	if req.LoginID != "+1 555 0100" {
		t.Errorf("phone login_id = %q, want trimmed only", req.LoginID)
	}
}

func TestCreateBookingRequestValidate(t *testing.T) {
	valid := func() domain.CreateBookingRequest {
		return domain.CreateBookingRequest{
			HotelID:    1,
			RoomID:     2,
			CheckIn:    mustTime(t, "2026-10-01T14:00:00Z"),
			CheckOut:   mustTime(t, "2026-10-03T11:00:00Z"),
			Adults:     2,
			Children:   0,
			TotalPrice: 240,
		}
	}

	req := valid()
	if err := req.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	req = valid()
	req.CheckOut = req.CheckIn
	if err := req.Validate(); err == nil {
		t.Error("check_out equal to check_in accepted")
	}

	req = valid()
	req.Adults = 0
	if err := req.Validate(); err == nil {
		t.Error("zero adults accepted")
	}

	req = valid()
	req.HotelID = 0
	if err := req.Validate(); err == nil {
		t.Error("missing hotel_id accepted")
	}
}
