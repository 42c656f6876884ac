package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stayloop/hotel-bookings/internal/domain"
	"github.com/stayloop/hotel-bookings/internal/http/handlers"
	mw "github.com/stayloop/hotel-bookings/internal/http/middleware"
	"github.com/stayloop/hotel-bookings/internal/service"
	"github.com/stayloop/hotel-bookings/pkg/auth"
)

const testSecret = "handler-test-secret"

func bearer(t *testing.T, sub int64, role string, hotelID *int64) string {
	t.Helper()
	tok, err := auth.NewSessionToken(sub, role, hotelID, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	return "Bearer " + tok
}

type fakeBookingService struct {
	bookings   map[int64]*domain.Booking
	nextID     int64
	lastOwner  int64
	canceled   []int64
	hotelLists []int64
}

func newFakeBookingService() *fakeBookingService {
	return &fakeBookingService{bookings: make(map[int64]*domain.Booking), nextID: 100}
}

func (f *fakeBookingService) seed(b *domain.Booking) *domain.Booking {
	f.nextID++
	b.ID = f.nextID
	f.bookings[b.ID] = b
	return b
}

func (f *fakeBookingService) Create(_ context.Context, userID int64, req *domain.CreateBookingRequest) (*domain.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	f.lastOwner = userID
	return f.seed(&domain.Booking{
		UserID:     userID,
		HotelID:    req.HotelID,
		RoomID:     req.RoomID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Adults:     req.Adults,
		Children:   req.Children,
		TotalPrice: req.TotalPrice,
	}), nil
}

func (f *fakeBookingService) Get(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, fmt.Errorf("%w: booking", domain.ErrNotFound)
	}
	return b, nil
}

func (f *fakeBookingService) ListForUser(_ context.Context, userID int64, _, _ int) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingService) ListForHotel(_ context.Context, hotelID int64, _, _ int) ([]domain.Booking, error) {
	f.hotelLists = append(f.hotelLists, hotelID)
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.HotelID == hotelID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingService) Cancel(_ context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return fmt.Errorf("%w: booking", domain.ErrNotFound)
	}
	delete(f.bookings, id)
	f.canceled = append(f.canceled, id)
	return nil
}

var _ service.BookingService = (*fakeBookingService)(nil)

func bookingRouter(svc service.BookingService) http.Handler {
	return handlers.NewBookingHandler(svc, mw.NewGate(testSecret)).Routes()
}

func TestCreateBookingRequiresCredential(t *testing.T) {
	r := bookingRouter(newFakeBookingService())

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestCreateBookingOwnerFromClaims(t *testing.T) {
	svc := newFakeBookingService()
	r := bookingRouter(svc)

	body, _ := json.Marshal(map[string]interface{}{
		"hotel_id":    1,
		"room_id":     2,
		"check_in":    "2026-10-01T14:00:00Z",
		"check_out":   "2026-10-03T11:00:00Z",
		"adults":      2,
		"total_price": 240,
	})
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(body))
	req.Header.Set("Authorization", bearer(t, 42, "guest", nil))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body)
	}
	if svc.lastOwner != 42 {
		t.Errorf("owner = %d, want the session subject 42", svc.lastOwner)
	}
}

func TestGetBookingAccess(t *testing.T) {
	svc := newFakeBookingService()
	booking := svc.seed(&domain.Booking{UserID: 7, HotelID: 3})
	r := bookingRouter(svc)

	hotel3 := int64(3)
	hotel9 := int64(9)
	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"owner", bearer(t, 7, "guest", nil), http.StatusOK},
		{"other guest", bearer(t, 8, "guest", nil), http.StatusNotFound},
		{"super admin", bearer(t, 1, "super-admin", nil), http.StatusOK},
		{"admin of the hotel", bearer(t, 2, "hotel-admin", &hotel3), http.StatusOK},
		{"admin of another hotel", bearer(t, 2, "hotel-admin", &hotel9), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/%d", booking.ID), nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

// A stranger must not be able to tell an existing booking from an absent one.
func TestGetBookingNoExistenceLeak(t *testing.T) {
	svc := newFakeBookingService()
	booking := svc.seed(&domain.Booking{UserID: 7, HotelID: 3})
	r := bookingRouter(svc)

	fetch := func(id int64) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/%d", id), nil)
		req.Header.Set("Authorization", bearer(t, 8, "guest", nil))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	existing := fetch(booking.ID)
	absent := fetch(booking.ID + 1000)

	if existing.Code != http.StatusNotFound || absent.Code != http.StatusNotFound {
		t.Fatalf("statuses = %d/%d, want 404 for both", existing.Code, absent.Code)
	}
	if existing.Body.String() != absent.Body.String() {
		t.Errorf("bodies differ: %q vs %q", existing.Body, absent.Body)
	}
}

func TestCancelBookingDeniedForStranger(t *testing.T) {
	svc := newFakeBookingService()
	booking := svc.seed(&domain.Booking{UserID: 7, HotelID: 3})
	r := bookingRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/%d", booking.ID), nil)
	req.Header.Set("Authorization", bearer(t, 8, "guest", nil))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 so existence is not leaked", rec.Code)
	}
	if len(svc.canceled) != 0 {
		t.Error("booking canceled by a non-owner")
	}

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/%d", booking.ID), nil)
	req.Header.Set("Authorization", bearer(t, 7, "guest", nil))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("owner cancel: status = %d, want 200", rec.Code)
	}
}

func TestListForHotelScoping(t *testing.T) {
	svc := newFakeBookingService()
	r := bookingRouter(svc)

	hotel3 := int64(3)
	hotel9 := int64(9)
	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"guest", bearer(t, 7, "guest", nil), http.StatusForbidden},
		{"admin of the hotel", bearer(t, 2, "hotel-admin", &hotel3), http.StatusOK},
		{"admin of another hotel", bearer(t, 2, "hotel-admin", &hotel9), http.StatusForbidden},
		{"super admin", bearer(t, 1, "super-admin", nil), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/hotel/3", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestGetBookingInvalidID(t *testing.T) {
	r := bookingRouter(newFakeBookingService())

	req := httptest.NewRequest(http.MethodGet, "/not-a-number", nil)
	req.Header.Set("Authorization", bearer(t, 7, "guest", nil))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
