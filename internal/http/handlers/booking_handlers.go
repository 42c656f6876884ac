package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stayloop/hotel-bookings/internal/domain"
	mw "github.com/stayloop/hotel-bookings/internal/http/middleware"
	"github.com/stayloop/hotel-bookings/internal/http/response"
	"github.com/stayloop/hotel-bookings/internal/service"
	"github.com/stayloop/hotel-bookings/pkg/auth"
)

type BookingHandler struct {
	svc  service.BookingService
	gate *mw.Gate
}

func NewBookingHandler(svc service.BookingService, gate *mw.Gate) *BookingHandler {
	return &BookingHandler{svc: svc, gate: gate}
}

func (h *BookingHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.gate.Authenticate)

	r.Post("/", h.create)
	r.Get("/", h.listOwn)
	r.Get("/{bookingID}", h.get)
	r.Delete("/{bookingID}", h.cancel)

	r.With(mw.RequireAdmin).Get("/hotel/{hotelID}", h.listForHotel)

	return r
}

func (h *BookingHandler) create(w http.ResponseWriter, r *http.Request) {
	claims := mw.Claims(r)
	if claims == nil {
		response.Unauthorized(w, "unauthorized: no credential")
		return
	}

	var req domain.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}

	booking, err := h.svc.Create(r.Context(), claims.Sub, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Booking successful",
		"booking": booking,
	})
}

func (h *BookingHandler) listOwn(w http.ResponseWriter, r *http.Request) {
	claims := mw.Claims(r)
	if claims == nil {
		response.Unauthorized(w, "unauthorized: no credential")
		return
	}

	limit, offset := parsePagination(r)

	bookings, err := h.svc.ListForUser(r.Context(), claims.Sub, limit, offset)
	if err != nil {
		response.FromError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "bookingID")
	if !ok {
		response.BadRequest(w, "invalid booking id")
		return
	}

	booking, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	// Denied lookups report not found so callers cannot probe which ids exist
	if !canAccessBooking(mw.Claims(r), booking) {
		response.NotFound(w, "not found: booking")
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "bookingID")
	if !ok {
		response.BadRequest(w, "invalid booking id")
		return
	}

	booking, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	if !canAccessBooking(mw.Claims(r), booking) {
		response.NotFound(w, "not found: booking")
		return
	}

	if err := h.svc.Cancel(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Booking cancelled successfully"})
}

func (h *BookingHandler) listForHotel(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := urlID(r, "hotelID")
	if !ok {
		response.BadRequest(w, "invalid hotel id")
		return
	}

	claims := mw.Claims(r)
	if claims == nil {
		response.Forbidden(w, "access denied")
		return
	}

	// Hotel-admins are scoped to their own hotel
	if domain.Role(claims.Role) == domain.RoleHotelAdmin {
		if claims.HotelID == nil || *claims.HotelID != hotelID {
			response.Forbidden(w, "access denied: not your hotel")
			return
		}
	}

	limit, offset := parsePagination(r)

	bookings, err := h.svc.ListForHotel(r.Context(), hotelID, limit, offset)
	if err != nil {
		response.FromError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bookings)
}

// canAccessBooking: the owner may always see their booking; super-admins see
// everything; hotel-admins see bookings for their own hotel. Absent claims
// deny.
func canAccessBooking(claims *auth.Claims, b *domain.Booking) bool {
	if claims == nil || b == nil {
		return false
	}
	if claims.Sub == b.UserID {
		return true
	}
	switch domain.Role(claims.Role) {
	case domain.RoleSuperAdmin:
		return true
	case domain.RoleHotelAdmin:
		return claims.HotelID != nil && *claims.HotelID == b.HotelID
	default:
		return false
	}
}
