package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stayloop/hotel-bookings/internal/domain"
	mw "github.com/stayloop/hotel-bookings/internal/http/middleware"
	"github.com/stayloop/hotel-bookings/internal/http/response"
	"github.com/stayloop/hotel-bookings/internal/service"
)

type HotelHandler struct {
	hotels service.HotelService
	rooms  service.RoomService
	gate   *mw.Gate
}

func NewHotelHandler(hotels service.HotelService, rooms service.RoomService, gate *mw.Gate) *HotelHandler {
	return &HotelHandler{hotels: hotels, rooms: rooms, gate: gate}
}

func (h *HotelHandler) Routes() chi.Router {
	r := chi.NewRouter()

	// Browsing is public
	r.Get("/", h.list)
	r.Get("/{hotelID}", h.get)
	r.Get("/{hotelID}/rooms", h.listRooms)

	// Mutations are super-admin only
	r.Group(func(r chi.Router) {
		r.Use(h.gate.Authenticate)
		r.Use(mw.RequireSuperAdmin)

		r.Post("/", h.create)
		r.Put("/{hotelID}", h.update)
		r.Delete("/{hotelID}", h.delete)

		r.Post("/{hotelID}/rooms", h.addRoom)
		r.Put("/{hotelID}/rooms/{roomID}", h.updateRoom)
		r.Delete("/{hotelID}/rooms/{roomID}", h.deleteRoom)
	})

	return r
}

func (h *HotelHandler) create(w http.ResponseWriter, r *http.Request) {
	var req domain.HotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}

	hotel, err := h.hotels.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Hotel added successfully",
		"hotel":   hotel,
	})
}

func (h *HotelHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "hotelID")
	if !ok {
		response.BadRequest(w, "invalid hotel id")
		return
	}

	var req domain.HotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}

	hotel, err := h.hotels.Update(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Hotel updated successfully",
		"hotel":   hotel,
	})
}

func (h *HotelHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "hotelID")
	if !ok {
		response.BadRequest(w, "invalid hotel id")
		return
	}

	if err := h.hotels.Delete(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Hotel deleted successfully"})
}

func (h *HotelHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "hotelID")
	if !ok {
		response.BadRequest(w, "invalid hotel id")
		return
	}

	hotel, err := h.hotels.Get(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, hotel)
}

func (h *HotelHandler) list(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	hotels, err := h.hotels.List(r.Context(), limit, offset)
	if err != nil {
		response.FromError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, hotels)
}

func (h *HotelHandler) addRoom(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := urlID(r, "hotelID")
	if !ok {
		response.BadRequest(w, "invalid hotel id")
		return
	}

	var req domain.RoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}

	room, err := h.rooms.Create(r.Context(), hotelID, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Room added successfully",
		"room":    room,
	})
}

func (h *HotelHandler) updateRoom(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := urlID(r, "hotelID")
	if !ok {
		response.BadRequest(w, "invalid hotel id")
		return
	}
	roomID, ok := urlID(r, "roomID")
	if !ok {
		response.BadRequest(w, "invalid room id")
		return
	}

	var req domain.RoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}

	room, err := h.rooms.Update(r.Context(), hotelID, roomID, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Room updated successfully",
		"room":    room,
	})
}

func (h *HotelHandler) deleteRoom(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := urlID(r, "hotelID")
	if !ok {
		response.BadRequest(w, "invalid hotel id")
		return
	}
	roomID, ok := urlID(r, "roomID")
	if !ok {
		response.BadRequest(w, "invalid room id")
		return
	}

	if err := h.rooms.Delete(r.Context(), hotelID, roomID); err != nil {
		response.FromError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Room deleted successfully"})
}

func (h *HotelHandler) listRooms(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := urlID(r, "hotelID")
	if !ok {
		response.BadRequest(w, "invalid hotel id")
		return
	}

	rooms, err := h.rooms.ListByHotel(r.Context(), hotelID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rooms)
}
