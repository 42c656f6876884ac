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

type UserHandler struct {
	svc     service.AuthService
	gate    *mw.Gate
	limiter *mw.RateLimiter
}

func NewUserHandler(svc service.AuthService, gate *mw.Gate, limiter *mw.RateLimiter) *UserHandler {
	return &UserHandler{svc: svc, gate: gate, limiter: limiter}
}

func (h *UserHandler) Routes() chi.Router {
	r := chi.NewRouter()

	// Credential endpoints, rate limited per client IP
	r.Group(func(r chi.Router) {
		r.Use(h.limiter.Middleware)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/super-admin", h.createSuperAdmin)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.gate.Authenticate)
		r.Get("/me", h.me)

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireSuperAdmin)
			r.Get("/", h.listGuests)
			r.Post("/hotel-admins", h.createHotelAdmin)
		})
	})

	return r
}

func (h *UserHandler) register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}

	user, err := h.svc.Register(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"user":    user.ToUserInfo(),
	})
}

func (h *UserHandler) login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}

	resp, err := h.svc.Login(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) createSuperAdmin(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}

	user, err := h.svc.CreateSuperAdmin(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Super admin created successfully",
		"user":    user.ToUserInfo(),
	})
}

func (h *UserHandler) createHotelAdmin(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateHotelAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}

	user, err := h.svc.CreateHotelAdmin(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Hotel admin created successfully",
		"user":    user.ToUserInfo(),
	})
}

func (h *UserHandler) me(w http.ResponseWriter, r *http.Request) {
	claims := mw.Claims(r)
	if claims == nil {
		response.Unauthorized(w, "unauthorized: no credential")
		return
	}

	user, err := h.svc.GetUser(r.Context(), claims.Sub)
	if err != nil {
		response.FromError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user.ToUserInfo())
}

func (h *UserHandler) listGuests(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	users, err := h.svc.ListGuests(r.Context(), limit, offset)
	if err != nil {
		response.FromError(w, err)
		return
	}

	infos := make([]*domain.UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, users[i].ToUserInfo())
	}

	writeJSON(w, http.StatusOK, infos)
}
