package service_test

import (
	"context"
	"strings"
	"time"

	"github.com/stayloop/hotel-bookings/internal/domain"
	"github.com/stayloop/hotel-bookings/pkg/events"
)

// In-memory repos backing the service tests. They mirror the store
// contract: duplicate identifiers and a second super-admin surface as
// domain.ErrConflict, missing rows come back as (nil, nil).

type memUserRepo struct {
	nextID int64
	users  []*domain.User
}

func (m *memUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range m.users {
		if strings.EqualFold(existing.Email, u.Email) || existing.Phone == u.Phone {
			return nil, domain.ErrConflict
		}
		if u.Role == domain.RoleSuperAdmin && existing.Role == domain.RoleSuperAdmin {
			return nil, domain.ErrConflict
		}
	}

	m.nextID++
	created := *u
	created.ID = m.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.users = append(m.users, &created)

	out := created
	return &out, nil
}

func (m *memUserRepo) FindByEmailOrPhone(_ context.Context, loginID string) (*domain.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, loginID) || u.Phone == loginID {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range m.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (m *memUserRepo) ListByRole(_ context.Context, role domain.Role, _, _ int) ([]domain.User, error) {
	var out []domain.User
	for _, u := range m.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

type memHotelRepo struct {
	nextID int64
	hotels map[int64]*domain.Hotel
}

func newMemHotelRepo() *memHotelRepo {
	return &memHotelRepo{hotels: make(map[int64]*domain.Hotel)}
}

func (m *memHotelRepo) Create(_ context.Context, req *domain.HotelRequest) (*domain.Hotel, error) {
	m.nextID++
	h := &domain.Hotel{
		ID:          m.nextID,
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Images:      req.Images,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	m.hotels[h.ID] = h
	out := *h
	return &out, nil
}

func (m *memHotelRepo) Update(_ context.Context, id int64, req *domain.HotelRequest) (*domain.Hotel, error) {
	h, ok := m.hotels[id]
	if !ok {
		return nil, nil
	}
	h.Name = req.Name
	h.Location = req.Location
	h.Description = req.Description
	h.Images = req.Images
	h.UpdatedAt = time.Now()
	out := *h
	return &out, nil
}

func (m *memHotelRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.hotels[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.hotels, id)
	return nil
}

func (m *memHotelRepo) GetByID(_ context.Context, id int64) (*domain.Hotel, error) {
	h, ok := m.hotels[id]
	if !ok {
		return nil, nil
	}
	out := *h
	return &out, nil
}

func (m *memHotelRepo) List(_ context.Context, _, _ int) ([]domain.Hotel, error) {
	var out []domain.Hotel
	for _, h := range m.hotels {
		out = append(out, *h)
	}
	return out, nil
}

type memRoomRepo struct {
	nextID int64
	rooms  map[int64]*domain.Room
}

func newMemRoomRepo() *memRoomRepo {
	return &memRoomRepo{rooms: make(map[int64]*domain.Room)}
}

func (m *memRoomRepo) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	m.nextID++
	created := *room
	created.ID = m.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.rooms[created.ID] = &created
	out := created
	return &out, nil
}

func (m *memRoomRepo) Update(_ context.Context, room *domain.Room) (*domain.Room, error) {
	existing, ok := m.rooms[room.ID]
	if !ok || existing.HotelID != room.HotelID {
		return nil, nil
	}
	updated := *room
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	m.rooms[room.ID] = &updated
	out := updated
	return &out, nil
}

func (m *memRoomRepo) Delete(_ context.Context, hotelID, roomID int64) error {
	existing, ok := m.rooms[roomID]
	if !ok || existing.HotelID != hotelID {
		return domain.ErrNotFound
	}
	delete(m.rooms, roomID)
	return nil
}

func (m *memRoomRepo) GetByID(_ context.Context, hotelID, roomID int64) (*domain.Room, error) {
	existing, ok := m.rooms[roomID]
	if !ok || existing.HotelID != hotelID {
		return nil, nil
	}
	out := *existing
	return &out, nil
}

func (m *memRoomRepo) ListByHotel(_ context.Context, hotelID int64) ([]domain.Room, error) {
	var out []domain.Room
	for _, rm := range m.rooms {
		if rm.HotelID == hotelID {
			out = append(out, *rm)
		}
	}
	return out, nil
}

type memBookingRepo struct {
	nextID   int64
	bookings map[int64]*domain.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[int64]*domain.Booking)}
}

func (m *memBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	m.nextID++
	created := *b
	created.ID = m.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.bookings[created.ID] = &created
	out := created
	return &out, nil
}

func (m *memBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	out := *b
	return &out, nil
}

func (m *memBookingRepo) ListByUser(_ context.Context, userID int64, _, _ int) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memBookingRepo) ListByHotel(_ context.Context, hotelID int64, _, _ int) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range m.bookings {
		if b.HotelID == hotelID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.bookings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.bookings, id)
	return nil
}

type publishedEvent struct {
	subject string
	data    interface{}
}

type capturePublisher struct {
	published []publishedEvent
}

func (p *capturePublisher) Publish(_ context.Context, subject string, data interface{}) error {
	p.published = append(p.published, publishedEvent{subject: subject, data: data})
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) subjects() []string {
	out := make([]string, 0, len(p.published))
	for _, ev := range p.published {
		out = append(out, ev.subject)
	}
	return out
}

func (p *capturePublisher) last(subject string) (publishedEvent, bool) {
	for i := len(p.published) - 1; i >= 0; i-- {
		if p.published[i].subject == subject {
			return p.published[i], true
		}
	}
	return publishedEvent{}, false
}

type stubMailer struct {
	welcomes      []string
	confirmations []*events.BookingCreatedEvent
}

func (m *stubMailer) SendBookingConfirmation(_, _ string, ev *events.BookingCreatedEvent) error {
	m.confirmations = append(m.confirmations, ev)
	return nil
}

func (m *stubMailer) SendHotelAdminWelcome(toEmail, _, _ string) error {
	m.welcomes = append(m.welcomes, toEmail)
	return nil
}
