package mailer

import (
	"github.com/stayloop/hotel-bookings/pkg/events"
	"github.com/stayloop/hotel-bookings/pkg/logger"
)

// DevMailer logs mail instead of sending it.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendBookingConfirmation(toEmail, toName string, ev *events.BookingCreatedEvent) error {
	logger.Info("[DEV MAIL] Booking confirmation",
		"to", toEmail,
		"name", toName,
		"booking_id", ev.BookingID,
		"hotel", ev.HotelName,
		"room", ev.RoomName,
		"check_in", ev.CheckIn,
		"check_out", ev.CheckOut,
		"total_price", ev.TotalPrice,
	)
	return nil
}

func (d *DevMailer) SendHotelAdminWelcome(toEmail, toName, hotelName string) error {
	logger.Info("[DEV MAIL] Hotel admin welcome",
		"to", toEmail,
		"name", toName,
		"hotel", hotelName,
	)
	return nil
}
