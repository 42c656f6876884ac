package mailer

import "github.com/stayloop/hotel-bookings/pkg/events"

type Service interface {
	SendBookingConfirmation(toEmail, toName string, ev *events.BookingCreatedEvent) error
	SendHotelAdminWelcome(toEmail, toName, hotelName string) error
}
