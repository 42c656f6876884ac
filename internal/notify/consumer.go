package notify

import (
	"encoding/json"

	"github.com/stayloop/hotel-bookings/internal/mailer"
	"github.com/stayloop/hotel-bookings/pkg/events"
	"github.com/stayloop/hotel-bookings/pkg/logger"
)

// Consumer turns booking events into outbound mail. It runs inside the API
// process; a queue subscription keeps delivery single-shot if more instances
// come up.
type Consumer struct {
	bus    events.Subscriber
	mailer mailer.Service
}

func NewConsumer(bus events.Subscriber, mailer mailer.Service) *Consumer {
	return &Consumer{bus: bus, mailer: mailer}
}

func (c *Consumer) Start() error {
	return c.bus.QueueSubscribe(events.BookingCreated, "notify", c.onBookingCreated)
}

func (c *Consumer) onBookingCreated(msg *events.Message) {
	var ev events.BookingCreatedEvent
	if err := json.Unmarshal(msg.Data, &ev); err != nil {
		logger.Error("Failed to decode booking.created event", "error", err)
		return
	}

	if ev.UserEmail == "" {
		return
	}

	if err := c.mailer.SendBookingConfirmation(ev.UserEmail, ev.UserName, &ev); err != nil {
		logger.Error("Failed to send booking confirmation", "error", err, "booking_id", ev.BookingID)
	}
}
