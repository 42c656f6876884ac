package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/mailersend/mailersend-go"

	"github.com/stayloop/hotel-bookings/pkg/events"
)

type MailerSendClient struct {
	client *mailersend.Mailersend
	from   mailersend.From
}

func NewMailerSend(apiKey, fromName, fromEmail string) *MailerSendClient {
	return &MailerSendClient{
		client: mailersend.NewMailersend(apiKey),
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}
}

func (m *MailerSendClient) SendBookingConfirmation(toEmail, toName string, ev *events.BookingCreatedEvent) error {
	subject := fmt.Sprintf("Booking confirmed: %s", ev.HotelName)

	html := fmt.Sprintf(`
		<h2>Your booking is confirmed</h2>
		<p>Hi %s,</p>
		<p>We have reserved <strong>%s</strong> at <strong>%s</strong> for you.</p>
		<ul>
			<li>Check-in: %s</li>
			<li>Check-out: %s</li>
			<li>Total: %.2f</li>
		</ul>
		<p>Booking reference: #%d</p>
	`, toName, ev.RoomName, ev.HotelName,
		ev.CheckIn.Format("Mon, 2 Jan 2006"), ev.CheckOut.Format("Mon, 2 Jan 2006"),
		ev.TotalPrice, ev.BookingID)

	text := fmt.Sprintf("Your booking #%d at %s (%s) is confirmed. Check-in %s, check-out %s, total %.2f.",
		ev.BookingID, ev.HotelName, ev.RoomName,
		ev.CheckIn.Format("2006-01-02"), ev.CheckOut.Format("2006-01-02"), ev.TotalPrice)

	return m.send(toEmail, toName, subject, text, html)
}

func (m *MailerSendClient) SendHotelAdminWelcome(toEmail, toName, hotelName string) error {
	subject := "You are now a hotel admin"

	html := fmt.Sprintf(`
		<h2>Welcome aboard</h2>
		<p>Hi %s,</p>
		<p>Your account has been granted admin access for <strong>%s</strong>.</p>
		<p>Log in with your email and password to manage it.</p>
	`, toName, hotelName)

	text := fmt.Sprintf("Hi %s, your account now has admin access for %s.", toName, hotelName)

	return m.send(toEmail, toName, subject, text, html)
}

func (m *MailerSendClient) send(toEmail, toName, subject, text, html string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	message := m.client.Email.NewMessage()
	message.SetFrom(m.from)
	message.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	message.SetSubject(subject)
	message.SetText(text)
	message.SetHTML(html)

	_, err := m.client.Email.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("mailersend: %w", err)
	}
	return nil
}
