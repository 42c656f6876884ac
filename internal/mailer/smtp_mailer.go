package mailer

import (
	"bytes"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/stayloop/hotel-bookings/pkg/events"
)

type SMTPMailer struct {
	Host string
	Port int
	From string
	User string
	Pass string
}

func NewSMTPMailer(host string, port int, from, user, pass string) *SMTPMailer {
	return &SMTPMailer{
		Host: strings.TrimSpace(host),
		Port: port,
		From: strings.TrimSpace(from),
		User: strings.TrimSpace(user),
		Pass: strings.TrimSpace(pass),
	}
}

func (s *SMTPMailer) SendBookingConfirmation(toEmail, toName string, ev *events.BookingCreatedEvent) error {
	subject := fmt.Sprintf("Booking confirmed: %s", ev.HotelName)
	text := fmt.Sprintf("Your booking #%d at %s (%s) is confirmed. Check-in %s, check-out %s, total %.2f.",
		ev.BookingID, ev.HotelName, ev.RoomName,
		ev.CheckIn.Format("2006-01-02"), ev.CheckOut.Format("2006-01-02"), ev.TotalPrice)
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

	return s.sendEmail(toEmail, subject, text, html)
}

func (s *SMTPMailer) SendHotelAdminWelcome(toEmail, toName, hotelName string) error {
	subject := "You are now a hotel admin"
	text := fmt.Sprintf("Hi %s, your account now has admin access for %s.", toName, hotelName)
	html := fmt.Sprintf(`
		<h2>Welcome aboard</h2>
		<p>Hi %s,</p>
		<p>Your account has been granted admin access for <strong>%s</strong>.</p>
		<p>Log in with your email and password to manage it.</p>
	`, toName, hotelName)

	return s.sendEmail(toEmail, subject, text, html)
}

func (s *SMTPMailer) sendEmail(toEmail, subject, text, html string) error {
	toEmail = strings.TrimSpace(toEmail)
	if toEmail == "" {
		return fmt.Errorf("empty recipient email")
	}

	var buf bytes.Buffer
	boundary := "mixed-boundary"

	fmt.Fprintf(&buf, "From: %s\r\n", s.From)
	fmt.Fprintf(&buf, "To: %s\r\n", toEmail)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary)

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	fmt.Fprintf(&buf, "Content-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n", text)

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	fmt.Fprintf(&buf, "Content-Type: text/html; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n", html)

	fmt.Fprintf(&buf, "--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)

	// Mailpit or development SMTP (no auth)
	if s.User == "" {
		return smtp.SendMail(addr, nil, s.From, []string{toEmail}, buf.Bytes())
	}

	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
	return smtp.SendMail(addr, auth, s.From, []string{toEmail}, buf.Bytes())
}
