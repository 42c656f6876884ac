package mailer

import "github.com/stayloop/hotel-bookings/pkg/config"

// FromConfig picks a mail driver: dev mode logs, MailerSend when a key is
// set, SMTP otherwise.
func FromConfig(cfg *config.Config) Service {
	if cfg.Email.DevMode {
		return NewDevMailer()
	}
	if cfg.Email.MailerSendKey != "" {
		return NewMailerSend(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.SMTPFrom)
	}
	return NewSMTPMailer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPFrom, cfg.Email.SMTPUser, cfg.Email.SMTPPass)
}
