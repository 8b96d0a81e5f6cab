package utils

import (
	"log"

	"gatestore-app/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends workflow notifications over SMTP. Delivery is best
// effort; a failed send is logged and never blocks the request.
type Mailer struct {
	dialer *gomail.Dialer
	sender string
}

// NewMailer returns nil when SMTP is not configured, which callers
// treat as notifications disabled.
func NewMailer() *Mailer {
	if config.SMTPHost == "" {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPass),
		sender: config.SMTPSender,
	}
}

func (m *Mailer) Notify(to, subject, body string) {
	if m == nil || to == "" {
		return
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	go func() {
		if err := m.dialer.DialAndSend(msg); err != nil {
			log.Printf("mailer: send to %s failed: %v", to, err)
		}
	}()
}
