package mail

import (
	"fmt"

	"github.com/nmoreno/alquiler-api/internal/application/auth"
	"github.com/nmoreno/alquiler-api/pkg/config"
	gomail "gopkg.in/gomail.v2"
)

var _ auth.Mailer = (*SMTPMailer)(nil)

// SMTPMailer envía mails HTML vía SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer construye el mailer con la configuración SMTP de la app.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// Send envía un mail HTML al destinatario.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar mail a %s: %w", to, err)
	}
	return nil
}
