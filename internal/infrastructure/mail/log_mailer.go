package mail

import (
	"github.com/nmoreno/alquiler-api/internal/application/auth"
	"github.com/nmoreno/alquiler-api/pkg/logger"
)

var _ auth.Mailer = (*LogMailer)(nil)

// LogMailer registra el mail en el log en lugar de enviarlo. Se usa en
// desarrollo cuando no hay SMTP configurado.
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer construye el mailer de log.
func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// Send loguea destinatario, asunto y cuerpo.
func (m *LogMailer) Send(to, subject, htmlBody string) error {
	m.log.Info().
		Str("to", to).
		Str("subject", subject).
		Str("body", htmlBody).
		Msg("mail no enviado (modo log)")
	return nil
}
