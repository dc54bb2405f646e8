package mail

import (
	"github.com/franpass87/esperienze-insights-api/internal/config"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	gomail "gopkg.in/gomail.v2"
)

type Mailer interface {
	Send(recipients []string, subject, body string) error
}

type SMTPMailer struct {
	cfg config.SMTP
}

func NewSMTPMailer(cfg config.SMTP) *SMTPMailer {
	return &SMTPMailer{
		cfg: cfg,
	}
}

// Send envia o corpo em texto plano para todos os destinatários em uma
// única mensagem.
func (m *SMTPMailer) Send(recipients []string, subject, body string) error {
	if len(recipients) == 0 {
		return errors.New("nenhum destinatário informado")
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.cfg.From)
	message.SetHeader("To", recipients...)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)

	if err := dialer.DialAndSend(message); err != nil {
		return errors.Wrap(err, "erro ao enviar email")
	}

	logrus.WithField("recipients", len(recipients)).Info("Digest enviado por email")
	return nil
}
