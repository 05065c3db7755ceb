// Package email implementa el puerto Notifier sobre SMTP.
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/construmart/construmart-api/internal/application/onboarding"
	"github.com/construmart/construmart-api/pkg/config"
)

var _ onboarding.Notifier = (*SMTPNotifier)(nil)

// SMTPNotifier envía correos por SMTP con credenciales de configuración.
type SMTPNotifier struct {
	dialer *gomail.Dialer
}

// NewSMTPNotifier construye el notificador con la configuración SMTP.
func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Send entrega el mensaje. Respeta cancelación del contexto antes de marcar
// la conexión; el fallo de transporte se devuelve al caller para que lo registre.
func (n *SMTPNotifier) Send(ctx context.Context, msg onboarding.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(msg.From, msg.FromName))
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	if msg.TextBody != "" {
		m.SetBody("text/plain", msg.TextBody)
		if msg.HTMLBody != "" {
			m.AddAlternative("text/html", msg.HTMLBody)
		}
	} else {
		m.SetBody("text/html", msg.HTMLBody)
	}
	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar correo a %s: %w", msg.To, err)
	}
	return nil
}
