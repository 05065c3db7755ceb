package onboarding

import (
	"context"
	"time"

	"github.com/construmart/construmart-api/internal/domain/repository"
)

// TxRunner ejecuta fn con los tres repos del onboarding atados a una sola
// transacción: o persisten User, EncryptedCode y Customer juntos, o ninguno.
type TxRunner interface {
	RunOnboarding(ctx context.Context, fn func(
		users repository.UserRepository,
		codes repository.EncryptedCodeRepository,
		customers repository.CustomerRepository,
	) error) error
}

// Hasher puerto del hash de credenciales con sal explícita.
type Hasher interface {
	GenerateSalt() (string, error)
	Hash(secret, salt string) string
	Compare(secret, salt, expectedHash string) bool
}

// CodeIssuer puerto del emisor de códigos OTP.
type CodeIssuer interface {
	Generate() (string, error)
	ExpiresAt(now time.Time) time.Time
}

// Message correo estructurado para el notificador.
type Message struct {
	From     string
	FromName string
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Notifier puerto de envío de correo. El onboarding lo trata como best-effort:
// un fallo se registra pero no altera la respuesta ya calculada.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// Sender identidad del remitente, inyectada desde configuración.
type Sender struct {
	Address string
	Name    string
}
