package entity

import "time"

// Propósitos válidos para EncryptedCode.
const (
	PurposeCustomerOnboarding = "CUSTOMER_ONBOARDING"
)

// EncryptedCode guarda el hash salado de un código de un solo uso, con su
// expiración y propósito. Pertenece a exactamente un User; cero o uno por
// usuario (se reemplaza si se reemite).
type EncryptedCode struct {
	ID        string
	UserID    string
	Salt      string
	CodeHash  string
	Expiry    time.Time
	Purpose   string
	CreatedAt time.Time
}

// Expired indica si el código ya no es válido para comparación.
func (c *EncryptedCode) Expired(now time.Time) bool {
	return now.After(c.Expiry)
}
