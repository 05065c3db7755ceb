// Package otp genera códigos numéricos de un solo uso para la verificación
// de cuentas, con su política de expiración.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Issuer emite códigos OTP numéricos de longitud fija y calcula su expiración.
type Issuer struct {
	digits int
	ttl    time.Duration
}

// NewIssuer construye el emisor. digits fuera de [4,10] cae a 6;
// ttl <= 0 cae a 2 horas (política de onboarding).
func NewIssuer(digits int, ttl time.Duration) *Issuer {
	if digits < 4 || digits > 10 {
		digits = 6
	}
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &Issuer{digits: digits, ttl: ttl}
}

// Generate produce un código numérico aleatorio con ceros a la izquierda
// (ej. "042317" para 6 dígitos).
func (i *Issuer) Generate() (string, error) {
	max := big.NewInt(1)
	for n := 0; n < i.digits; n++ {
		max.Mul(max, big.NewInt(10))
	}
	v, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generar otp: %w", err)
	}
	return fmt.Sprintf("%0*d", i.digits, v), nil
}

// ExpiresAt devuelve el instante de expiración para un código emitido en now.
func (i *Issuer) ExpiresAt(now time.Time) time.Time {
	return now.Add(i.ttl)
}
