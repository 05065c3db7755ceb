package entity

import "time"

// User representa la cuenta de acceso de un cliente. Se crea inactiva y sin
// confirmar; solo la verificación del OTP la activa.
type User struct {
	ID                     string
	Email                  string // identificador único
	PasswordHash           string // hash PBKDF2; nunca texto plano después de persistir
	SecurityStamp          string // sal usada para el hash de la contraseña
	PhoneNumber            string
	IsActive               bool
	IsEmailConfirmed       bool
	IsPhoneNumberConfirmed bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// Activate marca la cuenta como activa y con email confirmado.
func (u *User) Activate(now time.Time) {
	u.IsActive = true
	u.IsEmailConfirmed = true
	u.UpdatedAt = now
}
