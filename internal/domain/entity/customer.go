package entity

import "time"

// Customer representa el perfil de cliente. Posee exactamente un User (1:1)
// y se crea junto con él en la misma transacción; nunca por separado.
type Customer struct {
	ID        string
	UserID    string
	Firstname string
	Lastname  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
