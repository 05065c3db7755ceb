package repository

import "github.com/construmart/construmart-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	ExistsByEmail(email string) (bool, error)
	// Activate persiste únicamente los flags de activación y UpdatedAt.
	Activate(user *entity.User) error
	Update(user *entity.User) error
}
