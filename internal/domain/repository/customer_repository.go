package repository

import "github.com/construmart/construmart-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByUserID(userID string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
}
