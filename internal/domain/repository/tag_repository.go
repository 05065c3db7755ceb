package repository

import "github.com/construmart/construmart-api/internal/domain/entity"

// TagRepository define el puerto de persistencia para Tag (solo lectura por ahora).
type TagRepository interface {
	GetByID(id string) (*entity.Tag, error)
	List() ([]*entity.Tag, error)
}
