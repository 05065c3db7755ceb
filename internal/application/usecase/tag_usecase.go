package usecase

import (
	"github.com/construmart/construmart-api/internal/application/dto"
	"github.com/construmart/construmart-api/internal/domain"
	"github.com/construmart/construmart-api/internal/domain/repository"
)

// TagUseCase casos de uso de etiquetas (solo lectura).
type TagUseCase struct {
	repo repository.TagRepository
}

// NewTagUseCase construye el caso de uso.
func NewTagUseCase(repo repository.TagRepository) *TagUseCase {
	return &TagUseCase{repo: repo}
}

// List devuelve todas las etiquetas.
func (uc *TagUseCase) List() ([]*dto.TagResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TagResponse, 0, len(list))
	for _, tag := range list {
		out = append(out, &dto.TagResponse{ID: tag.ID, Name: tag.Name})
	}
	return out, nil
}

// GetByID obtiene una etiqueta; ErrNotFound si no existe.
func (uc *TagUseCase) GetByID(id string) (*dto.TagResponse, error) {
	tag, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.TagResponse{ID: tag.ID, Name: tag.Name}, nil
}
