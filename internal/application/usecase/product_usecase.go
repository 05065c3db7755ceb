package usecase

import (
	"github.com/construmart/construmart-api/internal/application/dto"
	"github.com/construmart/construmart-api/internal/domain"
	"github.com/construmart/construmart-api/internal/domain/entity"
	"github.com/construmart/construmart-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de productos (lectura).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// GetByID obtiene un producto con sus etiquetas; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos, opcionalmente filtrados por categoría.
func (uc *ProductUseCase) List(categoryID string, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.Product
		err  error
	)
	if categoryID != "" {
		list, err = uc.repo.ListByCategory(categoryID, page.Limit, page.Offset)
	} else {
		list, err = uc.repo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	tags := make([]dto.TagResponse, 0, len(p.Tags))
	for _, tag := range p.Tags {
		tags = append(tags, dto.TagResponse{ID: tag.ID, Name: tag.Name})
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		TaxRate:     p.TaxRate,
		Tags:        tags,
	}
}
