package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/construmart/construmart-api/internal/domain/entity"
	"github.com/construmart/construmart-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL.
// Price/TaxRate escanean directo a decimal.Decimal vía el codec registrado en el pool.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByID obtiene un producto con sus etiquetas.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, category_id, sku, name, description, price, tax_rate, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CategoryID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.TaxRate,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	tags, err := r.tagsFor(p.ID)
	if err != nil {
		return nil, err
	}
	p.Tags = tags
	return &p, nil
}

// List lista productos con paginación (sin etiquetas, para listados ligeros).
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, category_id, sku, name, description, price, tax_rate, created_at, updated_at
		FROM products ORDER BY name LIMIT $1 OFFSET $2`
	return r.scanList(query, limit, offset)
}

// ListByCategory lista productos de una categoría con paginación.
func (r *ProductRepo) ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, category_id, sku, name, description, price, tax_rate, created_at, updated_at
		FROM products WHERE category_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	return r.scanList(query, categoryID, limit, offset)
}

func (r *ProductRepo) scanList(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.SKU, &p.Name, &p.Description,
			&p.Price, &p.TaxRate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) tagsFor(productID string) ([]entity.Tag, error) {
	query := `
		SELECT t.id, t.name, t.created_at
		FROM tags t JOIN product_tags pt ON pt.tag_id = t.id
		WHERE pt.product_id = $1 ORDER BY t.name`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("tags for product: %w", err)
	}
	defer rows.Close()
	var tags []entity.Tag
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
