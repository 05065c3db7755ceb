package entity

import "time"

// Category representa una categoría de productos del catálogo (jerárquica opcional).
type Category struct {
	ID          string
	ParentID    string // vacío si es raíz
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
