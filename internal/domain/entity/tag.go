package entity

import "time"

// Tag etiqueta de catálogo para búsqueda y filtrado de productos.
type Tag struct {
	ID        string
	Name      string // único
	CreatedAt time.Time
}
