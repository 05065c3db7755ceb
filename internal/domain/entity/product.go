package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de Construmart.
// Price/TaxRate en decimal para evitar errores de redondeo binario.
type Product struct {
	ID          string
	CategoryID  string
	SKU         string // código único
	Name        string
	Description string
	Price       decimal.Decimal
	TaxRate     decimal.Decimal
	Tags        []Tag
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
