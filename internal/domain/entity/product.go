package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo. Solo usuarios con rol seller
// pueden crearlo, editarlo o eliminarlo. ImageURL es nil cuando el producto
// se publicó sin imagen.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal // precio de venta
	Description string
	Stock       int
	ImageURL    *string // nullable: /uploads/<archivo> o URL del object storage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
