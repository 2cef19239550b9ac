package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. ImageURL ya viene
// resuelta por la capa HTTP (nil si no se subió imagen).
type CreateProductRequest struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Stock       int
	ImageURL    *string
}

// UpdateProductRequest entrada para actualizar un producto. Los campos del
// formulario se reemplazan siempre; ImageURL nil significa "no se envió
// imagen nueva" y la existente se conserva tal cual.
type UpdateProductRequest struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Stock       int
	ImageURL    *string
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
	ImageURL    *string         `json:"image_url"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
