package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. Llega como campos de formulario
// multipart junto con los archivos de imagen (form:"..." para Fiber).
type CreateProductRequest struct {
	Name        string          `json:"name" form:"name"`
	Description string          `json:"description" form:"description"`
	Price       decimal.Decimal `json:"price" form:"price"`
	Stock       int64           `json:"stock" form:"stock"`
	Category    string          `json:"category" form:"category"`
}

// UpdateProductRequest edición de producto (multipart; imágenes nuevas se anexan).
type UpdateProductRequest struct {
	Name        string          `json:"name" form:"name"`
	Description string          `json:"description" form:"description"`
	Price       decimal.Decimal `json:"price" form:"price"`
	Stock       int64           `json:"stock" form:"stock"`
	Category    string          `json:"category" form:"category"`
}

// ProductImageResponse imagen asociada a un producto.
type ProductImageResponse struct {
	ID        string `json:"id"`
	ImageURL  string `json:"image_url"`
	IsPrimary bool   `json:"is_primary"`
}

// ProductResponse representación pública de un producto con sus imágenes.
type ProductResponse struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Price       decimal.Decimal        `json:"price"`
	Stock       int64                  `json:"stock"`
	Category    string                 `json:"category,omitempty"`
	Images      []ProductImageResponse `json:"images"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items  []*ProductResponse `json:"items"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}
