package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock es unidades enteras y nunca puede quedar negativo: el descuento
// se hace dentro de la transacción de venta con bloqueo de fila.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta vigente
	Stock       int64
	Category    string
	Images      []*ProductImage // cargadas en listados y detalle; la primera es la principal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductImage imagen asociada a un producto. El archivo vive en disco local
// y aquí solo se persiste la URL pública. Se eliminan en cascada con el producto.
type ProductImage struct {
	ID        string
	ProductID string
	ImageURL  string
	IsPrimary bool
	CreatedAt time.Time
}
