package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de una venta nueva. UnitPrice es opcional: si viene
// en cero se toma el precio vigente del producto. El subtotal siempre se
// recalcula en el servidor, nunca se confía en el del cliente.
type OrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest alta de una venta.
type CreateOrderRequest struct {
	CustomerID    string             `json:"customer_id"`
	PaymentMethod string             `json:"payment_method"`
	Items         []OrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest transición de estado de una orden.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse línea persistida con sus snapshots.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderResponse representación pública de una orden.
type OrderResponse struct {
	ID            string              `json:"id"`
	OrderNumber   string              `json:"order_number"`
	CustomerID    string              `json:"customer_id"`
	CustomerName  string              `json:"customer_name"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"payment_method"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}
