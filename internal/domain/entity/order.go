package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden. El origen no restringe transiciones con una máquina
// de estados estricta: cualquier estado es alcanzable por acción explícita,
// pero completed y cancelled se consideran estables salvo reset a pending.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Métodos de pago aceptados.
const (
	PaymentCash  = "cash"
	PaymentCard  = "card"
	PaymentOther = "other"
)

// ValidOrderStatus indica si s es uno de los cuatro estados conocidos.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod indica si m es un método de pago aceptado.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentOther:
		return true
	}
	return false
}

// Order cabecera de una venta. OrderNumber es la etiqueta única visible
// ("ORD-<millis>"); CustomerName es un snapshot denormalizado del nombre del
// cliente al momento de la venta. TotalAmount es la suma de los subtotales
// de los ítems al crearse y no se recalcula después.
type Order struct {
	ID            string
	OrderNumber   string
	CustomerID    string
	CustomerName  string
	TotalAmount   decimal.Decimal
	Status        string
	PaymentMethod string
	Items         []*OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem línea de una orden. UnitPrice y Subtotal son snapshots al momento
// de crear la orden: cambios posteriores de precio del producto no alteran
// órdenes históricas. Inmutable después de creado.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string // denormalizado para listados y recibos
	Quantity    int64
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
	CreatedAt   time.Time
}
