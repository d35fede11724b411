package order

import (
	"context"

	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con repos atados a ella.
// Si fn retorna error, nada de lo hecho dentro de fn queda persistido.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReceiptGenerator genera el PDF del recibo de una orden.
type ReceiptGenerator interface {
	GenerateReceipt(order *entity.Order, items []*entity.OrderItem) ([]byte, error)
}
