package repository

import "github.com/jhoicas/pos-backoffice/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y OrderItem.
// Create y CreateItem se usan dentro de la transacción de venta; los ítems
// nunca se persisten parcialmente fuera de ella.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	ItemsByOrder(orderID string) ([]*entity.OrderItem, error)
	List(limit, offset int) ([]*entity.Order, error)
	UpdateStatus(id, status string) error
}
