package order

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/domain"
	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// OrderUseCase crea ventas descontando stock en una sola transacción y
// maneja el ciclo de estados de la orden.
type OrderUseCase struct {
	txRunner     TxRunner
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	receipts     ReceiptGenerator
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	receipts ReceiptGenerator,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		receipts:     receipts,
	}
}

// newOrderNumber genera la etiqueta visible de la orden. El sufijo en milisegundos
// hace colisiones improbables; el constraint único de order_number atrapa el resto.
func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%d", now.UnixMilli())
}

// PlaceOrder crea la orden y sus ítems y descuenta el stock de cada producto,
// todo o nada. Orden de validación: cliente resolvible, ítems bien formados,
// y dentro de la transacción stock suficiente por producto con la fila
// bloqueada (SELECT ... FOR UPDATE). Cualquier error hace rollback completo:
// sin cabecera, sin ítems y sin mutación de stock.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.CustomerID)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la orden no tiene ítems", domain.ErrInvalidInput)
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: ítem con producto o cantidad inválida", domain.ErrInvalidInput)
		}
		if item.UnitPrice.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: precio unitario negativo", domain.ErrInvalidInput)
		}
	}
	payment := in.PaymentMethod
	if payment == "" {
		payment = entity.PaymentCash
	}
	if !entity.ValidPaymentMethod(payment) {
		return nil, fmt.Errorf("%w: método de pago %q", domain.ErrInvalidInput, in.PaymentMethod)
	}

	// Los bloqueos de fila se toman siempre en orden ascendente de producto:
	// dos transacciones concurrentes nunca se esperan en orden cruzado.
	reqItems := make([]dto.OrderItemRequest, len(in.Items))
	copy(reqItems, in.Items)
	sort.Slice(reqItems, func(i, j int) bool { return reqItems[i].ProductID < reqItems[j].ProductID })

	now := time.Now()
	ord := &entity.Order{
		ID:            uuid.New().String(),
		OrderNumber:   newOrderNumber(now),
		CustomerID:    customer.ID,
		CustomerName:  customer.Name, // snapshot: sobrevive a ediciones y borrado del cliente
		Status:        entity.OrderStatusPending,
		PaymentMethod: payment,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error {
		total := decimal.Zero
		items := make([]*entity.OrderItem, 0, len(reqItems))

		// 1) Validar stock por ítem con la fila del producto bloqueada.
		// El precio snapshot se resuelve aquí: el del request si vino, si no el vigente.
		for _, item := range reqItems {
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("%w: producto %s", domain.ErrNotFound, item.ProductID)
			}
			if product.Stock < item.Quantity {
				return fmt.Errorf("%w: %s (disponible %d, solicitado %d)",
					domain.ErrInsufficientStock, product.Name, product.Stock, item.Quantity)
			}
			unitPrice := item.UnitPrice
			if unitPrice.IsZero() {
				unitPrice = product.Price
			}
			subtotal := unitPrice.Mul(decimal.NewFromInt(item.Quantity))
			total = total.Add(subtotal)
			items = append(items, &entity.OrderItem{
				ID:          uuid.New().String(),
				OrderID:     ord.ID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   unitPrice,
				Subtotal:    subtotal,
				CreatedAt:   now,
			})
		}

		// 2) Cabecera con el total = suma de subtotales.
		ord.TotalAmount = total
		ord.Items = items
		if err := orderRepo.Create(ord); err != nil {
			return err
		}

		// 3) Ítems + descuento de stock. Las filas siguen bloqueadas hasta el commit.
		for _, it := range items {
			if err := orderRepo.CreateItem(it); err != nil {
				return err
			}
			if err := productRepo.DecrementStock(it.ProductID, it.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toOrderResponse(ord, ord.Items), nil
}

// UpdateStatus cambia el estado de una orden y verifica la escritura releyendo
// la fila: si el valor almacenado no coincide (sobrescritura concurrente),
// retorna ErrConflict. No tiene efectos sobre stock ni totales.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id, status string) error {
	if !entity.ValidOrderStatus(status) {
		return fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	ord, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if ord == nil {
		return domain.ErrNotFound
	}
	if err := uc.orderRepo.UpdateStatus(id, status); err != nil {
		return err
	}
	stored, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if stored == nil || stored.Status != status {
		return fmt.Errorf("%w: el estado almacenado no coincide", domain.ErrConflict)
	}
	return nil
}

// GetByID obtiene una orden con sus ítems. Retorna nil si no existe.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	ord, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, nil
	}
	items, err := uc.orderRepo.ItemsByOrder(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(ord, items), nil
}

// List lista órdenes con sus ítems, las más recientes primero.
func (uc *OrderUseCase) List(ctx context.Context, limit, offset int) ([]*dto.OrderResponse, error) {
	orders, err := uc.orderRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(orders))
	for _, ord := range orders {
		items, err := uc.orderRepo.ItemsByOrder(ord.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, toOrderResponse(ord, items))
	}
	return out, nil
}

// Receipt genera el PDF del recibo de una orden.
func (uc *OrderUseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	ord, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.orderRepo.ItemsByOrder(id)
	if err != nil {
		return nil, err
	}
	return uc.receipts.GenerateReceipt(ord, items)
}

func toOrderResponse(ord *entity.Order, items []*entity.OrderItem) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:            ord.ID,
		OrderNumber:   ord.OrderNumber,
		CustomerID:    ord.CustomerID,
		CustomerName:  ord.CustomerName,
		TotalAmount:   ord.TotalAmount,
		Status:        ord.Status,
		PaymentMethod: ord.PaymentMethod,
		Items:         make([]dto.OrderItemResponse, 0, len(items)),
		CreatedAt:     ord.CreatedAt,
		UpdatedAt:     ord.UpdatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return resp
}
