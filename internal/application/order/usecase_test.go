package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/application/order"
	"github.com/jhoicas/pos-backoffice/internal/domain"
	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// fakeTxRunner emula la semántica todo-o-nada de la transacción real: antes de
// ejecutar el callback toma un snapshot del estado y, si el callback falla,
// lo restaura. Así los tests pueden verificar que un error a mitad de venta
// no deja ni cabecera, ni ítems, ni stock descontado.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products  map[string]*entity.Product
	customers map[string]*entity.Customer
	orders    map[string]*entity.Order
	items     map[string][]*entity.OrderItem // por orderID
	locked    []string                       // IDs pasados a GetForUpdate, en orden de llamada
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:  make(map[string]*entity.Product),
		customers: make(map[string]*entity.Customer),
		orders:    make(map[string]*entity.Order),
		items:     make(map[string][]*entity.OrderItem),
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := newFakeStore()
	for id, p := range s.products {
		c := *p
		cp.products[id] = &c
	}
	for id, c := range s.customers {
		cc := *c
		cp.customers[id] = &cc
	}
	for id, o := range s.orders {
		oo := *o
		cp.orders[id] = &oo
	}
	for id, list := range s.items {
		for _, it := range list {
			ii := *it
			cp.items[id] = append(cp.items[id], &ii)
		}
	}
	return cp
}

func (s *fakeStore) restore(from *fakeStore) {
	s.products = from.products
	s.customers = from.customers
	s.orders = from.orders
	s.items = from.items
}

type fakeCustomerRepo struct{ s *fakeStore }

func (r *fakeCustomerRepo) Create(c *entity.Customer) error { r.s.customers[c.ID] = c; return nil }
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.s.customers[id], nil
}
func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) { return nil, nil }
func (r *fakeCustomerRepo) Update(c *entity.Customer) error                    { return nil }
func (r *fakeCustomerRepo) Delete(id string) error                             { return nil }

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	r.s.locked = append(r.s.locked, id)
	return r.s.products[id], nil
}
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Update(p *entity.Product) error                    { return nil }
func (r *fakeProductRepo) DecrementStock(productID string, quantity int64) error {
	p, ok := r.s.products[productID]
	if !ok || p.Stock < quantity {
		return domain.ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}
func (r *fakeProductRepo) Delete(id string) error                  { return nil }
func (r *fakeProductRepo) AddImage(img *entity.ProductImage) error { return nil }
func (r *fakeProductRepo) ImagesByProduct(productID string) ([]*entity.ProductImage, error) {
	return nil, nil
}
func (r *fakeProductRepo) HasOrderItems(productID string) (bool, error) { return false, nil }

type fakeOrderRepo struct{ s *fakeStore }

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	r.s.orders[o.ID] = &cp
	return nil
}
func (r *fakeOrderRepo) CreateItem(it *entity.OrderItem) error {
	cp := *it
	r.s.items[it.OrderID] = append(r.s.items[it.OrderID], &cp)
	return nil
}
func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) { return r.s.orders[id], nil }
func (r *fakeOrderRepo) ItemsByOrder(orderID string) ([]*entity.OrderItem, error) {
	return r.s.items[orderID], nil
}
func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		out = append(out, o)
	}
	return out, nil
}
func (r *fakeOrderRepo) UpdateStatus(id, status string) error {
	o, ok := r.s.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

type fakeTxRunner struct{ s *fakeStore }

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(repository.OrderRepository, repository.ProductRepository) error) error {
	snap := tx.s.snapshot()
	if err := fn(&fakeOrderRepo{s: tx.s}, &fakeProductRepo{s: tx.s}); err != nil {
		tx.s.restore(snap)
		return err
	}
	return nil
}

type fakeReceipts struct{}

func (fakeReceipts) GenerateReceipt(o *entity.Order, items []*entity.OrderItem) ([]byte, error) {
	return []byte("%PDF-1.4 fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

func setupUseCase() (*order.OrderUseCase, *fakeStore) {
	s := newFakeStore()
	s.customers["cust-1"] = &entity.Customer{ID: "cust-1", Name: "Alice"}
	s.products["prod-1"] = &entity.Product{
		ID:    "prod-1",
		Name:  "Widget",
		Price: decimal.RequireFromString("9.99"),
		Stock: 5,
	}
	s.products["prod-2"] = &entity.Product{
		ID:    "prod-2",
		Name:  "Gadget",
		Price: decimal.RequireFromString("25.00"),
		Stock: 2,
	}
	uc := order.NewOrderUseCase(&fakeTxRunner{s: s}, &fakeOrderRepo{s: s}, &fakeCustomerRepo{s: s}, fakeReceipts{})
	return uc, s
}

// ──────────────────────────────────────────────────────────────────────────────
// PlaceOrder
// ──────────────────────────────────────────────────────────────────────────────

// Venta feliz: stock 5, se venden 3 → stock 2 y total 29.97.
func TestPlaceOrder_DescuentaStockYCalculaTotal(t *testing.T) {
	uc, s := setupUseCase()

	resp, err := uc.PlaceOrder(context.Background(), dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.OrderItemRequest{{ProductID: "prod-1", Quantity: 3}},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, int64(2), s.products["prod-1"].Stock, "el stock debe quedar en 2")
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("29.97")),
		"total esperado 29.97, obtenido %s", resp.TotalAmount)
	assert.Equal(t, entity.OrderStatusPending, resp.Status)
	assert.Equal(t, "Alice", resp.CustomerName, "la orden guarda el snapshot del nombre del cliente")
	assert.Equal(t, entity.PaymentCash, resp.PaymentMethod, "sin método de pago se asume efectivo")
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].UnitPrice.Equal(decimal.RequireFromString("9.99")),
		"sin precio en el request se usa el precio vigente del producto")
	assert.Contains(t, resp.OrderNumber, "ORD-")
}

// El subtotal de cada línea siempre se recalcula en el servidor.
func TestPlaceOrder_RespetaPrecioDelRequest(t *testing.T) {
	uc, _ := setupUseCase()

	resp, err := uc.PlaceOrder(context.Background(), dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items: []dto.OrderItemRequest{
			{ProductID: "prod-1", Quantity: 2, UnitPrice: decimal.RequireFromString("8.50")},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Items[0].Subtotal.Equal(decimal.RequireFromString("17.00")))
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("17.00")))
}

// Stock insuficiente en un ítem → falla toda la venta y nada queda persistido.
func TestPlaceOrder_StockInsuficiente_RollbackTotal(t *testing.T) {
	uc, s := setupUseCase()

	// Primera venta agota parte del stock: quedan 2 de prod-1.
	_, err := uc.PlaceOrder(context.Background(), dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.OrderItemRequest{{ProductID: "prod-1", Quantity: 3}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), s.products["prod-1"].Stock)
	ordersBefore := len(s.orders)

	// Segunda venta pide 3 de prod-1 (solo hay 2) y 1 de prod-2.
	_, err = uc.PlaceOrder(context.Background(), dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items: []dto.OrderItemRequest{
			{ProductID: "prod-2", Quantity: 1},
			{ProductID: "prod-1", Quantity: 3},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada de la segunda venta quedó: ni orden, ni stock de prod-2 tocado.
	assert.Equal(t, ordersBefore, len(s.orders), "la venta fallida no debe dejar cabecera")
	assert.Equal(t, int64(2), s.products["prod-1"].Stock, "el stock de prod-1 no cambia")
	assert.Equal(t, int64(2), s.products["prod-2"].Stock, "el stock de prod-2 se restaura")
}

// Los bloqueos de fila se toman en orden ascendente de producto aunque el
// request liste los ítems al revés; dos ventas concurrentes sobre los mismos
// productos nunca se esperan en orden cruzado.
func TestPlaceOrder_BloqueaProductosEnOrdenEstable(t *testing.T) {
	uc, s := setupUseCase()

	resp, err := uc.PlaceOrder(context.Background(), dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items: []dto.OrderItemRequest{
			{ProductID: "prod-2", Quantity: 1},
			{ProductID: "prod-1", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"prod-1", "prod-2"}, s.locked)
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("34.99")))
}

// Cliente inexistente → ErrNotFound antes de tocar nada.
func TestPlaceOrder_ClienteInexistente(t *testing.T) {
	uc, s := setupUseCase()

	_, err := uc.PlaceOrder(context.Background(), dto.CreateOrderRequest{
		CustomerID: "no-existe",
		Items:      []dto.OrderItemRequest{{ProductID: "prod-1", Quantity: 1}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.orders)
	assert.Equal(t, int64(5), s.products["prod-1"].Stock)
}

// Producto inexistente dentro de la transacción → ErrNotFound y rollback.
func TestPlaceOrder_ProductoInexistente(t *testing.T) {
	uc, s := setupUseCase()

	_, err := uc.PlaceOrder(context.Background(), dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.OrderItemRequest{{ProductID: "prod-fantasma", Quantity: 1}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.orders)
}

// Validación de ítems: vacíos, cantidad cero y precio negativo.
func TestPlaceOrder_ItemsInvalidos(t *testing.T) {
	uc, _ := setupUseCase()
	ctx := context.Background()

	cases := []struct {
		name  string
		items []dto.OrderItemRequest
	}{
		{"sin items", nil},
		{"cantidad cero", []dto.OrderItemRequest{{ProductID: "prod-1", Quantity: 0}}},
		{"cantidad negativa", []dto.OrderItemRequest{{ProductID: "prod-1", Quantity: -2}}},
		{"producto vacío", []dto.OrderItemRequest{{ProductID: "", Quantity: 1}}},
		{"precio negativo", []dto.OrderItemRequest{
			{ProductID: "prod-1", Quantity: 1, UnitPrice: decimal.RequireFromString("-1")},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.PlaceOrder(ctx, dto.CreateOrderRequest{CustomerID: "cust-1", Items: tc.items})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// Método de pago desconocido → ErrInvalidInput.
func TestPlaceOrder_MetodoPagoInvalido(t *testing.T) {
	uc, _ := setupUseCase()

	_, err := uc.PlaceOrder(context.Background(), dto.CreateOrderRequest{
		CustomerID:    "cust-1",
		PaymentMethod: "cheque",
		Items:         []dto.OrderItemRequest{{ProductID: "prod-1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus
// ──────────────────────────────────────────────────────────────────────────────

func placeTestOrder(t *testing.T, uc *order.OrderUseCase) string {
	t.Helper()
	resp, err := uc.PlaceOrder(context.Background(), dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.OrderItemRequest{{ProductID: "prod-1", Quantity: 1}},
	})
	require.NoError(t, err)
	return resp.ID
}

func TestUpdateStatus_TransicionValida(t *testing.T) {
	uc, s := setupUseCase()
	id := placeTestOrder(t, uc)

	require.NoError(t, uc.UpdateStatus(context.Background(), id, entity.OrderStatusCompleted))
	assert.Equal(t, entity.OrderStatusCompleted, s.orders[id].Status)
}

// Reaplicar el mismo estado es idempotente.
func TestUpdateStatus_Idempotente(t *testing.T) {
	uc, _ := setupUseCase()
	id := placeTestOrder(t, uc)
	ctx := context.Background()

	require.NoError(t, uc.UpdateStatus(ctx, id, entity.OrderStatusProcessing))
	require.NoError(t, uc.UpdateStatus(ctx, id, entity.OrderStatusProcessing))
}

func TestUpdateStatus_EstadoInvalido(t *testing.T) {
	uc, _ := setupUseCase()
	id := placeTestOrder(t, uc)

	err := uc.UpdateStatus(context.Background(), id, "enviado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_OrdenInexistente(t *testing.T) {
	uc, _ := setupUseCase()

	err := uc.UpdateStatus(context.Background(), "no-existe", entity.OrderStatusCancelled)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / List / Receipt
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_OrdenInexistente_RetornaNil(t *testing.T) {
	uc, _ := setupUseCase()

	resp, err := uc.GetByID(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestGetByID_IncluyeItems(t *testing.T) {
	uc, _ := setupUseCase()
	id := placeTestOrder(t, uc)

	resp, err := uc.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Widget", resp.Items[0].ProductName)
}

func TestReceipt_GeneraPDF(t *testing.T) {
	uc, _ := setupUseCase()
	id := placeTestOrder(t, uc)

	pdfBytes, err := uc.Receipt(context.Background(), id)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}

func TestReceipt_OrdenInexistente(t *testing.T) {
	uc, _ := setupUseCase()

	_, err := uc.Receipt(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
