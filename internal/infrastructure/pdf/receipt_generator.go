// Package pdf implementa la generación del recibo de venta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del comercio  │  N° Orden + Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + método de pago                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                       │
//	│  FOOTER: estado de la orden + leyenda                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/pos-backoffice/internal/application/order"
	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ order.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa order.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	storeName string
}

// NewMarotoReceiptGenerator construye el generador con el nombre del comercio.
func NewMarotoReceiptGenerator(storeName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{storeName: storeName}
}

// GenerateReceipt genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(ord *entity.Order, items []*entity.OrderItem) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo "+ord.OrderNumber, true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(ord))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(ord))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, it := range items {
		m.AddRows(itemRow(it))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(ord))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(ord))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReceiptGenerator) headerRow(ord *entity.Order) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de venta", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(ord.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New(ord.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func customerRow(ord *entity.Order) core.Row {
	name := ord.CustomerName
	if name == "" {
		name = "Consumidor final"
	}
	return row.New(10).Add(
		col.New(8).Add(
			text.New("Cliente: "+name, props.Text{Size: 9, Top: 2}),
		),
		col.New(4).Add(
			text.New("Pago: "+paymentLabel(ord.PaymentMethod), props.Text{
				Size: 9, Top: 2, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	headerRight := header
	headerRight.Align = align.Right
	return row.New(8).Add(
		col.New(2).Add(text.New("Cant.", header)),
		col.New(6).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("P. Unit", headerRight)),
		col.New(2).Add(text.New("Subtotal", headerRight)),
	)
}

func itemRow(it *entity.OrderItem) core.Row {
	cell := props.Text{Size: 9, Top: 1}
	cellRight := cell
	cellRight.Align = align.Right
	name := it.ProductName
	if name == "" {
		name = it.ProductID
	}
	return row.New(7).Add(
		col.New(2).Add(text.New(strconv.FormatInt(it.Quantity, 10), cell)),
		col.New(6).Add(text.New(name, cell)),
		col.New(2).Add(text.New(it.UnitPrice.StringFixed(2), cellRight)),
		col.New(2).Add(text.New(it.Subtotal.StringFixed(2), cellRight)),
	)
}

func totalRow(ord *entity.Order) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
		})),
		col.New(2).Add(text.New(ord.TotalAmount.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	)
}

func footerRow(ord *entity.Order) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Estado: %s | Gracias por su compra", statusLabel(ord.Status)), props.Text{
				Size: 8, Color: colorGray, Align: align.Center, Top: 2,
			}),
		),
	)
}

func paymentLabel(method string) string {
	switch method {
	case entity.PaymentCash:
		return "Efectivo"
	case entity.PaymentCard:
		return "Tarjeta"
	default:
		return "Otro"
	}
}

func statusLabel(status string) string {
	switch status {
	case entity.OrderStatusPending:
		return "Pendiente"
	case entity.OrderStatusProcessing:
		return "En proceso"
	case entity.OrderStatusCompleted:
		return "Completada"
	case entity.OrderStatusCancelled:
		return "Cancelada"
	default:
		return status
	}
}
