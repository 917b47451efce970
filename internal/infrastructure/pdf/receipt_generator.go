// Package pdf genera el recibo de venta en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  N° Orden + Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Bodega                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | SKU | P.Unit | Desc. | Total      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: TOTAL                                             │
//	│  FOOTER: Estado y método de pago + notas                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

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

	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReceiptGenerator genera recibos de venta en PDF.
type ReceiptGenerator struct {
	businessName string
}

// NewReceiptGenerator construye el generador con el nombre del negocio para el encabezado.
func NewReceiptGenerator(businessName string) *ReceiptGenerator {
	if businessName == "" {
		businessName = "Punto de Venta"
	}
	return &ReceiptGenerator{businessName: businessName}
}

// GenerateReceipt genera el recibo de la orden y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateReceipt(order *entity.SalesOrder) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de Venta", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(order.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order))
	m.AddRows(line.NewRow(2))
	for _, r := range footerRows(order) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y N° de orden + fecha (der).
func (g *ReceiptGenerator) headerRow(order *entity.SalesOrder) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(order.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+order.OrderDate, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente y la bodega de despacho.
func customerRow(order *entity.SalesOrder) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Bodega: %s",
				nonEmpty(order.CustomerName, "Mostrador"),
				order.WarehouseID,
			), props.Text{Size: 9, Top: 7}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 4, align.Left),
		h("SKU", 2, align.Left),
		h("P.Unit.", 2, align.Right),
		h("Desc.", 1, align.Right),
		h("Total", 2, align.Right),
	)
}

// tableItemRows: una fila por ítem de la orden.
func tableItemRows(items []entity.SalesOrderItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				it.SKU,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				"$"+it.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				"$"+it.Discount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+it.LineTotal().StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: total de la orden alineado a la derecha.
func totalsRow(order *entity.SalesOrder) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 1,
			}),
		),
		col.New(3).Add(
			text.New("$"+order.TotalAmount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 1,
			}),
		),
	)
}

// footerRows: estado y método de pago, más notas si las hay.
func footerRows(order *entity.SalesOrder) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Pago: %s (%s)   |   Estado de la orden: %s",
				strings.ToUpper(order.PaymentStatus),
				order.PaymentMethod,
				order.Status,
			), props.Text{Size: 8, Color: colorGray, Top: 1}),
		)),
	}
	if order.Notes != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Notas: "+order.Notes, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New("Gracias por su compra. Conserve este recibo como soporte de la transacción.",
			props.Text{Size: 7, Color: colorGray, Top: 2, Align: align.Center}),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// shortID primeros 8 caracteres del UUID, en mayúsculas.
func shortID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}
