// Package excel genera exportaciones XLSX de productos y reportes de ventas.
package excel

import (
	"bytes"
	"fmt"

	"github.com/tu-usuario/inventario-pos/internal/application/dto"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

// Exporter construye libros de Excel a partir de entidades del dominio.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter {
	return &Exporter{}
}

var productHeaders = []string{
	"Nombre", "SKU", "Código de barras", "Categoría", "Precio", "Costo",
	"Unidad", "Punto de reorden", "Stock total", "Activo",
}

// ExportProducts genera un libro con el listado de productos y su stock total.
func (e *Exporter) ExportProducts(products []*entity.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Productos"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	for i, h := range productHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for rowIdx, p := range products {
		row := rowIdx + 2
		activo := "No"
		if p.IsActive {
			activo = "Sí"
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.SKU)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.Barcode)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.CategoryID)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.Price.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), p.CostPrice.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), p.Unit)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), p.ReorderPoint)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), p.TotalStock())
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), activo)
	}

	colWidths := []float64{28, 14, 16, 24, 12, 12, 10, 14, 12, 8}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	return fileBytes(f)
}

// ExportSalesSummary genera un libro con dos hojas: totales del rango y
// ranking de productos más vendidos.
func (e *Exporter) ExportSalesSummary(summary *dto.SalesSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	// Hoja de totales
	totals := "Resumen"
	f.SetSheetName("Sheet1", totals)
	rows := [][2]any{
		{"Desde", summary.StartDate},
		{"Hasta", summary.EndDate},
		{"Bodega", summary.WarehouseID},
		{"Órdenes totales", summary.TotalOrders},
		{"Órdenes completadas", summary.CompletedOrders},
		{"Órdenes canceladas", summary.CancelledOrders},
		{"Ingreso total", summary.TotalRevenue.InexactFloat64()},
		{"Órdenes pagadas", summary.PaymentBreakdown.Paid},
		{"Órdenes pendientes de pago", summary.PaymentBreakdown.Pending},
	}
	for i, r := range rows {
		f.SetCellValue(totals, fmt.Sprintf("A%d", i+1), r[0])
		f.SetCellValue(totals, fmt.Sprintf("B%d", i+1), r[1])
		f.SetCellStyle(totals, fmt.Sprintf("A%d", i+1), fmt.Sprintf("A%d", i+1), boldStyle)
	}
	f.SetColWidth(totals, "A", "A", 28)
	f.SetColWidth(totals, "B", "B", 24)

	// Hoja de productos más vendidos
	top := "Top productos"
	if _, err := f.NewSheet(top); err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	headers := []string{"Producto", "SKU", "Cantidad vendida", "Ingreso"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(top, cell, h)
		f.SetCellStyle(top, cell, cell, boldStyle)
	}
	for rowIdx, tp := range summary.TopProducts {
		row := rowIdx + 2
		f.SetCellValue(top, fmt.Sprintf("A%d", row), tp.ProductName)
		f.SetCellValue(top, fmt.Sprintf("B%d", row), tp.SKU)
		f.SetCellValue(top, fmt.Sprintf("C%d", row), tp.TotalQuantity)
		f.SetCellValue(top, fmt.Sprintf("D%d", row), tp.TotalRevenue.InexactFloat64())
	}
	f.SetColWidth(top, "A", "A", 28)
	f.SetColWidth(top, "B", "D", 16)

	return fileBytes(f)
}

func fileBytes(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
