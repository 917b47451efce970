package excel_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventario-pos/internal/application/dto"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/infrastructure/excel"
	"github.com/xuri/excelize/v2"
)

func TestExportProducts(t *testing.T) {
	e := excel.NewExporter()

	out, err := e.ExportProducts([]*entity.Product{
		{
			Base:             entity.Base{ID: "p1"},
			Name:             "Café molido 500g",
			SKU:              "CAF-500",
			Price:            decimal.NewFromInt(25),
			StockByWarehouse: map[string]int{"w1": 4, "w2": 6},
			IsActive:         true,
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)

	// El libro generado debe poder reabrirse y conservar los datos.
	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Productos", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Café molido 500g", name)

	sku, err := f.GetCellValue("Productos", "B2")
	require.NoError(t, err)
	assert.Equal(t, "CAF-500", sku)

	total, err := f.GetCellValue("Productos", "I2")
	require.NoError(t, err)
	assert.Equal(t, "10", total, "la columna de stock lleva el total entre bodegas")
}

func TestExportProducts_Vacio(t *testing.T) {
	e := excel.NewExporter()

	out, err := e.ExportProducts(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Productos", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Nombre", header, "sin productos el libro conserva los encabezados")
}

func TestExportSalesSummary(t *testing.T) {
	e := excel.NewExporter()

	out, err := e.ExportSalesSummary(&dto.SalesSummary{
		StartDate:    "2026-01-01",
		EndDate:      "2026-01-31",
		TotalOrders:  3,
		TotalRevenue: decimal.NewFromInt(160),
		TopProducts: []dto.TopProduct{
			{ProductID: "p1", ProductName: "Café molido 500g", SKU: "CAF-500", TotalQuantity: 4, TotalRevenue: decimal.NewFromInt(100)},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Resumen")
	assert.Contains(t, sheets, "Top productos")

	top, err := f.GetCellValue("Top productos", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Café molido 500g", top)

	qty, err := f.GetCellValue("Top productos", "C2")
	require.NoError(t, err)
	assert.Equal(t, "4", qty)
}
