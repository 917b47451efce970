package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventario-pos/internal/application/dto"
	"github.com/tu-usuario/inventario-pos/internal/application/inventory"
	"github.com/tu-usuario/inventario-pos/internal/application/sales"
	"github.com/tu-usuario/inventario-pos/internal/domain"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
	"github.com/tu-usuario/inventario-pos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products        map[string]*entity.Product
	failUpdateStock bool
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	cp.StockByWarehouse = make(map[string]int, len(p.StockByWarehouse))
	for k, v := range p.StockByWarehouse {
		cp.StockByWarehouse[k] = v
	}
	return &cp, nil
}

func (f *fakeProductRepo) GetActiveBySKU(string) (*entity.Product, error) { return nil, nil }

func (f *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) UpdateStock(p *entity.Product) error {
	if f.failUpdateStock {
		return domain.ErrConflict
	}
	return f.Update(p)
}

func (f *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) ListActive() ([]*entity.Product, error)        { return nil, nil }
func (f *fakeProductRepo) Search(string, int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Delete(string) error                           { return nil }

type fakeMovementRepo struct {
	movements []*entity.InventoryMovement
}

func (f *fakeMovementRepo) Create(m *entity.InventoryMovement) error {
	f.movements = append(f.movements, m)
	return nil
}

func (f *fakeMovementRepo) ListByProduct(string, int) ([]*entity.InventoryMovement, error) {
	return nil, nil
}

func (f *fakeMovementRepo) ListByReference(referenceID string) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range f.movements {
		if m.ReferenceID == referenceID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeTxRunner struct {
	productRepo repository.ProductRepository
	movRepo     repository.InventoryMovementRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	return fn(f.productRepo, f.movRepo)
}

type fakeOrderRepo struct {
	orders map[string]*entity.SalesOrder
}

func (f *fakeOrderRepo) Create(o *entity.SalesOrder) error {
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) Update(o *entity.SalesOrder) error {
	if _, ok := f.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) List(repository.SalesOrderFilter) ([]*entity.SalesOrder, error) {
	return nil, nil
}

func (f *fakeOrderRepo) ListByDateRange(string, string) ([]*entity.SalesOrder, error) {
	return nil, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error { f.customers[c.ID] = c; return nil }
func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}
func (f *fakeCustomerRepo) GetActiveByEmail(string) (*entity.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) Update(*entity.Customer) error                     { return nil }
func (f *fakeCustomerRepo) List(int, int) ([]*entity.Customer, error)         { return nil, nil }
func (f *fakeCustomerRepo) Search(string, int) ([]*entity.Customer, error)    { return nil, nil }

type fixture struct {
	uc          *sales.UseCase
	orderRepo   *fakeOrderRepo
	productRepo *fakeProductRepo
	movRepo     *fakeMovementRepo
}

func newFixture(products ...*entity.Product) *fixture {
	productRepo := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		productRepo.products[p.ID] = p
	}
	movRepo := &fakeMovementRepo{}
	orderRepo := &fakeOrderRepo{orders: make(map[string]*entity.SalesOrder)}
	customerRepo := &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
	stock := inventory.NewUseCase(
		&fakeTxRunner{productRepo: productRepo, movRepo: movRepo},
		productRepo,
		movRepo,
	)
	log := logger.New(logger.Config{Level: "error"})
	return &fixture{
		uc:          sales.NewUseCase(orderRepo, productRepo, customerRepo, stock, log),
		orderRepo:   orderRepo,
		productRepo: productRepo,
		movRepo:     movRepo,
	}
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func producto(id string, price int64, stock map[string]int) *entity.Product {
	return &entity.Product{
		Base:             entity.Base{ID: id, Revision: 1},
		Name:             "Producto " + id,
		SKU:              "SKU-" + id,
		Price:            decimal.NewFromInt(price),
		StockByWarehouse: stock,
		IsActive:         true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_DescuentaStockYCalculaTotal(t *testing.T) {
	fx := newFixture(
		producto("p1", 50, map[string]int{"w1": 10}),
		producto("p2", 30, map[string]int{"w1": 5}),
	)

	order, err := fx.uc.Create(context.Background(), dto.CreateSalesOrderRequest{
		WarehouseID: "w1",
		Items: []dto.SalesOrderItemRequest{
			{ProductID: "p1", Quantity: 3, UnitPrice: dec(50), Discount: decimal.NewFromInt(10)},
			{ProductID: "p2", Quantity: 2, UnitPrice: dec(30)},
		},
	})
	require.NoError(t, err)

	// 3*50-10 + 2*30 = 200
	assert.True(t, decimal.NewFromInt(200).Equal(order.TotalAmount),
		"total esperado 200, obtenido %s", order.TotalAmount)

	// Defaults del flujo.
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "cash", order.PaymentMethod)
	assert.NotEmpty(t, order.OrderDate)

	// Snapshot de nombre y SKU.
	assert.Equal(t, "Producto p1", order.Items[0].ProductName)
	assert.Equal(t, "SKU-p1", order.Items[0].SKU)

	// Stock descontado y movimientos SALE referenciando la orden.
	p1, _ := fx.productRepo.GetByID("p1")
	p2, _ := fx.productRepo.GetByID("p2")
	assert.Equal(t, 7, p1.StockAt("w1"))
	assert.Equal(t, 3, p2.StockAt("w1"))

	movs, _ := fx.movRepo.ListByReference(order.ID)
	require.Len(t, movs, 2)
	for _, m := range movs {
		assert.Equal(t, entity.MovementTypeSale, m.MovementType)
		assert.Equal(t, entity.ReferenceTypeSalesOrder, m.ReferenceType)
		assert.Negative(t, m.QuantityChange)
	}
}

func TestCreate_StockInsuficiente(t *testing.T) {
	fx := newFixture(producto("p1", 50, map[string]int{"w1": 2}))

	_, err := fx.uc.Create(context.Background(), dto.CreateSalesOrderRequest{
		WarehouseID: "w1",
		Items:       []dto.SalesOrderItemRequest{{ProductID: "p1", Quantity: 5, UnitPrice: dec(50)}},
	})

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "p1", stockErr.ProductID)
	assert.Equal(t, "Producto p1", stockErr.ProductName)
	assert.Equal(t, 2, stockErr.Available)
	assert.Equal(t, 5, stockErr.Requested)

	// Nada quedó persistido ni descontado.
	assert.Empty(t, fx.orderRepo.orders, "la orden no debe persistirse")
	assert.Empty(t, fx.movRepo.movements)
	p, _ := fx.productRepo.GetByID("p1")
	assert.Equal(t, 2, p.StockAt("w1"), "el stock no debe cambiar")
}

func TestCreate_PrecioUnitarioObligatorio(t *testing.T) {
	fx := newFixture(producto("p1", 75, map[string]int{"w1": 10}))

	_, err := fx.uc.Create(context.Background(), dto.CreateSalesOrderRequest{
		WarehouseID: "w1",
		Items:       []dto.SalesOrderItemRequest{{ProductID: "p1", Quantity: 2}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cada ítem debe traer unit_price")

	// Cero explícito sí es válido (obsequio).
	order, err := fx.uc.Create(context.Background(), dto.CreateSalesOrderRequest{
		WarehouseID: "w1",
		Items:       []dto.SalesOrderItemRequest{{ProductID: "p1", Quantity: 2, UnitPrice: dec(0)}},
	})
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.IsZero())
}

func TestCreate_FalloDeDescuentoNoRevierteLaOrden(t *testing.T) {
	fx := newFixture(producto("p1", 50, map[string]int{"w1": 10}))
	fx.productRepo.failUpdateStock = true

	order, err := fx.uc.Create(context.Background(), dto.CreateSalesOrderRequest{
		WarehouseID: "w1",
		Items:       []dto.SalesOrderItemRequest{{ProductID: "p1", Quantity: 1, UnitPrice: dec(50)}},
	})
	require.NoError(t, err, "el fallo de stock posterior no propaga error")

	stored, _ := fx.orderRepo.GetByID(order.ID)
	require.NotNil(t, stored, "la orden persiste aunque el descuento falle")
	assert.Empty(t, fx.movRepo.movements, "el movimiento no se registra si la transacción falla")
}

func TestCreate_EntradaInvalida(t *testing.T) {
	fx := newFixture()

	_, err := fx.uc.Create(context.Background(), dto.CreateSalesOrderRequest{WarehouseID: "w1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin ítems")

	_, err = fx.uc.Create(context.Background(), dto.CreateSalesOrderRequest{
		Items: []dto.SalesOrderItemRequest{{ProductID: "p1", Quantity: 1, UnitPrice: dec(50)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin bodega")

	_, err = fx.uc.Create(context.Background(), dto.CreateSalesOrderRequest{
		WarehouseID: "w1",
		Status:      "cancelled",
		Items:       []dto.SalesOrderItemRequest{{ProductID: "p1", Quantity: 1, UnitPrice: dec(50)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "una orden no nace cancelada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancel
// ──────────────────────────────────────────────────────────────────────────────

func TestCancel_ReponeStock(t *testing.T) {
	fx := newFixture(producto("p1", 50, map[string]int{"w1": 10}))

	order, err := fx.uc.Create(context.Background(), dto.CreateSalesOrderRequest{
		WarehouseID: "w1",
		Items:       []dto.SalesOrderItemRequest{{ProductID: "p1", Quantity: 4, UnitPrice: dec(50)}},
	})
	require.NoError(t, err)
	p, _ := fx.productRepo.GetByID("p1")
	require.Equal(t, 6, p.StockAt("w1"))

	cancelled, err := fx.uc.Cancel(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)

	p, _ = fx.productRepo.GetByID("p1")
	assert.Equal(t, 10, p.StockAt("w1"), "la cancelación repone lo vendido")

	// La reposición queda como ADJUSTMENT con referencia de cancelación.
	movs, _ := fx.movRepo.ListByReference(order.ID)
	var restore *entity.InventoryMovement
	for _, m := range movs {
		if m.ReferenceType == entity.ReferenceTypeSalesCancel {
			restore = m
		}
	}
	require.NotNil(t, restore)
	assert.Equal(t, entity.MovementTypeAdjustment, restore.MovementType)
	assert.Equal(t, 4, restore.QuantityChange)
}

func TestCancel_DesdeDraft(t *testing.T) {
	fx := newFixture(producto("p1", 50, map[string]int{"w1": 10}))

	order, err := fx.uc.Create(context.Background(), dto.CreateSalesOrderRequest{
		WarehouseID: "w1",
		Status:      entity.OrderStatusDraft,
		Items:       []dto.SalesOrderItemRequest{{ProductID: "p1", Quantity: 3, UnitPrice: dec(50)}},
	})
	require.NoError(t, err)
	p, _ := fx.productRepo.GetByID("p1")
	require.Equal(t, 7, p.StockAt("w1"), "el borrador también descuenta stock al crearse")

	// Un borrador abandonado se cancela y devuelve lo descontado.
	cancelled, err := fx.uc.Cancel(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)

	p, _ = fx.productRepo.GetByID("p1")
	assert.Equal(t, 10, p.StockAt("w1"))
}

func TestCancel_DobleCancelacion(t *testing.T) {
	fx := newFixture(producto("p1", 50, map[string]int{"w1": 10}))

	order, err := fx.uc.Create(context.Background(), dto.CreateSalesOrderRequest{
		WarehouseID: "w1",
		Items:       []dto.SalesOrderItemRequest{{ProductID: "p1", Quantity: 1, UnitPrice: dec(50)}},
	})
	require.NoError(t, err)

	_, err = fx.uc.Cancel(context.Background(), order.ID)
	require.NoError(t, err)

	_, err = fx.uc.Cancel(context.Background(), order.ID)
	assert.ErrorIs(t, err, domain.ErrOrderCancelled, "cancelled es terminal")

	// El stock no se repone dos veces.
	p, _ := fx.productRepo.GetByID("p1")
	assert.Equal(t, 10, p.StockAt("w1"))
}

func TestCancel_OrdenInexistente(t *testing.T) {
	fx := newFixture()
	_, err := fx.uc.Cancel(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_SoloCamposEditables(t *testing.T) {
	fx := newFixture(producto("p1", 50, map[string]int{"w1": 10}))

	order, err := fx.uc.Create(context.Background(), dto.CreateSalesOrderRequest{
		WarehouseID: "w1",
		Items:       []dto.SalesOrderItemRequest{{ProductID: "p1", Quantity: 1, UnitPrice: dec(50)}},
	})
	require.NoError(t, err)

	paid := entity.PaymentStatusPaid
	notes := "pagado en efectivo"
	updated, err := fx.uc.Update(order.ID, dto.UpdateSalesOrderRequest{
		PaymentStatus: &paid,
		Notes:         &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, updated.PaymentStatus)
	assert.Equal(t, notes, updated.Notes)
	assert.Equal(t, order.Status, updated.Status, "el estado del flujo no cambia por Update")
	assert.True(t, order.TotalAmount.Equal(updated.TotalAmount))

	invalid := "reembolsado"
	_, err = fx.uc.Update(order.ID, dto.UpdateSalesOrderRequest{PaymentStatus: &invalid})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
