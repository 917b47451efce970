package purchases_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventario-pos/internal/application/dto"
	"github.com/tu-usuario/inventario-pos/internal/application/inventory"
	"github.com/tu-usuario/inventario-pos/internal/application/purchases"
	"github.com/tu-usuario/inventario-pos/internal/domain"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
	"github.com/tu-usuario/inventario-pos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
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

func (f *fakeProductRepo) UpdateStock(p *entity.Product) error { return f.Update(p) }

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

type fakePurchaseRepo struct {
	orders map[string]*entity.PurchaseOrder
}

func (f *fakePurchaseRepo) Create(o *entity.PurchaseOrder) error {
	f.orders[o.ID] = o
	return nil
}

func (f *fakePurchaseRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakePurchaseRepo) Update(o *entity.PurchaseOrder) error {
	if _, ok := f.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakePurchaseRepo) List(repository.PurchaseOrderFilter) ([]*entity.PurchaseOrder, error) {
	return nil, nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (f *fakeSupplierRepo) Create(s *entity.Supplier) error { f.suppliers[s.ID] = s; return nil }
func (f *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return f.suppliers[id], nil
}
func (f *fakeSupplierRepo) Update(*entity.Supplier) error             { return nil }
func (f *fakeSupplierRepo) List(int, int) ([]*entity.Supplier, error) { return nil, nil }

type fixture struct {
	uc          *purchases.UseCase
	orderRepo   *fakePurchaseRepo
	productRepo *fakeProductRepo
	movRepo     *fakeMovementRepo
}

func newFixture() *fixture {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {
			Base:             entity.Base{ID: "p1", Revision: 1},
			Name:             "Harina 1kg",
			SKU:              "HAR-1",
			CostPrice:        decimal.NewFromInt(8),
			StockByWarehouse: map[string]int{"w1": 2},
			IsActive:         true,
		},
	}}
	movRepo := &fakeMovementRepo{}
	orderRepo := &fakePurchaseRepo{orders: make(map[string]*entity.PurchaseOrder)}
	supplierRepo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"s1": {Base: entity.Base{ID: "s1"}, Name: "Distribuidora Norte"},
	}}
	stock := inventory.NewUseCase(
		&fakeTxRunner{productRepo: productRepo, movRepo: movRepo},
		productRepo,
		movRepo,
	)
	log := logger.New(logger.Config{Level: "error"})
	return &fixture{
		uc:          purchases.NewUseCase(orderRepo, productRepo, supplierRepo, stock, log),
		orderRepo:   orderRepo,
		productRepo: productRepo,
		movRepo:     movRepo,
	}
}

func crearOrden(t *testing.T, fx *fixture) *entity.PurchaseOrder {
	t.Helper()
	order, err := fx.uc.Create(dto.CreatePurchaseOrderRequest{
		SupplierID:  "s1",
		WarehouseID: "w1",
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: "p1", Quantity: 10, CostPrice: decimal.NewFromInt(7)},
		},
	})
	require.NoError(t, err)
	return order
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseCreate_PendingConSnapshotYTotal(t *testing.T) {
	fx := newFixture()
	order := crearOrden(t, fx)

	assert.Equal(t, entity.PurchaseStatusPending, order.Status)
	assert.Equal(t, "Distribuidora Norte", order.SupplierName)
	assert.Equal(t, "Harina 1kg", order.Items[0].ProductName)
	assert.Equal(t, "HAR-1", order.Items[0].SKU)
	assert.True(t, decimal.NewFromInt(70).Equal(order.TotalCost),
		"total esperado 10*7=70, obtenido %s", order.TotalCost)

	// Crear la orden no mueve stock.
	p, _ := fx.productRepo.GetByID("p1")
	assert.Equal(t, 2, p.StockAt("w1"))
	assert.Empty(t, fx.movRepo.movements)
}

func TestPurchaseCreate_CostoDelProductoPorDefecto(t *testing.T) {
	fx := newFixture()

	order, err := fx.uc.Create(dto.CreatePurchaseOrderRequest{
		SupplierID:  "s1",
		WarehouseID: "w1",
		Items:       []dto.PurchaseOrderItemRequest{{ProductID: "p1", Quantity: 3}},
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(8).Equal(order.Items[0].CostPrice),
		"sin costo explícito se usa el del producto")
	assert.True(t, decimal.NewFromInt(24).Equal(order.TotalCost))
}

func TestPurchaseCreate_ProveedorInexistente(t *testing.T) {
	fx := newFixture()

	_, err := fx.uc.Create(dto.CreatePurchaseOrderRequest{
		SupplierID:  "no-existe",
		WarehouseID: "w1",
		Items:       []dto.PurchaseOrderItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseMarkOrdered_SoloDesdePending(t *testing.T) {
	fx := newFixture()
	order := crearOrden(t, fx)

	ordered, err := fx.uc.MarkOrdered(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusOrdered, ordered.Status)

	_, err = fx.uc.MarkOrdered(order.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "ordered -> ordered no es válido")
}

func TestPurchaseReceive_SumaStock(t *testing.T) {
	fx := newFixture()
	order := crearOrden(t, fx)

	received, err := fx.uc.Receive(context.Background(), order.ID)
	require.NoError(t, err, "recibir directo desde pending es válido")
	assert.Equal(t, entity.PurchaseStatusReceived, received.Status)

	p, _ := fx.productRepo.GetByID("p1")
	assert.Equal(t, 12, p.StockAt("w1"), "2 existentes + 10 recibidos")

	movs, _ := fx.movRepo.ListByReference(order.ID)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypePurchase, movs[0].MovementType)
	assert.Equal(t, entity.ReferenceTypePurchaseOrder, movs[0].ReferenceType)
	assert.Equal(t, 10, movs[0].QuantityChange)
}

func TestPurchaseReceive_NoEsRepetible(t *testing.T) {
	fx := newFixture()
	order := crearOrden(t, fx)

	_, err := fx.uc.Receive(context.Background(), order.ID)
	require.NoError(t, err)

	_, err = fx.uc.Receive(context.Background(), order.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "recibir dos veces duplicaría el stock")

	p, _ := fx.productRepo.GetByID("p1")
	assert.Equal(t, 12, p.StockAt("w1"))
}

func TestPurchaseCancel_NoDesdeReceived(t *testing.T) {
	fx := newFixture()
	order := crearOrden(t, fx)

	_, err := fx.uc.Receive(context.Background(), order.ID)
	require.NoError(t, err)

	_, err = fx.uc.Cancel(order.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "la mercancía ya entró a bodega")
}

func TestPurchaseCancel_DesdePendingSinMoverStock(t *testing.T) {
	fx := newFixture()
	order := crearOrden(t, fx)

	cancelled, err := fx.uc.Cancel(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusCancelled, cancelled.Status)

	p, _ := fx.productRepo.GetByID("p1")
	assert.Equal(t, 2, p.StockAt("w1"), "cancelar una compra no toca el stock")
	assert.Empty(t, fx.movRepo.movements)

	_, err = fx.uc.Cancel(order.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "cancelled es terminal")
}
