package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-pos/internal/domain"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
)

// UseCase libro mayor de inventario: todo cambio de stock pasa por AdjustStock,
// que actualiza el producto y deja un asiento inmutable en inventory_movements
// dentro de la misma transacción.
type UseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.InventoryMovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, productRepo: productRepo, movRepo: movRepo}
}

// AdjustStockInput entrada para un ajuste de stock.
// QuantityChange es el delta solicitado, con signo: negativo descuenta, positivo repone.
type AdjustStockInput struct {
	ProductID      string
	WarehouseID    string
	QuantityChange int
	MovementType   string
	ReferenceID    string
	ReferenceType  string
	Notes          string
}

// AdjustStock aplica el delta al stock del producto en la bodega indicada y
// registra el movimiento. El stock resultante nunca baja de cero: un delta que
// cruzaría el cero se fija en cero y no es un error. El movimiento registra el
// delta SOLICITADO, no el aplicado, así que el historial conserva la intención
// original aunque el stock haya tocado fondo.
func (uc *UseCase) AdjustStock(ctx context.Context, in AdjustStockInput) (*entity.Product, *entity.InventoryMovement, error) {
	if in.ProductID == "" || in.WarehouseID == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	switch in.MovementType {
	case entity.MovementTypeSale, entity.MovementTypePurchase,
		entity.MovementTypeAdjustment, entity.MovementTypeTransfer:
	default:
		return nil, nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	var (
		product  *entity.Product
		movement *entity.InventoryMovement
	)

	// Actualización del producto y asiento del movimiento en una sola transacción:
	// Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace).
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		p, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		// Clampa en cero; conserva la revisión leída para el CAS del Update.
		p.AdjustStock(in.WarehouseID, in.QuantityChange)
		if err := productRepo.UpdateStock(p); err != nil {
			return err
		}

		mov := &entity.InventoryMovement{
			ID:             uuid.New().String(),
			ProductID:      in.ProductID,
			WarehouseID:    in.WarehouseID,
			QuantityChange: in.QuantityChange,
			MovementType:   in.MovementType,
			ReferenceID:    in.ReferenceID,
			ReferenceType:  in.ReferenceType,
			Notes:          in.Notes,
			Timestamp:      now,
			CreatedAt:      now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		product = p
		movement = mov
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return product, movement, nil
}

// ListMovements historial de movimientos de un producto, más recientes primero.
func (uc *UseCase) ListMovements(productID string, limit int) ([]*entity.InventoryMovement, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 50
	}
	return uc.movRepo.ListByProduct(productID, limit)
}

// ListLowStock productos activos cuyo stock está en o por debajo de su punto de
// reorden. Con warehouseID se evalúa el stock de esa bodega; sin él, el total.
// Recorre todos los productos activos: el filtro es en memoria.
func (uc *UseCase) ListLowStock(warehouseID string) ([]*entity.Product, error) {
	products, err := uc.productRepo.ListActive()
	if err != nil {
		return nil, err
	}
	low := make([]*entity.Product, 0)
	for _, p := range products {
		qty := p.TotalStock()
		if warehouseID != "" {
			qty = p.StockAt(warehouseID)
		}
		if qty <= p.ReorderPoint {
			low = append(low, p)
		}
	}
	return low, nil
}
