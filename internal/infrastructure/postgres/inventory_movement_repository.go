package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

const movementColumns = `id, product_id, warehouse_id, quantity_change, movement_type,
	reference_id, reference_type, notes, ts, created_at`

// InventoryMovementRepo implementación del puerto InventoryMovementRepository
// sobre PostgreSQL. Solo inserta y lee: la tabla es un rastro inmutable.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

func (r *InventoryMovementRepo) Create(movement *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (id, product_id, warehouse_id, quantity_change, movement_type,
			reference_id, reference_type, notes, ts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.WarehouseID, movement.QuantityChange,
		movement.MovementType, movement.ReferenceID, movement.ReferenceType,
		movement.Notes, movement.Timestamp, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory movement: %w", err)
	}
	return nil
}

func (r *InventoryMovementRepo) scanRows(rows pgx.Rows) ([]*entity.InventoryMovement, error) {
	defer rows.Close()
	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.WarehouseID, &m.QuantityChange, &m.MovementType,
			&m.ReferenceID, &m.ReferenceType, &m.Notes, &m.Timestamp, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *InventoryMovementRepo) ListByProduct(productID string, limit int) ([]*entity.InventoryMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements
		WHERE product_id = $1 ORDER BY ts DESC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	return r.scanRows(rows)
}

func (r *InventoryMovementRepo) ListByReference(referenceID string) ([]*entity.InventoryMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements
		WHERE reference_id = $1 ORDER BY ts ASC`
	rows, err := r.q.Query(context.Background(), query, referenceID)
	if err != nil {
		return nil, fmt.Errorf("list movements by reference: %w", err)
	}
	return r.scanRows(rows)
}
