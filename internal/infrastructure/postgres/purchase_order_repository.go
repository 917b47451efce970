package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const purchaseOrderColumns = `id, revision, order_date, supplier_id, supplier_name, warehouse_id,
	items, total_cost, expected_delivery, notes, status, created_at, updated_at`

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, revision, order_date, supplier_id, supplier_name, warehouse_id,
			items, total_cost, expected_delivery, notes, status, created_at, updated_at)
		VALUES ($1, 1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderDate, order.SupplierID, order.SupplierName, order.WarehouseID,
		order.Items, order.TotalCost, order.ExpectedDelivery, order.Notes, order.Status,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	order.Revision = 1
	return nil
}

func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE id = $1`
	var o entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Revision, &o.OrderDate, &o.SupplierID, &o.SupplierName, &o.WarehouseID,
		&o.Items, &o.TotalCost, &o.ExpectedDelivery, &o.Notes, &o.Status,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return &o, nil
}

// Update escritura condicional por revisión.
func (r *PurchaseOrderRepo) Update(order *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders
		SET supplier_id = $3, supplier_name = $4, expected_delivery = $5, notes = $6,
			status = $7, revision = revision + 1, updated_at = now()
		WHERE id = $1 AND revision = $2
		RETURNING revision, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		order.ID, order.Revision, order.SupplierID, order.SupplierName,
		order.ExpectedDelivery, order.Notes, order.Status,
	).Scan(&order.Revision, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staleOrMissing(r.q, "purchase_orders", order.ID)
		}
		return fmt.Errorf("update purchase order: %w", err)
	}
	return nil
}

// List lista órdenes de compra con filtros de igualdad exacta.
func (r *PurchaseOrderRepo) List(filter repository.PurchaseOrderFilter) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE 1=1`
	args := []any{}
	if filter.SupplierID != "" {
		args = append(args, filter.SupplierID)
		query += fmt.Sprintf(` AND supplier_id = $%d`, len(args))
	}
	if filter.WarehouseID != "" {
		args = append(args, filter.WarehouseID)
		query += fmt.Sprintf(` AND warehouse_id = $%d`, len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	query += fmt.Sprintf(` ORDER BY order_date DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(
			&o.ID, &o.Revision, &o.OrderDate, &o.SupplierID, &o.SupplierName, &o.WarehouseID,
			&o.Items, &o.TotalCost, &o.ExpectedDelivery, &o.Notes, &o.Status,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
