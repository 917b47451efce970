package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
)

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

const salesOrderColumns = `id, revision, order_date, customer_id, customer_name, warehouse_id,
	items, total_amount, payment_status, payment_method, notes, status, created_at, updated_at`

// SalesOrderRepo implementación del puerto SalesOrderRepository sobre PostgreSQL.
// Las líneas van embebidas como JSONB: no son direccionables por sí solas y
// llevan el nombre/SKU congelados al momento de la venta.
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

func (r *SalesOrderRepo) Create(order *entity.SalesOrder) error {
	query := `
		INSERT INTO sales_orders (id, revision, order_date, customer_id, customer_name, warehouse_id,
			items, total_amount, payment_status, payment_method, notes, status, created_at, updated_at)
		VALUES ($1, 1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderDate, order.CustomerID, order.CustomerName, order.WarehouseID,
		order.Items, order.TotalAmount, order.PaymentStatus, order.PaymentMethod,
		order.Notes, order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sales order: %w", err)
	}
	order.Revision = 1
	return nil
}

func (r *SalesOrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders WHERE id = $1`
	var o entity.SalesOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Revision, &o.OrderDate, &o.CustomerID, &o.CustomerName, &o.WarehouseID,
		&o.Items, &o.TotalAmount, &o.PaymentStatus, &o.PaymentMethod,
		&o.Notes, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales order: %w", err)
	}
	return &o, nil
}

// Update escritura condicional por revisión. Persiste también status: la
// transición a cancelled entra por aquí; el resto de campos de workflow los
// protege el caso de uso, no el adaptador.
func (r *SalesOrderRepo) Update(order *entity.SalesOrder) error {
	query := `
		UPDATE sales_orders
		SET customer_id = $3, customer_name = $4, payment_status = $5, payment_method = $6,
			notes = $7, status = $8, revision = revision + 1, updated_at = now()
		WHERE id = $1 AND revision = $2
		RETURNING revision, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		order.ID, order.Revision, order.CustomerID, order.CustomerName,
		order.PaymentStatus, order.PaymentMethod, order.Notes, order.Status,
	).Scan(&order.Revision, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staleOrMissing(r.q, "sales_orders", order.ID)
		}
		return fmt.Errorf("update sales order: %w", err)
	}
	return nil
}

func (r *SalesOrderRepo) scanRows(rows pgx.Rows) ([]*entity.SalesOrder, error) {
	defer rows.Close()
	var list []*entity.SalesOrder
	for rows.Next() {
		var o entity.SalesOrder
		if err := rows.Scan(
			&o.ID, &o.Revision, &o.OrderDate, &o.CustomerID, &o.CustomerName, &o.WarehouseID,
			&o.Items, &o.TotalAmount, &o.PaymentStatus, &o.PaymentMethod,
			&o.Notes, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sales order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// List lista órdenes con filtros de igualdad exacta, descendente por fecha.
func (r *SalesOrderRepo) List(filter repository.SalesOrderFilter) ([]*entity.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders WHERE 1=1`
	args := []any{}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		query += fmt.Sprintf(` AND customer_id = $%d`, len(args))
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
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	return r.scanRows(rows)
}

// ListByDateRange comparación lexicográfica sobre order_date (texto ISO-8601),
// inclusiva en ambos extremos, descendente por fecha.
func (r *SalesOrderRepo) ListByDateRange(start, end string) ([]*entity.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders
		WHERE order_date >= $1 AND order_date <= $2
		ORDER BY order_date DESC`
	rows, err := r.q.Query(context.Background(), query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list sales orders by date range: %w", err)
	}
	return r.scanRows(rows)
}
