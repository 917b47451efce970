package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tu-usuario/inventario-pos/internal/domain"
)

// Querier abstracción mínima sobre pool o transacción pgx: los adaptadores
// aceptan cualquiera de los dos para poder participar en TxRunner.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// staleOrMissing distingue revisión obsoleta de fila inexistente tras una
// escritura condicional que no tocó filas. Compartido por los adaptadores
// cuyas tablas usan la columna revision (table siempre es una constante del
// paquete, nunca entrada del usuario).
func staleOrMissing(q Querier, table, id string) error {
	var exists bool
	err := q.QueryRow(context.Background(),
		fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)`, table), id,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("verificar %s %s: %w", table, id, err)
	}
	if exists {
		return domain.ErrConflict
	}
	return domain.ErrNotFound
}
