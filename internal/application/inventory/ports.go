package inventory

import (
	"context"

	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. La implementación vive en infrastructure/postgres.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error) error
}
