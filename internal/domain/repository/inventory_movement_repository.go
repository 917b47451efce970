package repository

import "github.com/tu-usuario/inventario-pos/internal/domain/entity"

// InventoryMovementRepository define el puerto de persistencia para el rastro
// de movimientos (DIP). Solo inserciones y lecturas: los movimientos son
// inmutables.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	ListByProduct(productID string, limit int) ([]*entity.InventoryMovement, error)
	ListByReference(referenceID string) ([]*entity.InventoryMovement, error)
}
