package repository

import "github.com/tu-usuario/inventario-pos/internal/domain/entity"

// AuditLogRepository define el puerto de persistencia para AuditLog (DIP).
// Solo agrega: el rastro de auditoría nunca se muta.
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	ListByEntity(entityID string, limit int) ([]*entity.AuditLog, error)
}
