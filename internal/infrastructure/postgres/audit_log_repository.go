package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo adaptador de solo inserción: la bitácora es inmutable.
type AuditLogRepo struct {
	q Querier
}

func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

func (r *AuditLogRepo) Create(log *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, user_id, username, action_type, entity_id, entity_type,
			changes, ip_address, user_agent, ts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.UserID, log.Username, log.ActionType, log.EntityID, log.EntityType,
		log.Changes, log.IPAddress, log.UserAgent, log.Timestamp, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

func (r *AuditLogRepo) ListByEntity(entityID string, limit int) ([]*entity.AuditLog, error) {
	query := `
		SELECT id, user_id, username, action_type, entity_id, entity_type,
			changes, ip_address, user_agent, ts, created_at
		FROM audit_logs
		WHERE entity_id = $1
		ORDER BY ts DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit logs: %w", err)
	}
	defer rows.Close()

	var logs []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.Username, &l.ActionType, &l.EntityID, &l.EntityType,
			&l.Changes, &l.IPAddress, &l.UserAgent, &l.Timestamp, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}
