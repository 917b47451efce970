package entity

import (
	"encoding/json"
	"time"
)

// AuditLog rastro de actividad del sistema. Solo se agrega, nunca se muta.
type AuditLog struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	Username   string          `json:"username"`
	ActionType string          `json:"action_type"` // CREATE, UPDATE, DELETE, LOGIN, ...
	EntityID   string          `json:"entity_id"`
	EntityType string          `json:"entity_type"`
	Changes    json.RawMessage `json:"changes"`
	IPAddress  string          `json:"ip_address"`
	UserAgent  string          `json:"user_agent"`
	Timestamp  time.Time       `json:"timestamp"`
	CreatedAt  time.Time       `json:"created_at"`
}
