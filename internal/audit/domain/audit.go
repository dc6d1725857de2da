package domain

import "context"

// AuditLog is an append-only record of a state-changing action.
// Entries are never updated or deleted.
type AuditLog struct {
	ID        string `json:"id" gorm:"primaryKey"`
	Action    string `json:"action" gorm:"not null"`
	Entity    string `json:"entity" gorm:"not null"`
	EntityID  string `json:"entityId"`
	UserID    string `json:"userId"`
	Timestamp string `json:"timestamp"`
}

// TableName specifies the table name
func (AuditLog) TableName() string {
	return "audit_logs"
}

// AuditRepository defines the contract for audit log persistence
type AuditRepository interface {
	Save(ctx context.Context, entry *AuditLog) error
	FindAll(ctx context.Context) ([]AuditLog, error)
}
