package domain

import (
	"context"
	"errors"
	"time"
)

// Delivery lifecycle statuses. Membership is the only rule the engine
// enforces; there is no ordering between statuses.
const (
	StatusPending   = "PENDING"
	StatusInTransit = "IN_TRANSIT"
	StatusDelivered = "DELIVERED"
	StatusDoorLock  = "DOOR_LOCK"
	StatusDamaged   = "DAMAGED"
)

var validStatuses = map[string]struct{}{
	StatusPending:   {},
	StatusInTransit: {},
	StatusDelivered: {},
	StatusDoorLock:  {},
	StatusDamaged:   {},
}

// IsValidStatus reports whether s belongs to the closed status set (case-sensitive)
func IsValidStatus(s string) bool {
	_, ok := validStatuses[s]
	return ok
}

var (
	ErrNotFound         = errors.New("delivery not found")
	ErrInvalidStatus    = errors.New("invalid delivery status")
	ErrInvalidDateRange = errors.New("invalid date range")
)

// Delivery represents goods reserved against stock and assigned to an agent
type Delivery struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	SKU          string    `json:"sku" gorm:"column:sku;index;not null"`
	Quantity     int       `json:"quantity" gorm:"not null"`
	AgentID      string    `json:"agentId" gorm:"index"`
	CustomerName string    `json:"customerName"`
	Address      string    `json:"address"`
	Status       string    `json:"status" gorm:"index;not null"`
	DeliveryDate string    `json:"deliveryDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName specifies the table name
func (Delivery) TableName() string {
	return "deliveries"
}

// DeliveryRepository defines the contract for delivery data access
type DeliveryRepository interface {
	FindByID(ctx context.Context, id string) (*Delivery, error)
	FindBySKU(ctx context.Context, sku string) ([]Delivery, error)
	FindByAgent(ctx context.Context, agentID string) ([]Delivery, error)
	FindByStatus(ctx context.Context, status string) ([]Delivery, error)
	FindByAgentAndStatus(ctx context.Context, agentID, status string) ([]Delivery, error)
	FindByStatusAndDateRange(ctx context.Context, status, startDate, endDate string) ([]Delivery, error)
	Save(ctx context.Context, delivery *Delivery) error
}
