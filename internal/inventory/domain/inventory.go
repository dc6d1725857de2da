package domain

import (
	"context"
	"errors"
	"fmt"
)

// Engine errors surfaced to callers as typed failures
var (
	ErrNotFound              = errors.New("inventory item not found")
	ErrDuplicateSKU          = errors.New("sku already exists")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrActiveDeliveriesExist = errors.New("cannot delete inventory with active deliveries")
	ErrMissingSKU            = errors.New("sku is required")
	ErrInvalidQuantity       = errors.New("invalid quantity")
)

// ImportError marks a bulk import aborted by an unparseable row.
// Rows written before the failing line stay persisted.
type ImportError struct {
	Line int
	Err  error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import failed at line %d: %v", e.Line, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// Inventory represents a stock-keeping unit on hand
type Inventory struct {
	ID                string `json:"id" gorm:"primaryKey"`
	SKU               string `json:"sku" gorm:"column:sku;uniqueIndex;not null"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	Damaged           bool   `json:"damaged"`
	Perishable        bool   `json:"perishable"`
	ExpiryDate        string `json:"expiryDate"`
	Quantity          int    `json:"quantity" gorm:"not null;default:0"`
	LowStockThreshold int    `json:"lowStockThreshold"`
}

// TableName specifies the table name
func (Inventory) TableName() string {
	return "inventories"
}

// InventoryRepository defines the contract for inventory data access
type InventoryRepository interface {
	FindBySKU(ctx context.Context, sku string) (*Inventory, error)
	FindByID(ctx context.Context, id string) (*Inventory, error)
	FindAll(ctx context.Context) ([]Inventory, error)
	Save(ctx context.Context, item *Inventory) error
	Delete(ctx context.Context, id string) error
}
