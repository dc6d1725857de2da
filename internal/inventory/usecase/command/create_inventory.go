package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dlvery/dlvery/internal/inventory/domain"
)

// CreateInventoryCommand represents the command to create an inventory item
type CreateInventoryCommand struct {
	SKU               string
	Name              string
	Category          string
	Damaged           bool
	Perishable        bool
	ExpiryDate        string
	Quantity          int
	LowStockThreshold int
}

// CreateInventoryHandler handles create inventory command
type CreateInventoryHandler struct {
	repo domain.InventoryRepository
}

// NewCreateInventoryHandler creates a new create inventory handler
func NewCreateInventoryHandler(repo domain.InventoryRepository) *CreateInventoryHandler {
	return &CreateInventoryHandler{repo: repo}
}

// Handle executes the create inventory command
func (h *CreateInventoryHandler) Handle(ctx context.Context, cmd CreateInventoryCommand) (*domain.Inventory, error) {
	if cmd.SKU == "" {
		return nil, domain.ErrMissingSKU
	}
	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("%w: cannot be negative, got %d", domain.ErrInvalidQuantity, cmd.Quantity)
	}

	existing, err := h.repo.FindBySKU(ctx, cmd.SKU)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check sku: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSKU
	}

	item := &domain.Inventory{
		ID:                uuid.NewString(),
		SKU:               cmd.SKU,
		Name:              cmd.Name,
		Category:          cmd.Category,
		Damaged:           cmd.Damaged,
		Perishable:        cmd.Perishable,
		ExpiryDate:        cmd.ExpiryDate,
		Quantity:          cmd.Quantity,
		LowStockThreshold: cmd.LowStockThreshold,
	}

	if err := h.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create inventory: %w", err)
	}

	return item, nil
}
