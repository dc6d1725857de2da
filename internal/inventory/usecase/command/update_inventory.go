package command

import (
	"context"
	"fmt"

	"github.com/dlvery/dlvery/internal/inventory/domain"
)

// UpdateInventoryCommand represents the command to update an inventory item
type UpdateInventoryCommand struct {
	ID                string
	SKU               string
	Name              string
	Category          string
	Damaged           bool
	Perishable        bool
	ExpiryDate        string
	Quantity          int
	LowStockThreshold int
}

// UpdateInventoryHandler handles update inventory command
type UpdateInventoryHandler struct {
	repo domain.InventoryRepository
}

// NewUpdateInventoryHandler creates a new update inventory handler
func NewUpdateInventoryHandler(repo domain.InventoryRepository) *UpdateInventoryHandler {
	return &UpdateInventoryHandler{repo: repo}
}

// Handle executes the update inventory command, replacing every mutable field
func (h *UpdateInventoryHandler) Handle(ctx context.Context, cmd UpdateInventoryCommand) (*domain.Inventory, error) {
	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("%w: cannot be negative, got %d", domain.ErrInvalidQuantity, cmd.Quantity)
	}

	item, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	item.SKU = cmd.SKU
	item.Name = cmd.Name
	item.Category = cmd.Category
	item.Damaged = cmd.Damaged
	item.Perishable = cmd.Perishable
	item.ExpiryDate = cmd.ExpiryDate
	item.Quantity = cmd.Quantity
	item.LowStockThreshold = cmd.LowStockThreshold

	if err := h.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}

	return item, nil
}
