package command

import (
	"context"
	"fmt"

	deliverydomain "github.com/dlvery/dlvery/internal/delivery/domain"
	"github.com/dlvery/dlvery/internal/inventory/domain"
)

// DeleteInventoryCommand represents the command to delete an inventory item
type DeleteInventoryCommand struct {
	ID string
}

// DeleteInventoryHandler handles delete inventory command. Deletion is
// blocked while any delivery, in any status, still references the SKU.
type DeleteInventoryHandler struct {
	inventoryRepo domain.InventoryRepository
	deliveryRepo  deliverydomain.DeliveryRepository
}

// NewDeleteInventoryHandler creates a new delete inventory handler
func NewDeleteInventoryHandler(
	inventoryRepo domain.InventoryRepository,
	deliveryRepo deliverydomain.DeliveryRepository,
) *DeleteInventoryHandler {
	return &DeleteInventoryHandler{
		inventoryRepo: inventoryRepo,
		deliveryRepo:  deliveryRepo,
	}
}

// Handle executes the delete inventory command
func (h *DeleteInventoryHandler) Handle(ctx context.Context, cmd DeleteInventoryCommand) error {
	item, err := h.inventoryRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		return err
	}

	deliveries, err := h.deliveryRepo.FindBySKU(ctx, item.SKU)
	if err != nil {
		return fmt.Errorf("failed to check deliveries: %w", err)
	}
	if len(deliveries) > 0 {
		return domain.ErrActiveDeliveriesExist
	}

	return h.inventoryRepo.Delete(ctx, cmd.ID)
}
