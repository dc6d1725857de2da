package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	deliverydomain "github.com/dlvery/dlvery/internal/delivery/domain"
	"github.com/dlvery/dlvery/internal/inventory/domain"
	"github.com/dlvery/dlvery/pkg/logger"
)

// AssignForDeliveryCommand reserves stock against a new delivery
type AssignForDeliveryCommand struct {
	SKU          string
	Quantity     int
	AgentID      string
	CustomerName string
	Address      string
}

// AssignForDeliveryHandler handles the stock reservation command.
// The check-and-decrement runs under the per-SKU lock so concurrent
// reservations can never drive stock negative. The delivery record is
// written after the critical section; it carries no invariant shared with
// other deliveries.
type AssignForDeliveryHandler struct {
	inventoryRepo domain.InventoryRepository
	deliveryRepo  deliverydomain.DeliveryRepository
	locks         *SKULocks
}

// NewAssignForDeliveryHandler creates a new assign for delivery handler
func NewAssignForDeliveryHandler(
	inventoryRepo domain.InventoryRepository,
	deliveryRepo deliverydomain.DeliveryRepository,
	locks *SKULocks,
) *AssignForDeliveryHandler {
	return &AssignForDeliveryHandler{
		inventoryRepo: inventoryRepo,
		deliveryRepo:  deliveryRepo,
		locks:         locks,
	}
}

// Handle executes the assign for delivery command
func (h *AssignForDeliveryHandler) Handle(ctx context.Context, cmd AssignForDeliveryCommand) (*deliverydomain.Delivery, error) {
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("%w: must be greater than 0, got %d", domain.ErrInvalidQuantity, cmd.Quantity)
	}

	h.locks.Lock(cmd.SKU)

	item, err := h.inventoryRepo.FindBySKU(ctx, cmd.SKU)
	if err != nil {
		h.locks.Unlock(cmd.SKU)
		return nil, err
	}

	if item.Quantity < cmd.Quantity {
		h.locks.Unlock(cmd.SKU)
		return nil, fmt.Errorf("%w for SKU %s: requested %d, available %d",
			domain.ErrInsufficientStock, cmd.SKU, cmd.Quantity, item.Quantity)
	}

	item.Quantity -= cmd.Quantity
	if err := h.inventoryRepo.Save(ctx, item); err != nil {
		h.locks.Unlock(cmd.SKU)
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	h.locks.Unlock(cmd.SKU)

	now := time.Now()
	delivery := &deliverydomain.Delivery{
		ID:           uuid.NewString(),
		SKU:          cmd.SKU,
		Quantity:     cmd.Quantity,
		AgentID:      cmd.AgentID,
		CustomerName: cmd.CustomerName,
		Address:      cmd.Address,
		Status:       deliverydomain.StatusPending,
		DeliveryDate: now.Format("2006-01-02"),
		CreatedAt:    now,
	}

	if err := h.deliveryRepo.Save(ctx, delivery); err != nil {
		// Stock already went down; hand the units back rather than leave a
		// reservation with no delivery record.
		h.restock(ctx, cmd.SKU, cmd.Quantity)
		return nil, fmt.Errorf("failed to create delivery: %w", err)
	}

	logger.Info(ctx).
		Str("sku", cmd.SKU).
		Int("quantity", cmd.Quantity).
		Str("agent_id", cmd.AgentID).
		Str("delivery_id", delivery.ID).
		Msg("Stock assigned for delivery")

	return delivery, nil
}

func (h *AssignForDeliveryHandler) restock(ctx context.Context, sku string, quantity int) {
	h.locks.Lock(sku)
	defer h.locks.Unlock(sku)

	item, err := h.inventoryRepo.FindBySKU(ctx, sku)
	if err != nil {
		logger.Error(ctx).Err(err).Str("sku", sku).Int("quantity", quantity).
			Msg("Failed to restock after delivery creation failure")
		return
	}
	item.Quantity += quantity
	if err := h.inventoryRepo.Save(ctx, item); err != nil {
		logger.Error(ctx).Err(err).Str("sku", sku).Int("quantity", quantity).
			Msg("Failed to restock after delivery creation failure")
	}
}
