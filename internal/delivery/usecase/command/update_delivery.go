package command

import (
	"context"
	"fmt"

	"github.com/dlvery/dlvery/internal/audit"
	"github.com/dlvery/dlvery/internal/delivery/domain"
	"github.com/dlvery/dlvery/kafka"
	"github.com/dlvery/dlvery/pkg/logger"
)

// UpdateDeliveryCommand represents the command to replace a delivery record.
// Every field is overwritten; quantity is not re-checked against stock.
type UpdateDeliveryCommand struct {
	ID           string
	SKU          string
	Quantity     int
	AgentID      string
	CustomerName string
	Address      string
	Status       string
	DeliveryDate string
	ActorID      string
}

// UpdateDeliveryHandler handles update delivery command
type UpdateDeliveryHandler struct {
	repo     domain.DeliveryRepository
	recorder *audit.Recorder
	events   EventPublisher
}

// NewUpdateDeliveryHandler creates a new update delivery handler
func NewUpdateDeliveryHandler(repo domain.DeliveryRepository, recorder *audit.Recorder, events EventPublisher) *UpdateDeliveryHandler {
	return &UpdateDeliveryHandler{repo: repo, recorder: recorder, events: events}
}

// Handle executes the update delivery command
func (h *UpdateDeliveryHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) (*domain.Delivery, error) {
	existing, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if !domain.IsValidStatus(cmd.Status) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, cmd.Status)
	}

	delivery := &domain.Delivery{
		ID:           cmd.ID,
		SKU:          cmd.SKU,
		Quantity:     cmd.Quantity,
		AgentID:      cmd.AgentID,
		CustomerName: cmd.CustomerName,
		Address:      cmd.Address,
		Status:       cmd.Status,
		DeliveryDate: cmd.DeliveryDate,
		CreatedAt:    existing.CreatedAt,
	}

	if err := h.repo.Save(ctx, delivery); err != nil {
		return nil, fmt.Errorf("failed to update delivery: %w", err)
	}

	h.recorder.Record(ctx, "UPDATE", "Delivery", delivery.ID, cmd.ActorID)

	if h.events != nil {
		err := h.events.PublishDeliveryEvent(ctx, kafka.DeliveryEvent{
			EventType:    kafka.EventTypeDeliveryUpdated,
			DeliveryID:   delivery.ID,
			SKU:          delivery.SKU,
			Quantity:     delivery.Quantity,
			AgentID:      delivery.AgentID,
			Status:       delivery.Status,
			DeliveryDate: delivery.DeliveryDate,
		})
		if err != nil {
			logger.Warn(ctx).Err(err).Str("delivery_id", delivery.ID).Msg("Failed to publish delivery event")
		}
	}

	logger.Info(ctx).
		Str("delivery_id", delivery.ID).
		Str("status", delivery.Status).
		Msg("Delivery updated")

	return delivery, nil
}
