package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dlvery/dlvery/internal/audit"
	"github.com/dlvery/dlvery/internal/delivery/domain"
	"github.com/dlvery/dlvery/kafka"
	"github.com/dlvery/dlvery/pkg/logger"
)

// EventPublisher publishes delivery lifecycle events. A nil publisher
// disables publishing.
type EventPublisher interface {
	PublishDeliveryEvent(ctx context.Context, event kafka.DeliveryEvent) error
}

// AddDeliveryCommand represents the command to create a delivery record
// directly, without touching stock.
type AddDeliveryCommand struct {
	SKU          string
	Quantity     int
	AgentID      string
	CustomerName string
	Address      string
	Status       string
	DeliveryDate string
	ActorID      string
}

// AddDeliveryHandler handles add delivery command
type AddDeliveryHandler struct {
	repo     domain.DeliveryRepository
	recorder *audit.Recorder
	events   EventPublisher
}

// NewAddDeliveryHandler creates a new add delivery handler
func NewAddDeliveryHandler(repo domain.DeliveryRepository, recorder *audit.Recorder, events EventPublisher) *AddDeliveryHandler {
	return &AddDeliveryHandler{repo: repo, recorder: recorder, events: events}
}

// Handle executes the add delivery command
func (h *AddDeliveryHandler) Handle(ctx context.Context, cmd AddDeliveryCommand) (*domain.Delivery, error) {
	if !domain.IsValidStatus(cmd.Status) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, cmd.Status)
	}

	delivery := &domain.Delivery{
		ID:           uuid.NewString(),
		SKU:          cmd.SKU,
		Quantity:     cmd.Quantity,
		AgentID:      cmd.AgentID,
		CustomerName: cmd.CustomerName,
		Address:      cmd.Address,
		Status:       cmd.Status,
		DeliveryDate: cmd.DeliveryDate,
		CreatedAt:    time.Now(),
	}

	if err := h.repo.Save(ctx, delivery); err != nil {
		return nil, fmt.Errorf("failed to create delivery: %w", err)
	}

	h.recorder.Record(ctx, "ADD", "Delivery", delivery.ID, cmd.ActorID)
	h.publish(ctx, kafka.EventTypeDeliveryCreated, delivery)

	logger.Info(ctx).
		Str("delivery_id", delivery.ID).
		Str("agent_id", delivery.AgentID).
		Msg("Delivery assigned")

	return delivery, nil
}

func (h *AddDeliveryHandler) publish(ctx context.Context, eventType string, d *domain.Delivery) {
	if h.events == nil {
		return
	}
	err := h.events.PublishDeliveryEvent(ctx, kafka.DeliveryEvent{
		EventType:    eventType,
		DeliveryID:   d.ID,
		SKU:          d.SKU,
		Quantity:     d.Quantity,
		AgentID:      d.AgentID,
		Status:       d.Status,
		DeliveryDate: d.DeliveryDate,
	})
	if err != nil {
		logger.Warn(ctx).Err(err).Str("delivery_id", d.ID).Msg("Failed to publish delivery event")
	}
}
