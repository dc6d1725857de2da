package query

import (
	"context"

	"github.com/dlvery/dlvery/internal/delivery/domain"
)

// TrackBySKUHandler returns all deliveries created against a SKU
type TrackBySKUHandler struct {
	repo domain.DeliveryRepository
}

// NewTrackBySKUHandler creates a new track by SKU handler
func NewTrackBySKUHandler(repo domain.DeliveryRepository) *TrackBySKUHandler {
	return &TrackBySKUHandler{repo: repo}
}

// Handle executes the track by SKU query
func (h *TrackBySKUHandler) Handle(ctx context.Context, sku string) ([]domain.Delivery, error) {
	return h.repo.FindBySKU(ctx, sku)
}

// TrackByAgentHandler returns all deliveries assigned to an agent
type TrackByAgentHandler struct {
	repo domain.DeliveryRepository
}

// NewTrackByAgentHandler creates a new track by agent handler
func NewTrackByAgentHandler(repo domain.DeliveryRepository) *TrackByAgentHandler {
	return &TrackByAgentHandler{repo: repo}
}

// Handle executes the track by agent query
func (h *TrackByAgentHandler) Handle(ctx context.Context, agentID string) ([]domain.Delivery, error) {
	return h.repo.FindByAgent(ctx, agentID)
}
