package query

import (
	"context"

	"github.com/dlvery/dlvery/internal/inventory/domain"
)

// GetInventoryQuery represents the query to fetch one inventory item
type GetInventoryQuery struct {
	ID string
}

// GetInventoryHandler handles get inventory query
type GetInventoryHandler struct {
	repo domain.InventoryRepository
}

// NewGetInventoryHandler creates a new get inventory handler
func NewGetInventoryHandler(repo domain.InventoryRepository) *GetInventoryHandler {
	return &GetInventoryHandler{repo: repo}
}

// Handle executes the get inventory query
func (h *GetInventoryHandler) Handle(ctx context.Context, q GetInventoryQuery) (*domain.Inventory, error) {
	return h.repo.FindByID(ctx, q.ID)
}
