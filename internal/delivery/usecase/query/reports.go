package query

import (
	"context"
	"fmt"
	"time"

	"github.com/dlvery/dlvery/internal/delivery/domain"
)

const dateLayout = "2006-01-02"

// DeliveredReportQuery bounds the delivered-goods report. Both bounds are
// inclusive calendar dates.
type DeliveredReportQuery struct {
	StartDate string
	EndDate   string
}

// DeliveredReportHandler reports deliveries completed within a date range
type DeliveredReportHandler struct {
	repo domain.DeliveryRepository
}

// NewDeliveredReportHandler creates a new delivered report handler
func NewDeliveredReportHandler(repo domain.DeliveryRepository) *DeliveredReportHandler {
	return &DeliveredReportHandler{repo: repo}
}

// Handle executes the delivered goods report
func (h *DeliveredReportHandler) Handle(ctx context.Context, q DeliveredReportQuery) ([]domain.Delivery, error) {
	if _, err := time.Parse(dateLayout, q.StartDate); err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDateRange, q.StartDate)
	}
	if _, err := time.Parse(dateLayout, q.EndDate); err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDateRange, q.EndDate)
	}

	return h.repo.FindByStatusAndDateRange(ctx, domain.StatusDelivered, q.StartDate, q.EndDate)
}

// DamagedReportHandler reports all deliveries marked damaged
type DamagedReportHandler struct {
	repo domain.DeliveryRepository
}

// NewDamagedReportHandler creates a new damaged report handler
func NewDamagedReportHandler(repo domain.DeliveryRepository) *DamagedReportHandler {
	return &DamagedReportHandler{repo: repo}
}

// Handle executes the damaged goods report
func (h *DamagedReportHandler) Handle(ctx context.Context) ([]domain.Delivery, error) {
	return h.repo.FindByStatus(ctx, domain.StatusDamaged)
}

// PendingByAgentHandler reports an agent's pending deliveries
type PendingByAgentHandler struct {
	repo domain.DeliveryRepository
}

// NewPendingByAgentHandler creates a new pending by agent handler
func NewPendingByAgentHandler(repo domain.DeliveryRepository) *PendingByAgentHandler {
	return &PendingByAgentHandler{repo: repo}
}

// Handle executes the pending by agent report
func (h *PendingByAgentHandler) Handle(ctx context.Context, agentID string) ([]domain.Delivery, error) {
	return h.repo.FindByAgentAndStatus(ctx, agentID, domain.StatusPending)
}
