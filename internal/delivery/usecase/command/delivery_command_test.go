package command

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlvery/dlvery/internal/audit"
	auditdomain "github.com/dlvery/dlvery/internal/audit/domain"
	"github.com/dlvery/dlvery/internal/delivery/domain"
	"github.com/dlvery/dlvery/kafka"
)

// fakeDeliveryRepo is an in-memory delivery store
type fakeDeliveryRepo struct {
	mu         sync.Mutex
	deliveries map[string]domain.Delivery
}

func newFakeDeliveryRepo(deliveries ...domain.Delivery) *fakeDeliveryRepo {
	repo := &fakeDeliveryRepo{deliveries: make(map[string]domain.Delivery)}
	for _, d := range deliveries {
		repo.deliveries[d.ID] = d
	}
	return repo
}

func (f *fakeDeliveryRepo) FindByID(ctx context.Context, id string) (*domain.Delivery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.deliveries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	found := d
	return &found, nil
}

func (f *fakeDeliveryRepo) FindBySKU(ctx context.Context, sku string) ([]domain.Delivery, error) {
	return f.filter(func(d domain.Delivery) bool { return d.SKU == sku }), nil
}

func (f *fakeDeliveryRepo) FindByAgent(ctx context.Context, agentID string) ([]domain.Delivery, error) {
	return f.filter(func(d domain.Delivery) bool { return d.AgentID == agentID }), nil
}

func (f *fakeDeliveryRepo) FindByStatus(ctx context.Context, status string) ([]domain.Delivery, error) {
	return f.filter(func(d domain.Delivery) bool { return d.Status == status }), nil
}

func (f *fakeDeliveryRepo) FindByAgentAndStatus(ctx context.Context, agentID, status string) ([]domain.Delivery, error) {
	return f.filter(func(d domain.Delivery) bool { return d.AgentID == agentID && d.Status == status }), nil
}

func (f *fakeDeliveryRepo) FindByStatusAndDateRange(ctx context.Context, status, startDate, endDate string) ([]domain.Delivery, error) {
	return f.filter(func(d domain.Delivery) bool {
		return d.Status == status && d.DeliveryDate >= startDate && d.DeliveryDate <= endDate
	}), nil
}

func (f *fakeDeliveryRepo) Save(ctx context.Context, delivery *domain.Delivery) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deliveries[delivery.ID] = *delivery
	return nil
}

func (f *fakeDeliveryRepo) filter(keep func(domain.Delivery) bool) []domain.Delivery {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Delivery
	for _, d := range f.deliveries {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

// fakeAuditRepo records audit entries in memory
type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []auditdomain.AuditLog
	saveErr error
}

func (f *fakeAuditRepo) Save(ctx context.Context, entry *auditdomain.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAuditRepo) FindAll(ctx context.Context) ([]auditdomain.AuditLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]auditdomain.AuditLog(nil), f.entries...), nil
}

// fakeEventPublisher captures published delivery events
type fakeEventPublisher struct {
	mu     sync.Mutex
	events []kafka.DeliveryEvent
}

func (f *fakeEventPublisher) PublishDeliveryEvent(ctx context.Context, event kafka.DeliveryEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func TestAddDelivery_Success(t *testing.T) {
	repo := newFakeDeliveryRepo()
	auditRepo := &fakeAuditRepo{}
	events := &fakeEventPublisher{}
	handler := NewAddDeliveryHandler(repo, audit.NewRecorder(auditRepo), events)

	delivery, err := handler.Handle(context.Background(), AddDeliveryCommand{
		SKU:          "SKU001",
		Quantity:     5,
		AgentID:      "agent1",
		CustomerName: "Jane Roe",
		Address:      "42 Elm St",
		Status:       domain.StatusPending,
		DeliveryDate: "2025-06-10",
		ActorID:      "user1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, delivery.ID)
	assert.False(t, delivery.CreatedAt.IsZero())

	require.Len(t, auditRepo.entries, 1)
	entry := auditRepo.entries[0]
	assert.Equal(t, "ADD", entry.Action)
	assert.Equal(t, "Delivery", entry.Entity)
	assert.Equal(t, delivery.ID, entry.EntityID)
	assert.Equal(t, "user1", entry.UserID)

	require.Len(t, events.events, 1)
	assert.Equal(t, kafka.EventTypeDeliveryCreated, events.events[0].EventType)
	assert.Equal(t, delivery.ID, events.events[0].DeliveryID)
}

func TestAddDelivery_InvalidStatus(t *testing.T) {
	repo := newFakeDeliveryRepo()
	auditRepo := &fakeAuditRepo{}
	handler := NewAddDeliveryHandler(repo, audit.NewRecorder(auditRepo), nil)

	_, err := handler.Handle(context.Background(), AddDeliveryCommand{
		SKU: "SKU001", Quantity: 5, Status: "SHIPPED", ActorID: "user1",
	})
	require.ErrorIs(t, err, domain.ErrInvalidStatus)

	// Rejected before any write: no record, no audit entry
	assert.Empty(t, repo.deliveries)
	assert.Empty(t, auditRepo.entries)
}

func TestAddDelivery_StatusCaseSensitive(t *testing.T) {
	handler := NewAddDeliveryHandler(newFakeDeliveryRepo(), audit.NewRecorder(&fakeAuditRepo{}), nil)

	_, err := handler.Handle(context.Background(), AddDeliveryCommand{Status: "pending"})
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestAddDelivery_NilPublisher(t *testing.T) {
	handler := NewAddDeliveryHandler(newFakeDeliveryRepo(), audit.NewRecorder(&fakeAuditRepo{}), nil)

	_, err := handler.Handle(context.Background(), AddDeliveryCommand{
		SKU: "SKU001", Quantity: 1, Status: domain.StatusPending,
	})
	require.NoError(t, err)
}

func TestUpdateDelivery_Success(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeDeliveryRepo(domain.Delivery{
		ID: "d1", SKU: "SKU001", Quantity: 5, AgentID: "agent1",
		Status: domain.StatusPending, DeliveryDate: "2025-06-10", CreatedAt: created,
	})
	auditRepo := &fakeAuditRepo{}
	events := &fakeEventPublisher{}
	handler := NewUpdateDeliveryHandler(repo, audit.NewRecorder(auditRepo), events)

	updated, err := handler.Handle(context.Background(), UpdateDeliveryCommand{
		ID: "d1", SKU: "SKU001", Quantity: 5, AgentID: "agent2",
		CustomerName: "Jane Roe", Address: "42 Elm St",
		Status: domain.StatusDelivered, DeliveryDate: "2025-06-11",
		ActorID: "user2",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusDelivered, updated.Status)
	assert.Equal(t, "agent2", updated.AgentID)
	assert.Equal(t, "2025-06-11", updated.DeliveryDate)
	assert.Equal(t, created, updated.CreatedAt)

	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, "UPDATE", auditRepo.entries[0].Action)
	assert.Equal(t, "d1", auditRepo.entries[0].EntityID)
	assert.Equal(t, "user2", auditRepo.entries[0].UserID)

	require.Len(t, events.events, 1)
	assert.Equal(t, kafka.EventTypeDeliveryUpdated, events.events[0].EventType)
}

func TestUpdateDelivery_InvalidStatusLeavesRecordUnchanged(t *testing.T) {
	repo := newFakeDeliveryRepo(domain.Delivery{
		ID: "d1", SKU: "SKU001", Status: domain.StatusPending, AgentID: "agent1",
	})
	auditRepo := &fakeAuditRepo{}
	handler := NewUpdateDeliveryHandler(repo, audit.NewRecorder(auditRepo), nil)

	_, err := handler.Handle(context.Background(), UpdateDeliveryCommand{
		ID: "d1", Status: "BOGUS", ActorID: "user1",
	})
	require.ErrorIs(t, err, domain.ErrInvalidStatus)

	stored, err := repo.FindByID(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Equal(t, "agent1", stored.AgentID)
	assert.Empty(t, auditRepo.entries)
}

func TestUpdateDelivery_NotFound(t *testing.T) {
	handler := NewUpdateDeliveryHandler(newFakeDeliveryRepo(), audit.NewRecorder(&fakeAuditRepo{}), nil)

	_, err := handler.Handle(context.Background(), UpdateDeliveryCommand{
		ID: "missing", Status: domain.StatusPending,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddDelivery_AuditFailureDoesNotAbort(t *testing.T) {
	repo := newFakeDeliveryRepo()
	auditRepo := &fakeAuditRepo{saveErr: errors.New("audit store down")}
	handler := NewAddDeliveryHandler(repo, audit.NewRecorder(auditRepo), nil)

	delivery, err := handler.Handle(context.Background(), AddDeliveryCommand{
		SKU: "SKU001", Quantity: 1, Status: domain.StatusPending, ActorID: "user1",
	})
	require.NoError(t, err)

	// Business mutation stands even though the audit write failed
	_, err = repo.FindByID(context.Background(), delivery.ID)
	assert.NoError(t, err)
}
