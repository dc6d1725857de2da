package command

import (
	"context"
	"sync"

	deliverydomain "github.com/dlvery/dlvery/internal/delivery/domain"
	"github.com/dlvery/dlvery/internal/inventory/domain"
)

// fakeInventoryRepo is an in-memory inventory store. Each operation is
// atomic, like a real store's per-row write, but it performs no
// check-and-decrement of its own.
type fakeInventoryRepo struct {
	mu    sync.Mutex
	items map[string]domain.Inventory // keyed by SKU
}

func newFakeInventoryRepo(items ...domain.Inventory) *fakeInventoryRepo {
	repo := &fakeInventoryRepo{items: make(map[string]domain.Inventory)}
	for _, item := range items {
		repo.items[item.SKU] = item
	}
	return repo
}

func (f *fakeInventoryRepo) FindBySKU(ctx context.Context, sku string) (*domain.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[sku]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copy := item
	return &copy, nil
}

func (f *fakeInventoryRepo) FindByID(ctx context.Context, id string) (*domain.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.ID == id {
			copy := item
			return &copy, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeInventoryRepo) FindAll(ctx context.Context) ([]domain.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]domain.Inventory, 0, len(f.items))
	for _, item := range f.items {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeInventoryRepo) Save(ctx context.Context, item *domain.Inventory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.SKU] = *item
	return nil
}

func (f *fakeInventoryRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for sku, item := range f.items {
		if item.ID == id {
			delete(f.items, sku)
			return nil
		}
	}
	return nil
}

func (f *fakeInventoryRepo) quantity(sku string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[sku].Quantity
}

// fakeDeliveryRepo is an in-memory delivery store
type fakeDeliveryRepo struct {
	mu         sync.Mutex
	deliveries []deliverydomain.Delivery
	saveErr    error
}

func (f *fakeDeliveryRepo) FindByID(ctx context.Context, id string) (*deliverydomain.Delivery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.deliveries {
		if d.ID == id {
			copy := d
			return &copy, nil
		}
	}
	return nil, deliverydomain.ErrNotFound
}

func (f *fakeDeliveryRepo) FindBySKU(ctx context.Context, sku string) ([]deliverydomain.Delivery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []deliverydomain.Delivery
	for _, d := range f.deliveries {
		if d.SKU == sku {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDeliveryRepo) FindByAgent(ctx context.Context, agentID string) ([]deliverydomain.Delivery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []deliverydomain.Delivery
	for _, d := range f.deliveries {
		if d.AgentID == agentID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDeliveryRepo) FindByStatus(ctx context.Context, status string) ([]deliverydomain.Delivery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []deliverydomain.Delivery
	for _, d := range f.deliveries {
		if d.Status == status {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDeliveryRepo) FindByAgentAndStatus(ctx context.Context, agentID, status string) ([]deliverydomain.Delivery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []deliverydomain.Delivery
	for _, d := range f.deliveries {
		if d.AgentID == agentID && d.Status == status {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDeliveryRepo) FindByStatusAndDateRange(ctx context.Context, status, startDate, endDate string) ([]deliverydomain.Delivery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []deliverydomain.Delivery
	for _, d := range f.deliveries {
		if d.Status == status && d.DeliveryDate >= startDate && d.DeliveryDate <= endDate {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDeliveryRepo) Save(ctx context.Context, delivery *deliverydomain.Delivery) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	for i, d := range f.deliveries {
		if d.ID == delivery.ID {
			f.deliveries[i] = *delivery
			return nil
		}
	}
	f.deliveries = append(f.deliveries, *delivery)
	return nil
}

func (f *fakeDeliveryRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.deliveries)
}
