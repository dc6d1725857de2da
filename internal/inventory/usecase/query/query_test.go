package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlvery/dlvery/internal/inventory/domain"
)

type fakeInventoryRepo struct {
	items []domain.Inventory
}

func (f *fakeInventoryRepo) FindBySKU(ctx context.Context, sku string) (*domain.Inventory, error) {
	for _, item := range f.items {
		if item.SKU == sku {
			found := item
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeInventoryRepo) FindByID(ctx context.Context, id string) (*domain.Inventory, error) {
	for _, item := range f.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeInventoryRepo) FindAll(ctx context.Context) ([]domain.Inventory, error) {
	return append([]domain.Inventory(nil), f.items...), nil
}

func (f *fakeInventoryRepo) Save(ctx context.Context, item *domain.Inventory) error {
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeInventoryRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func TestGetInventory(t *testing.T) {
	repo := &fakeInventoryRepo{items: []domain.Inventory{
		{ID: "i1", SKU: "SKU001", Name: "Widget", Quantity: 10},
	}}
	handler := NewGetInventoryHandler(repo)

	item, err := handler.Handle(context.Background(), GetInventoryQuery{ID: "i1"})
	require.NoError(t, err)
	assert.Equal(t, "SKU001", item.SKU)
	assert.Equal(t, 10, item.Quantity)
}

func TestGetInventory_NotFound(t *testing.T) {
	handler := NewGetInventoryHandler(&fakeInventoryRepo{})

	_, err := handler.Handle(context.Background(), GetInventoryQuery{ID: "missing"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListInventory(t *testing.T) {
	repo := &fakeInventoryRepo{items: []domain.Inventory{
		{ID: "i1", SKU: "SKU001"},
		{ID: "i2", SKU: "SKU002"},
	}}
	handler := NewListInventoryHandler(repo)

	items, err := handler.Handle(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestListInventory_Empty(t *testing.T) {
	handler := NewListInventoryHandler(&fakeInventoryRepo{})

	items, err := handler.Handle(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}
