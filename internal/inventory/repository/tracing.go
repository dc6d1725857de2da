package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/dlvery/dlvery/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// TracingInventoryRepository decorates the GORM repository with spans.
// It satisfies domain.InventoryRepository so callers stay unaware of it.
type TracingInventoryRepository struct {
	inner *GormInventoryRepository
}

func NewTracingInventoryRepository(db *gorm.DB) *TracingInventoryRepository {
	return &TracingInventoryRepository{inner: NewGormInventoryRepository(db)}
}

func (r *TracingInventoryRepository) AutoMigrate() error {
	return r.inner.AutoMigrate()
}

func (r *TracingInventoryRepository) FindBySKU(ctx context.Context, sku string) (*domain.Inventory, error) {
	ctx, span := tracer.Start(ctx, "repository.FindBySKU",
		trace.WithAttributes(attribute.String("inventory.sku", sku)),
	)
	defer span.End()

	item, err := r.inner.FindBySKU(ctx, sku)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("inventory.quantity", item.Quantity))
	return item, nil
}

func (r *TracingInventoryRepository) FindByID(ctx context.Context, id string) (*domain.Inventory, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.String("inventory.id", id)),
	)
	defer span.End()

	item, err := r.inner.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return item, nil
}

func (r *TracingInventoryRepository) FindAll(ctx context.Context) ([]domain.Inventory, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	items, err := r.inner.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("inventory.count", len(items)))
	return items, nil
}

func (r *TracingInventoryRepository) Save(ctx context.Context, item *domain.Inventory) error {
	ctx, span := tracer.Start(ctx, "repository.Save",
		trace.WithAttributes(
			attribute.String("inventory.sku", item.SKU),
			attribute.Int("inventory.quantity", item.Quantity),
		),
	)
	defer span.End()

	if err := r.inner.Save(ctx, item); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (r *TracingInventoryRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.String("inventory.id", id)),
	)
	defer span.End()

	if err := r.inner.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
