package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dlvery/dlvery/internal/inventory/domain"
)

type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Inventory{})
}

func (r *GormInventoryRepository) FindBySKU(ctx context.Context, sku string) (*domain.Inventory, error) {
	var item domain.Inventory
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *GormInventoryRepository) FindByID(ctx context.Context, id string) (*domain.Inventory, error) {
	var item domain.Inventory
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *GormInventoryRepository) FindAll(ctx context.Context) ([]domain.Inventory, error) {
	var items []domain.Inventory
	err := r.db.WithContext(ctx).Find(&items).Error
	return items, err
}

func (r *GormInventoryRepository) Save(ctx context.Context, item *domain.Inventory) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *GormInventoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Inventory{}, "id = ?", id).Error
}
