package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dlvery/dlvery/internal/delivery/domain"
)

type GormDeliveryRepository struct {
	db *gorm.DB
}

func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

func (r *GormDeliveryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Delivery{})
}

func (r *GormDeliveryRepository) FindByID(ctx context.Context, id string) (*domain.Delivery, error) {
	var delivery domain.Delivery
	err := r.db.WithContext(ctx).First(&delivery, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &delivery, nil
}

func (r *GormDeliveryRepository) FindBySKU(ctx context.Context, sku string) ([]domain.Delivery, error) {
	var deliveries []domain.Delivery
	err := r.db.WithContext(ctx).Where("sku = ?", sku).Find(&deliveries).Error
	return deliveries, err
}

func (r *GormDeliveryRepository) FindByAgent(ctx context.Context, agentID string) ([]domain.Delivery, error) {
	var deliveries []domain.Delivery
	err := r.db.WithContext(ctx).Where("agent_id = ?", agentID).Find(&deliveries).Error
	return deliveries, err
}

func (r *GormDeliveryRepository) FindByStatus(ctx context.Context, status string) ([]domain.Delivery, error) {
	var deliveries []domain.Delivery
	err := r.db.WithContext(ctx).Where("status = ?", status).Find(&deliveries).Error
	return deliveries, err
}

func (r *GormDeliveryRepository) FindByAgentAndStatus(ctx context.Context, agentID, status string) ([]domain.Delivery, error) {
	var deliveries []domain.Delivery
	err := r.db.WithContext(ctx).
		Where("agent_id = ? AND status = ?", agentID, status).
		Find(&deliveries).Error
	return deliveries, err
}

func (r *GormDeliveryRepository) FindByStatusAndDateRange(ctx context.Context, status, startDate, endDate string) ([]domain.Delivery, error) {
	var deliveries []domain.Delivery
	err := r.db.WithContext(ctx).
		Where("status = ? AND delivery_date BETWEEN ? AND ?", status, startDate, endDate).
		Find(&deliveries).Error
	return deliveries, err
}

func (r *GormDeliveryRepository) Save(ctx context.Context, delivery *domain.Delivery) error {
	return r.db.WithContext(ctx).Save(delivery).Error
}
