package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dlvery/dlvery/internal/audit/domain"
)

type GormAuditRepository struct {
	db *gorm.DB
}

func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

func (r *GormAuditRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.AuditLog{})
}

// Save appends an entry. The audit table is insert-only; Create is used so
// an existing entry can never be rewritten.
func (r *GormAuditRepository) Save(ctx context.Context, entry *domain.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *GormAuditRepository) FindAll(ctx context.Context) ([]domain.AuditLog, error) {
	var entries []domain.AuditLog
	err := r.db.WithContext(ctx).Order("timestamp desc").Find(&entries).Error
	return entries, err
}
