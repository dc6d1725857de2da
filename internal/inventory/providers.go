package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	deliverydomain "github.com/dlvery/dlvery/internal/delivery/domain"
	deliveryrepo "github.com/dlvery/dlvery/internal/delivery/repository"
	"github.com/dlvery/dlvery/internal/inventory/domain"
	"github.com/dlvery/dlvery/internal/inventory/repository"
)

// ProvideInventoryRepository provides the traced inventory repository
func ProvideInventoryRepository(db *gorm.DB) domain.InventoryRepository {
	return repository.NewTracingInventoryRepository(db)
}

// ProvideDeliveryRepository provides the delivery repository the engine
// reads and writes during fulfillment
func ProvideDeliveryRepository(db *gorm.DB) deliverydomain.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideInventoryRepository,
	ProvideDeliveryRepository,
)
