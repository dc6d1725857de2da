package delivery

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/dlvery/dlvery/internal/delivery/domain"
	"github.com/dlvery/dlvery/internal/delivery/repository"
)

// ProvideDeliveryRepository provides the delivery repository
func ProvideDeliveryRepository(db *gorm.DB) domain.DeliveryRepository {
	return repository.NewGormDeliveryRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideDeliveryRepository,
)
