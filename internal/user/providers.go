package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/dlvery/dlvery/internal/user/domain"
	"github.com/dlvery/dlvery/internal/user/repository"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)
