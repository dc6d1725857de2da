package audit

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/dlvery/dlvery/internal/audit/domain"
	"github.com/dlvery/dlvery/internal/audit/repository"
)

// ProvideAuditRepository provides the audit log repository
func ProvideAuditRepository(db *gorm.DB) domain.AuditRepository {
	return repository.NewGormAuditRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideAuditRepository,
)
