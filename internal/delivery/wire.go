//go:build wireinject
// +build wireinject

package delivery

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/dlvery/dlvery/internal/audit"
	"github.com/dlvery/dlvery/internal/delivery/handler"
	"github.com/dlvery/dlvery/internal/delivery/usecase/command"
)

// InitializeHTTPHandler initializes the delivery HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, recorder *audit.Recorder, events command.EventPublisher) (*handler.DeliveryHandler, error) {
	wire.Build(
		RepositorySet,
		handler.NewDeliveryHandler,
	)
	return nil, nil
}
