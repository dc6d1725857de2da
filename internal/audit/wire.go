//go:build wireinject
// +build wireinject

package audit

import (
	"github.com/google/wire"
	"gorm.io/gorm"
)

// InitializeRecorder initializes the audit recorder
func InitializeRecorder(db *gorm.DB) (*Recorder, error) {
	wire.Build(
		RepositorySet,
		NewRecorder,
	)
	return nil, nil
}
