package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dlvery/dlvery/internal/audit/domain"
	"github.com/dlvery/dlvery/pkg/logger"
)

// Recorder appends immutable audit entries for state-changing actions.
// Recording is best-effort: a failed write is logged and never aborts the
// business mutation that triggered it.
type Recorder struct {
	repo domain.AuditRepository
	now  func() time.Time
}

// NewRecorder creates a new audit recorder
func NewRecorder(repo domain.AuditRepository) *Recorder {
	return &Recorder{repo: repo, now: time.Now}
}

// Record persists a timestamped entry describing who did what to which entity
func (r *Recorder) Record(ctx context.Context, action, entity, entityID, userID string) {
	entry := &domain.AuditLog{
		ID:        uuid.NewString(),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		UserID:    userID,
		Timestamp: r.now().Format(time.RFC3339),
	}

	if err := r.repo.Save(ctx, entry); err != nil {
		logger.Error(ctx).
			Err(err).
			Str("action", action).
			Str("entity", entity).
			Str("entity_id", entityID).
			Msg("Failed to write audit entry")
	}
}

// List returns all recorded entries, newest first
func (r *Recorder) List(ctx context.Context) ([]domain.AuditLog, error) {
	return r.repo.FindAll(ctx)
}
