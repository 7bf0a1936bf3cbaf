package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/audit"
	"github.com/stratus-hr/hrd-backend-go/internal/pkg/database"
)

type auditSinkImpl struct {
	db *database.DB
}

// NewAuditSink persists activity entries to audit_logs. Callers discard the
// returned error by contract; it is surfaced for diagnostic logging only.
func NewAuditSink(db *database.DB) audit.Sink {
	return &auditSinkImpl{db: db}
}

func (s *auditSinkImpl) Record(ctx context.Context, entry audit.Entry) error {
	// Deliberately not transaction-aware: an audit line should survive even
	// when the surrounding operation rolls back, and must never block it.
	_, err := s.db.Exec(ctx, `
		INSERT INTO audit_logs (id, actor, action, entity_type, entity_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`, uuid.NewString(), entry.Actor, entry.Action, entry.EntityType, entry.EntityID, entry.Detail)
	if err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}
