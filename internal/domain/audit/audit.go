package audit

import (
	"context"
	"time"
)

// Entry is one activity-log line.
type Entry struct {
	ID         string
	Actor      string
	Action     string
	EntityType string
	EntityID   string
	Detail     string
	CreatedAt  time.Time
}

// Sink records activity entries best-effort. Callers must treat Record as
// fire-and-forget: a sink failure never fails the operation being audited.
type Sink interface {
	Record(ctx context.Context, entry Entry) error
}
