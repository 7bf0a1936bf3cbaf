package event

import (
	"context"
	"time"
)

type EventRepository interface {
	Create(ctx context.Context, ev CalendarEvent) (CalendarEvent, error)
	GetByID(ctx context.Context, id string) (CalendarEvent, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]CalendarEvent, error)
	Update(ctx context.Context, id string, req UpsertEventRequest) error
	Delete(ctx context.Context, id string) error
}
