package event

import (
	"context"
	"time"

	"github.com/stratus-hr/hrd-backend-go/internal/domain/event"
)

type EventService interface {
	Create(ctx context.Context, req event.UpsertEventRequest) (event.CalendarEvent, error)
	GetByID(ctx context.Context, id string) (event.CalendarEvent, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]event.CalendarEvent, error)
	Update(ctx context.Context, id string, req event.UpsertEventRequest) (event.CalendarEvent, error)
	Delete(ctx context.Context, id string) error
}

type eventServiceImpl struct {
	repo event.EventRepository
}

func NewEventService(repo event.EventRepository) EventService {
	return &eventServiceImpl{repo: repo}
}

func (s *eventServiceImpl) Create(ctx context.Context, req event.UpsertEventRequest) (event.CalendarEvent, error) {
	if err := req.Validate(); err != nil {
		return event.CalendarEvent{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	return s.repo.Create(ctx, event.CalendarEvent{
		Title:       req.Title,
		EventType:   event.EventType(req.EventType),
		StartDate:   start,
		EndDate:     end,
		Description: req.Description,
	})
}

func (s *eventServiceImpl) GetByID(ctx context.Context, id string) (event.CalendarEvent, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *eventServiceImpl) ListByRange(ctx context.Context, from, to time.Time) ([]event.CalendarEvent, error) {
	return s.repo.ListByRange(ctx, from, to)
}

func (s *eventServiceImpl) Update(ctx context.Context, id string, req event.UpsertEventRequest) (event.CalendarEvent, error) {
	if err := req.Validate(); err != nil {
		return event.CalendarEvent{}, err
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return event.CalendarEvent{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *eventServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
