package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/event"
	"github.com/stratus-hr/hrd-backend-go/internal/pkg/database"
)

type eventRepositoryImpl struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) event.EventRepository {
	return &eventRepositoryImpl{db: db}
}

const eventColumns = `
	id, title, event_type, start_date, end_date, description, created_at, updated_at`

func scanEvent(row pgx.Row) (event.CalendarEvent, error) {
	var ev event.CalendarEvent
	err := row.Scan(
		&ev.ID, &ev.Title, &ev.EventType, &ev.StartDate, &ev.EndDate,
		&ev.Description, &ev.CreatedAt, &ev.UpdatedAt,
	)
	return ev, err
}

func (r *eventRepositoryImpl) Create(ctx context.Context, ev event.CalendarEvent) (event.CalendarEvent, error) {
	q := GetQuerier(ctx, r.db)

	ev.ID = uuid.NewString()
	err := q.QueryRow(ctx, `
		INSERT INTO calendar_events (id, title, event_type, start_date, end_date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`, ev.ID, ev.Title, ev.EventType, ev.StartDate, ev.EndDate, ev.Description).Scan(&ev.CreatedAt, &ev.UpdatedAt)

	if err != nil {
		return event.CalendarEvent{}, fmt.Errorf("failed to create calendar event: %w", err)
	}
	return ev, nil
}

func (r *eventRepositoryImpl) GetByID(ctx context.Context, id string) (event.CalendarEvent, error) {
	q := GetQuerier(ctx, r.db)

	ev, err := scanEvent(q.QueryRow(ctx, `SELECT`+eventColumns+`FROM calendar_events WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return event.CalendarEvent{}, event.ErrEventNotFound
		}
		return event.CalendarEvent{}, fmt.Errorf("failed to get calendar event: %w", err)
	}
	return ev, nil
}

func (r *eventRepositoryImpl) ListByRange(ctx context.Context, from, to time.Time) ([]event.CalendarEvent, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT`+eventColumns+`
		FROM calendar_events
		WHERE start_date <= $2 AND end_date >= $1
		ORDER BY start_date
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar events: %w", err)
	}
	defer rows.Close()

	var events []event.CalendarEvent
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan calendar event: %w", err)
		}
		events = append(events, ev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return events, nil
}

func (r *eventRepositoryImpl) Update(ctx context.Context, id string, req event.UpsertEventRequest) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE calendar_events
		SET title = $1, event_type = $2, start_date = $3, end_date = $4, description = $5, updated_at = NOW()
		WHERE id = $6
	`, req.Title, req.EventType, req.StartDate, req.EndDate, req.Description, id)
	if err != nil {
		return fmt.Errorf("failed to update calendar event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}
	return nil
}

func (r *eventRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM calendar_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}
	return nil
}
