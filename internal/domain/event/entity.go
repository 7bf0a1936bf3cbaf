package event

import "time"

type EventType string

const (
	TypeHoliday EventType = "holiday"
	TypeMeeting EventType = "meeting"
	TypeOther   EventType = "other"
)

type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	EventType   EventType `json:"event_type"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
