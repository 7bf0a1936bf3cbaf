package event

import (
	"github.com/stratus-hr/hrd-backend-go/internal/pkg/validator"
)

type UpsertEventRequest struct {
	Title       string `json:"title"`
	EventType   string `json:"event_type"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

func (r UpsertEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	switch EventType(r.EventType) {
	case TypeHoliday, TypeMeeting, TypeOther:
	default:
		errs = append(errs, validator.ValidationError{Field: "event_type", Message: "must be holiday, meeting or other"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a YYYY-MM-DD date"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a YYYY-MM-DD date"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
