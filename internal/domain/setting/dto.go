package setting

import (
	"regexp"

	"github.com/stratus-hr/hrd-backend-go/internal/pkg/validator"
)

var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type UpdateSettingsRequest struct {
	CompanyName *string `json:"company_name,omitempty"`
	WorkStart   *string `json:"work_start,omitempty"`
	WorkEnd     *string `json:"work_end,omitempty"`
	WeekendDays *string `json:"weekend_days,omitempty"`
}

func (r UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkStart != nil && !clockRegex.MatchString(*r.WorkStart) {
		errs = append(errs, validator.ValidationError{Field: "work_start", Message: "must be an HH:MM time"})
	}
	if r.WorkEnd != nil && !clockRegex.MatchString(*r.WorkEnd) {
		errs = append(errs, validator.ValidationError{Field: "work_end", Message: "must be an HH:MM time"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
