package leave

import (
	"errors"
	"fmt"
)

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidTransition    = errors.New("decision not allowed from current status")
)

// MaxYearlyLeaves is the inclusive-day cap per employee per calendar year.
const MaxYearlyLeaves = 10

// QuotaExceededError is returned when an admin approval would push the
// employee past MaxYearlyLeaves for the request's start-date year.
type QuotaExceededError struct {
	Remaining int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("yearly leave quota exceeded, %d day(s) remaining", e.Remaining)
}
