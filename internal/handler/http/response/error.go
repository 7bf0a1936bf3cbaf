package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/stratus-hr/hrd-backend-go/internal/domain/attendance"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/employee"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/event"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/leave"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/master/department"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/master/designation"
	"github.com/stratus-hr/hrd-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var quotaErr *leave.QuotaExceededError
	if errors.As(err, &quotaErr) {
		QuotaExceeded(w, "Yearly leave quota exceeded", map[string]string{
			"remaining_days": strconv.Itoa(quotaErr.Remaining),
		})
		return
	}

	switch {
	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidTransition):
		Conflict(w, "Decision not allowed from the request's current status")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNoCheckIn):
		Conflict(w, "No check-in recorded for today")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, designation.ErrDesignationNotFound):
		NotFound(w, "Designation not found")
	case errors.Is(err, designation.ErrDesignationExists):
		Conflict(w, "Designation name already exists")

	// Calendar errors
	case errors.Is(err, event.ErrEventNotFound):
		NotFound(w, "Calendar event not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
