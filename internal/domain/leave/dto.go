package leave

import (
	"time"

	"github.com/stratus-hr/hrd-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	EmployeeID         string  `json:"employee_id"`
	EmployeeName       string  `json:"employee_name"`
	EmployeeDepartment *string `json:"employee_department,omitempty"`
	LeaveType          string  `json:"leave_type"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	Reason             string  `json:"reason"`
}

func (r SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{Field: "employee_name", Message: "is required"})
	}
	if !LeaveType(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "must be one of vacation, sick, emergency, unpaid, other"})
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

// DepartmentDecision is the first-stage outcome recorded by a department head.
type DepartmentDecision struct {
	Decision string `json:"decision"` // department_approved | rejected
	Comment  string `json:"comment"`
	Approver string `json:"approver"`
}

func (d DepartmentDecision) Validate() error {
	var errs validator.ValidationErrors

	switch LeaveRequestStatus(d.Decision) {
	case StatusDepartmentApproved, StatusRejected:
	default:
		errs = append(errs, validator.ValidationError{Field: "decision", Message: "must be department_approved or rejected"})
	}
	if validator.IsEmpty(d.Approver) {
		errs = append(errs, validator.ValidationError{Field: "approver", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AdminDecision is the final-stage outcome recorded by an administrator.
type AdminDecision struct {
	Decision string `json:"decision"` // approved | rejected
	Comment  string `json:"comment"`
	DecidedBy string `json:"decided_by"`
}

func (d AdminDecision) Validate() error {
	var errs validator.ValidationErrors

	switch LeaveRequestStatus(d.Decision) {
	case StatusApproved, StatusRejected:
	default:
		errs = append(errs, validator.ValidationError{Field: "decision", Message: "must be approved or rejected"})
	}
	if validator.IsEmpty(d.DecidedBy) {
		errs = append(errs, validator.ValidationError{Field: "decided_by", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestFilter struct {
	EmployeeID *string
	Status     *LeaveRequestStatus
	Department *string
	Year       *int // matches start_date's calendar year
}

// DecisionUpdate carries the fields a single transition is allowed to stamp.
// Only the fields for the stage being decided are set.
type DecisionUpdate struct {
	Status LeaveRequestStatus

	DepartmentHeadComment    *string
	DepartmentHeadApprovedBy *string
	DepartmentHeadApprovedAt *time.Time

	AdminComment *string
	DecidedBy    *string
}

type QuotaSummary struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Used       int    `json:"used"`
	Remaining  int    `json:"remaining"`
	Max        int    `json:"max"`
}
