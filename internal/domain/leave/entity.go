package leave

import "time"

// LeaveRequestStatus is the closed set of workflow states. A request is created
// pending, moves through the department stage, and ends approved or rejected.
type LeaveRequestStatus string

const (
	StatusPending            LeaveRequestStatus = "pending"
	StatusDepartmentApproved LeaveRequestStatus = "department_approved"
	StatusApproved           LeaveRequestStatus = "approved"
	StatusRejected           LeaveRequestStatus = "rejected"
)

func (s LeaveRequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusDepartmentApproved, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further decision may be applied.
func (s LeaveRequestStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type LeaveType string

const (
	TypeVacation  LeaveType = "vacation"
	TypeSick      LeaveType = "sick"
	TypeEmergency LeaveType = "emergency"
	TypeUnpaid    LeaveType = "unpaid"
	TypeOther     LeaveType = "other"
)

func (t LeaveType) Valid() bool {
	switch t {
	case TypeVacation, TypeSick, TypeEmergency, TypeUnpaid, TypeOther:
		return true
	}
	return false
}

// LeaveRequest entity. The workflow service is the sole writer of Status and
// the decision fields; CRUD handlers never touch them.
type LeaveRequest struct {
	ID                 string
	EmployeeID         string
	EmployeeName       string
	EmployeeDepartment *string

	LeaveType LeaveType
	StartDate time.Time
	EndDate   time.Time
	Reason    string

	Status LeaveRequestStatus

	// Department stage, stamped on the pending -> {department_approved, rejected} transition.
	DepartmentHeadComment    *string
	DepartmentHeadApprovedBy *string
	DepartmentHeadApprovedAt *time.Time

	// Admin stage, stamped on the final transition.
	AdminComment *string
	DecidedBy    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InclusiveDays counts calendar days spanned by the request, both boundary
// dates included. A same-day request is 1 day.
func (r LeaveRequest) InclusiveDays() int {
	return InclusiveDays(r.StartDate, r.EndDate)
}

func InclusiveDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}
