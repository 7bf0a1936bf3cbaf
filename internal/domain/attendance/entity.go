package attendance

import "time"

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
	StatusHalfDay AttendanceStatus = "half_day"
	StatusLeave   AttendanceStatus = "leave"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfDay, StatusLeave:
		return true
	}
	return false
}

// AttendanceRecord - at most one row per employee per date, enforced by a
// UNIQUE constraint in the store. CheckIn/CheckOut are "HH:MM" times of day.
type AttendanceRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *string
	CheckOut   *string
	Status     AttendanceStatus
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
