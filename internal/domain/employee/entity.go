package employee

import "time"

type EmployeeStatus string

const (
	StatusActive   EmployeeStatus = "active"
	StatusInactive EmployeeStatus = "inactive"
)

type Employee struct {
	ID            string
	EmployeeCode  string
	FullName      string
	Email         string
	DepartmentID  *string
	DesignationID *string
	Status        EmployeeStatus
	JoinDate      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DirectoryEntry is the minimal employee view the attendance reconciler
// consumes.
type DirectoryEntry struct {
	EmployeeID string
	FullName   string
}
