package attendance

import (
	"context"
	"time"
)

// AttendanceRepository - interface for the attendance_records table. The two
// reconciliation methods encode their idempotency condition in the store
// rather than in caller state, so repeated and concurrent invocations are
// no-ops on already-processed rows.
type AttendanceRepository interface {
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*AttendanceRecord, error)
	ListByDate(ctx context.Context, date time.Time) ([]AttendanceRecord, error)
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceRecord, error)
	SetCheckOut(ctx context.Context, id string, checkOut string) error

	// CloseOpenCheckIns sets checkOut and appends note on every record for
	// date that has a check-in, no check-out, and status present or late.
	// Returns the number of rows actually updated.
	CloseOpenCheckIns(ctx context.Context, date time.Time, checkOut, note string) (int64, error)

	// CreateAbsentIfMissing inserts record unless a row for the same
	// (employee_id, date) already exists; a uniqueness conflict is treated
	// as "someone else got there first" and reported as inserted=false.
	CreateAbsentIfMissing(ctx context.Context, record AttendanceRecord) (bool, error)
}
