package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceRecord, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceRecord, error)
	ListByDate(ctx context.Context, date time.Time) ([]AttendanceRecord, error)
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceRecord, error)
}
